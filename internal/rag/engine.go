// Package rag is the retrieval and matching engine: embedding-based search
// over the job/skill graph, skill-gap and career-path analysis, and
// retrieval-augmented question answering with a generation fallback chain.
package rag

import (
	"log/slog"

	"github.com/jobgraph/jobgraph/internal/embedding"
	"github.com/jobgraph/jobgraph/internal/generate"
	"github.com/jobgraph/jobgraph/internal/graph"
)

// Engine answers queries against a graph store. It only reads the store;
// data loading happens out of band. All methods are safe for concurrent use
// as long as the store is.
type Engine struct {
	store     graph.Store
	provider  embedding.Provider
	generator generate.Generator
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithProvider sets the embedding provider.
func WithProvider(p embedding.Provider) Option {
	return func(e *Engine) {
		e.provider = p
	}
}

// WithGenerator sets the text-generation backend.
func WithGenerator(g generate.Generator) Option {
	return func(e *Engine) {
		e.generator = g
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an engine over the given store. Without options it embeds
// with the hashed bag-of-words provider and answers with the rule-based
// generator, so a bare engine works offline.
func New(store graph.Store, opts ...Option) *Engine {
	e := &Engine{
		store:     store,
		provider:  embedding.NewHashProvider(),
		generator: generate.NewRules(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generator reports which generation backend the engine answers with.
func (e *Engine) Generator() string {
	return e.generator.Name()
}

// Close releases the underlying store.
func (e *Engine) Close() error {
	return e.store.Close()
}
