// Package main provides the jg CLI entry point.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jobgraph/jobgraph/internal/config"
	"github.com/jobgraph/jobgraph/internal/embedding"
	"github.com/jobgraph/jobgraph/internal/generate"
	"github.com/jobgraph/jobgraph/internal/graph"
	"github.com/jobgraph/jobgraph/internal/rag"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// verboseOutput enables info-level logging on stderr
var verboseOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		// This ensures Cobra errors (like missing required flags) are visible
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jg",
	Short: "Job retrieval and matching engine CLI",
	Long: `jg searches and reasons over a job/skill graph.

Core features:
  - Semantic search over jobs and skills via hashed embeddings
  - Skill-gap analysis between a candidate profile and a target role
  - Career-path planning between two roles
  - Question answering grounded in retrieved jobs and skills
  - Interactive HTML visualization of the job graph

The graph lives in SQLite by default; Neo4j and PostgreSQL (Apache AGE)
backends are available for shared deployments. All commands output JSON
by default for scripting and agent integration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVarP(&verboseOutput, "verbose", "v", false, "Log backend selection and store activity to stderr")
	rootCmd.Version = Version
}

// newLogger builds the CLI logger. Warnings always surface; --verbose adds
// the info-level lines about backend selection.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verboseOutput {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// mustLoadConfig loads and validates configuration, exits on error.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	if err := config.ValidateStoreBackend(cfg.Store.Backend); err != nil {
		fmt.Fprintln(os.Stderr, config.HelpfulConfigMessage())
		exitWithError(ExitConfigError, "%v", err)
	}
	return cfg
}

// storeOptions maps resolved configuration onto store options.
func storeOptions(cfg *config.Config) graph.Options {
	return graph.Options{
		Backend:  cfg.Store.Backend,
		Path:     cfg.Store.Path,
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
		DSN:      cfg.Postgres.DSN,
		Graph:    cfg.Postgres.Graph,
	}
}

// mustOpenStore opens the configured store, exits on error. Opening a SQLite
// path creates the file, so a missing database is caught here first and
// reported with a pointer at store init.
func mustOpenStore(ctx context.Context, cfg *config.Config) graph.Store {
	if cfg.Store.Backend == graph.BackendSQLite {
		if _, err := os.Stat(cfg.Store.Path); err != nil {
			exitWithError(ExitStoreError, "no database at %s\n\nRun 'jg store init' to create one, or 'jg store load --sample' to seed it with sample data.", cfg.Store.Path)
		}
	}

	store, err := graph.Open(ctx, storeOptions(cfg))
	if err != nil {
		exitWithError(ExitStoreError, "opening %s store: %v", cfg.Store.Backend, err)
	}
	return store
}

// mustOpenEngine wires a query engine over the configured store. Commands
// that never generate text pass withGenerator false and skip the backend
// probe; the engine then carries its default rule-based generator.
// The caller is responsible for calling Close() on the returned engine.
func mustOpenEngine(ctx context.Context, withGenerator bool) *rag.Engine {
	cfg := mustLoadConfig()
	logger := newLogger()
	store := mustOpenStore(ctx, cfg)

	opts := []rag.Option{
		rag.WithProvider(embedding.NewHashProvider(embedding.WithDimensions(cfg.Embedding.Dimensions))),
		rag.WithLogger(logger),
	}
	if withGenerator {
		gen := generate.Pick(ctx, generate.Config{Backend: cfg.LLM.Backend, Model: cfg.LLM.Model}, logger)
		opts = append(opts, rag.WithGenerator(gen))
	}
	return rag.New(store, opts...)
}
