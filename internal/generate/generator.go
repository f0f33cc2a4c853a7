// Package generate provides the text-generation backends behind question
// answering: a Hugging Face inference client, a Gemini client, and a
// deterministic rule-based responder that needs no credentials. Callers
// depend only on the Generator interface; Pick chooses an implementation
// from configuration and available credentials.
package generate

import (
	"context"
	"log/slog"
	"os"
)

// Backend names accepted in configuration.
const (
	BackendAuto        = "auto"
	BackendHuggingFace = "huggingface"
	BackendGemini      = "gemini"
	BackendRules       = "rules"
)

// Generator produces an answer for a fully assembled prompt.
type Generator interface {
	// Generate returns the model's text for the prompt.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name identifies the backend, e.g. "huggingface" or "rules".
	Name() string
}

// Config selects a generation backend.
type Config struct {
	// Backend is auto, huggingface, gemini, or rules. Empty means auto.
	Backend string

	// Model overrides the Hugging Face model, e.g. google/flan-t5-base.
	Model string
}

// Pick returns the generator for cfg. With an explicit backend it builds
// that one; on auto it probes credentials in order (Gemini key, then a
// verified Hugging Face token) and falls back to Rules so answering always
// works. Pick itself never fails: a backend that cannot be constructed
// degrades to Rules with a log line.
func Pick(ctx context.Context, cfg Config, logger *slog.Logger) Generator {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Backend {
	case BackendRules:
		return NewRules()

	case BackendGemini:
		gem, err := NewGemini(ctx, os.Getenv("GEMINI_API_KEY"))
		if err != nil {
			logger.Warn("gemini unavailable, using rule-based responder", "error", err)
			return NewRules()
		}
		return gem

	case BackendHuggingFace:
		hf := newConfiguredHuggingFace(cfg.Model)
		if err := hf.IsAvailable(ctx); err != nil {
			logger.Warn("hugging face unavailable, using rule-based responder", "error", err)
			return NewRules()
		}
		return hf

	case BackendAuto, "":
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			gem, err := NewGemini(ctx, key)
			if err == nil {
				logger.Info("using gemini generator")
				return gem
			}
			logger.Warn("gemini key set but client failed", "error", err)
		}

		hf := newConfiguredHuggingFace(cfg.Model)
		if err := hf.IsAvailable(ctx); err == nil {
			logger.Info("using hugging face generator", "model", hf.model)
			return hf
		}

		logger.Info("no generation credentials, using rule-based responder")
		return NewRules()

	default:
		logger.Warn("unknown llm backend, using rule-based responder", "backend", cfg.Backend)
		return NewRules()
	}
}

func newConfiguredHuggingFace(model string) *HuggingFace {
	var opts []HuggingFaceOption
	if model != "" {
		opts = append(opts, WithModel(model))
	}
	return NewHuggingFace(opts...)
}
