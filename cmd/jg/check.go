package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jobgraph/jobgraph/internal/config"
	"github.com/jobgraph/jobgraph/internal/generate"
	"github.com/jobgraph/jobgraph/internal/graph"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func init() {
	// Load .env file if present (for generation credentials)
	_ = godotenv.Load()

	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify configuration, store, and generation backend",
	Long: `Check probes everything a query command needs: the config file
parses, backend names are valid, the store answers, and an explicitly
configured generation backend is reachable.

An auto or rules llm backend always passes the generator probe because
the rule-based responder needs no credentials.

Exit codes: 0 all checks pass, 2 configuration problem, 3 store problem,
4 generation backend unreachable.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

// CheckResult is the response for the check command.
type CheckResult struct {
	Status string       `json:"status"`
	Checks []CheckEntry `json:"checks"`
}

// CheckEntry is the outcome of a single probe.
type CheckEntry struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var checks []CheckEntry
	exitCode := ExitSuccess

	// The first failing probe decides the exit code.
	fail := func(code int) {
		if exitCode == ExitSuccess {
			exitCode = code
		}
	}

	// Nothing else can run without configuration.
	cfg, err := config.Load()
	if err != nil {
		checks = append(checks, CheckEntry{Name: "config", Status: "fail", Detail: err.Error()})
		fail(ExitConfigError)
		reportCheck(checks, exitCode)
		return nil
	}
	checks = append(checks, CheckEntry{Name: "config", Status: "ok", Detail: config.Path()})

	entry := checkBackends(cfg)
	checks = append(checks, entry)
	if entry.Status != "ok" {
		fail(ExitConfigError)
	}

	entry = checkStore(ctx, cfg)
	checks = append(checks, entry)
	if entry.Status != "ok" {
		fail(ExitStoreError)
	}

	entry = checkGenerator(ctx, cfg)
	checks = append(checks, entry)
	if entry.Status != "ok" {
		fail(ExitGenerationError)
	}

	reportCheck(checks, exitCode)
	return nil
}

// checkBackends validates the configured backend names.
func checkBackends(cfg *config.Config) CheckEntry {
	if err := config.ValidateStoreBackend(cfg.Store.Backend); err != nil {
		return CheckEntry{Name: "backends", Status: "fail", Detail: err.Error()}
	}
	if err := config.ValidateLLMBackend(cfg.LLM.Backend); err != nil {
		return CheckEntry{Name: "backends", Status: "fail", Detail: err.Error()}
	}
	return CheckEntry{
		Name:   "backends",
		Status: "ok",
		Detail: fmt.Sprintf("store=%s llm=%s", cfg.Store.Backend, displayLLMBackend(cfg.LLM.Backend)),
	}
}

// checkStore opens the configured store and reads its stats.
func checkStore(ctx context.Context, cfg *config.Config) CheckEntry {
	if cfg.Store.Backend == graph.BackendSQLite {
		if _, err := os.Stat(cfg.Store.Path); err != nil {
			return CheckEntry{
				Name:   "store",
				Status: "fail",
				Detail: fmt.Sprintf("no database at %s (run 'jg store init')", cfg.Store.Path),
			}
		}
	}

	store, err := graph.Open(ctx, storeOptions(cfg))
	if err != nil {
		return CheckEntry{Name: "store", Status: "fail", Detail: err.Error()}
	}
	defer store.Close()

	stats, err := store.Stats(ctx)
	if err != nil {
		return CheckEntry{Name: "store", Status: "fail", Detail: err.Error()}
	}
	return CheckEntry{
		Name:   "store",
		Status: "ok",
		Detail: fmt.Sprintf("%s: %d jobs, %d skills, %d requirements", cfg.Store.Backend, stats.Jobs, stats.Skills, stats.Requirements),
	}
}

// checkGenerator probes the configured generation backend. Only an explicit
// huggingface or gemini backend can fail; auto and rules always have the
// rule-based responder to fall back on.
func checkGenerator(ctx context.Context, cfg *config.Config) CheckEntry {
	switch cfg.LLM.Backend {
	case generate.BackendHuggingFace:
		var opts []generate.HuggingFaceOption
		if cfg.LLM.Model != "" {
			opts = append(opts, generate.WithModel(cfg.LLM.Model))
		}
		if err := generate.NewHuggingFace(opts...).IsAvailable(ctx); err != nil {
			return CheckEntry{Name: "generator", Status: "fail", Detail: fmt.Sprintf("hugging face: %v", err)}
		}
		return CheckEntry{Name: "generator", Status: "ok", Detail: "huggingface reachable"}

	case generate.BackendGemini:
		if _, err := generate.NewGemini(ctx, os.Getenv("GEMINI_API_KEY")); err != nil {
			return CheckEntry{Name: "generator", Status: "fail", Detail: fmt.Sprintf("gemini: %v", err)}
		}
		return CheckEntry{Name: "generator", Status: "ok", Detail: "gemini client ready"}

	default:
		gen := generate.Pick(ctx, generate.Config{Backend: cfg.LLM.Backend, Model: cfg.LLM.Model}, newLogger())
		return CheckEntry{
			Name:   "generator",
			Status: "ok",
			Detail: fmt.Sprintf("%s selects %s", displayLLMBackend(cfg.LLM.Backend), gen.Name()),
		}
	}
}

// displayLLMBackend names the backend for output; empty config means auto.
func displayLLMBackend(backend string) string {
	if backend == "" {
		return generate.BackendAuto
	}
	return backend
}

// reportCheck prints the probe results and exits non-zero if any failed.
func reportCheck(checks []CheckEntry, exitCode int) {
	status := "ok"
	if exitCode != ExitSuccess {
		status = "issues_found"
	}

	if humanOutput {
		for _, c := range checks {
			mark := "ok"
			if c.Status != "ok" {
				mark = "FAIL"
			}
			if c.Detail != "" {
				fmt.Printf("[%s] %s: %s\n", mark, c.Name, c.Detail)
			} else {
				fmt.Printf("[%s] %s\n", mark, c.Name)
			}
		}
	} else {
		outputJSON(CheckResult{Status: status, Checks: checks})
	}

	if exitCode != ExitSuccess {
		os.Exit(exitCode)
	}
}
