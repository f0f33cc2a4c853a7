package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jobgraph/jobgraph/internal/graph"
	"github.com/spf13/cobra"
)

func init() {
	storeCmd.AddCommand(storeInitCmd)
}

var storeInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty SQLite database",
	Long: `Initialize the SQLite database at the configured path.

Creates parent directories and the schema. Existing data is left alone, so
running init twice is safe.

Example:
  jg store init`,
	Args: cobra.NoArgs,
	RunE: runStoreInit,
}

func runStoreInit(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	// Only the SQLite backend owns its storage; server backends manage their own.
	if cfg.Store.Backend != graph.BackendSQLite {
		exitWithError(ExitConfigError, "store init only applies to the sqlite backend (configured: %s)", cfg.Store.Backend)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0o755); err != nil {
		exitWithError(ExitStoreError, "creating data directory: %v", err)
	}

	store, err := graph.OpenSQLite(cfg.Store.Path)
	if err != nil {
		exitWithError(ExitStoreError, "initializing database: %v", err)
	}
	defer store.Close()

	// Output result
	if humanOutput {
		fmt.Printf("Initialized database at %s\n", cfg.Store.Path)
	} else {
		outputJSON(StatusResponse{Status: "initialized", Path: cfg.Store.Path})
	}

	return nil
}
