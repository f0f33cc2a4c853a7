package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jobgraph/jobgraph/internal/graph"
	"github.com/spf13/cobra"
)

var storeLoadSample bool

// StoreLoadResult is the response for the store load command.
type StoreLoadResult struct {
	Path         string `json:"path"`
	Jobs         int    `json:"jobs"`
	Skills       int    `json:"skills"`
	Requirements int    `json:"requirements"`
}

func init() {
	storeCmd.AddCommand(storeLoadCmd)

	storeLoadCmd.Flags().BoolVar(&storeLoadSample, "sample", false, "Load the built-in sample dataset")
}

var storeLoadCmd = &cobra.Command{
	Use:   "load [snapshot.json]",
	Short: "Load a graph snapshot into the SQLite database",
	Long: `Load replaces the database contents with a snapshot.

A snapshot is a JSON file with jobs, skills, and requirements arrays; IDs
are generated for records that omit them. --sample loads the built-in
dataset instead of a file. Loading replaces all existing data.

Examples:
  jg store load --sample
  jg store load jobs.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStoreLoad,
}

func runStoreLoad(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Validate arguments
	if storeLoadSample && len(args) > 0 {
		exitWithError(ExitError, "--sample and a snapshot file are mutually exclusive")
	}
	if !storeLoadSample && len(args) == 0 {
		exitWithError(ExitError, "Provide a snapshot file or --sample")
	}

	cfg := mustLoadConfig()
	if cfg.Store.Backend != graph.BackendSQLite {
		exitWithError(ExitConfigError, "store load only applies to the sqlite backend (configured: %s)", cfg.Store.Backend)
	}

	var snap *graph.Snapshot
	if storeLoadSample {
		snap = graph.SampleSnapshot()
	} else {
		var err error
		snap, err = graph.ReadSnapshot(args[0])
		if err != nil {
			exitWithError(ExitStoreError, "%v", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0o755); err != nil {
		exitWithError(ExitStoreError, "creating data directory: %v", err)
	}

	store, err := graph.OpenSQLite(cfg.Store.Path)
	if err != nil {
		exitWithError(ExitStoreError, "opening database: %v", err)
	}
	defer store.Close()

	if err := store.LoadSnapshot(ctx, snap); err != nil {
		exitWithError(ExitStoreError, "loading snapshot: %v", err)
	}

	// Output result
	result := StoreLoadResult{
		Path:         cfg.Store.Path,
		Jobs:         len(snap.Jobs),
		Skills:       len(snap.Skills),
		Requirements: len(snap.Requirements),
	}

	if humanOutput {
		fmt.Printf("Loaded %d jobs, %d skills, %d requirements into %s\n",
			result.Jobs, result.Skills, result.Requirements, result.Path)
	} else {
		outputJSON(result)
	}

	return nil
}
