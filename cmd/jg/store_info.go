package main

import (
	"context"
	"fmt"

	"github.com/jobgraph/jobgraph/internal/graph"
	"github.com/spf13/cobra"
)

// StoreInfoResult is the response for the store info command.
type StoreInfoResult struct {
	Backend      string `json:"backend"`
	Path         string `json:"path,omitempty"`
	Jobs         int    `json:"jobs"`
	Skills       int    `json:"skills"`
	Requirements int    `json:"requirements"`
}

func init() {
	storeCmd.AddCommand(storeInfoCmd)
}

var storeInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show store backend and node counts",
	Long: `Info connects to the configured store and reports what it holds.

Works against any backend, so it doubles as a connectivity check for
Neo4j and PostgreSQL configurations.`,
	Args: cobra.NoArgs,
	RunE: runStoreInfo,
}

func runStoreInfo(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg := mustLoadConfig()
	store := mustOpenStore(ctx, cfg)
	defer store.Close()

	stats, err := store.Stats(ctx)
	if err != nil {
		exitWithError(ExitStoreError, "reading store stats: %v", err)
	}

	result := StoreInfoResult{
		Backend:      cfg.Store.Backend,
		Jobs:         stats.Jobs,
		Skills:       stats.Skills,
		Requirements: stats.Requirements,
	}
	if cfg.Store.Backend == graph.BackendSQLite {
		result.Path = cfg.Store.Path
	}

	// Output
	if humanOutput {
		fmt.Printf("Backend: %s\n", result.Backend)
		if result.Path != "" {
			fmt.Printf("Path:    %s\n", result.Path)
		}
		fmt.Printf("Jobs:         %d\n", result.Jobs)
		fmt.Printf("Skills:       %d\n", result.Skills)
		fmt.Printf("Requirements: %d\n", result.Requirements)
	} else {
		outputJSON(result)
	}

	return nil
}
