package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jobgraph/jobgraph/internal/embedding"
	"github.com/jobgraph/jobgraph/internal/rag"
	"github.com/spf13/cobra"
)

var searchTop int

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVarP(&searchTop, "top", "k", 3, "Maximum number of results")
}

// SearchResponse is the response for the job search command.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []rag.JobMatch `json:"results"`
	Total   int            `json:"total"`
	Model   string         `json:"model"`
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search jobs by semantic similarity",
	Long: `Search jobs using embedding similarity over title, description,
company, and location.

The query and every stored job are embedded with the same hashed
bag-of-words scheme, so results depend on shared vocabulary rather than
exact phrasing. Ties keep store order and rankings are reproducible.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	query := strings.TrimSpace(args[0])

	// Validate query
	if query == "" {
		exitWithError(ExitError, "Search query cannot be empty")
	}

	engine := mustOpenEngine(ctx, false)
	defer engine.Close()

	results, err := engine.SearchJobs(ctx, query, searchTop)
	if err != nil {
		exitWithError(ExitStoreError, "searching jobs: %v", err)
	}

	// Output
	if humanOutput {
		fmt.Printf("Search: \"%s\"\n", query)
		fmt.Printf("Found %d matching jobs\n\n", len(results))
		printJobMatchesHuman(results)
	} else {
		outputJSON(SearchResponse{
			Query:   query,
			Results: results,
			Total:   len(results),
			Model:   embedding.SchemeName,
		})
	}

	return nil
}
