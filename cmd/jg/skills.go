package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jobgraph/jobgraph/internal/embedding"
	"github.com/jobgraph/jobgraph/internal/rag"
	"github.com/spf13/cobra"
)

var skillsTop int

func init() {
	rootCmd.AddCommand(skillsCmd)

	skillsCmd.Flags().IntVarP(&skillsTop, "top", "k", 5, "Maximum number of results")
}

// SkillsResponse is the response for the skill search command.
type SkillsResponse struct {
	Query   string           `json:"query"`
	Results []rag.SkillMatch `json:"results"`
	Total   int              `json:"total"`
	Model   string           `json:"model"`
}

var skillsCmd = &cobra.Command{
	Use:   "skills <query>",
	Short: "Search skills by semantic similarity",
	Long: `Search skills using embedding similarity over name and category.

Useful for finding what the store calls a skill before asking for gap
or match analysis, e.g. whether it stores "Machine Learning" or "ML".`,
	Args: cobra.ExactArgs(1),
	RunE: runSkills,
}

func runSkills(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	query := strings.TrimSpace(args[0])

	// Validate query
	if query == "" {
		exitWithError(ExitError, "Search query cannot be empty")
	}

	engine := mustOpenEngine(ctx, false)
	defer engine.Close()

	results, err := engine.SearchSkills(ctx, query, skillsTop)
	if err != nil {
		exitWithError(ExitStoreError, "searching skills: %v", err)
	}

	// Output
	if humanOutput {
		fmt.Printf("Search: \"%s\"\n", query)
		fmt.Printf("Found %d matching skills\n\n", len(results))
		printSkillMatchesHuman(results)
	} else {
		outputJSON(SkillsResponse{
			Query:   query,
			Results: results,
			Total:   len(results),
			Model:   embedding.SchemeName,
		})
	}

	return nil
}
