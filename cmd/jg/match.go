package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	matchSkills string
	matchJobID  string
)

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringVar(&matchSkills, "skills", "", "Comma-separated list of candidate skills")
	matchCmd.Flags().StringVar(&matchJobID, "job", "", "ID of the job to score against")
	matchCmd.MarkFlagRequired("skills")
	matchCmd.MarkFlagRequired("job")
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score candidate skills against one job's requirements",
	Long: `Match scores how well a set of skills covers a specific job's
requirements. Matching is by exact name (case-insensitive), so it is
stricter than the gap analysis.

Find job IDs with 'jg search' first.

Example:
  jg match --skills "python,sql" --job job-001`,
	Args: cobra.NoArgs,
	RunE: runMatch,
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	skills := splitCSV(matchSkills)
	if len(skills) == 0 {
		exitWithError(ExitError, "Skill list cannot be empty")
	}

	engine := mustOpenEngine(ctx, false)
	defer engine.Close()

	analysis, err := engine.MatchJob(ctx, skills, matchJobID)
	if err != nil {
		exitWithError(ExitStoreError, "matching job: %v", err)
	}

	// Output
	if humanOutput {
		fmt.Printf("Job %s: %.0f%% match\n\n", analysis.JobID, analysis.Percentage)
		fmt.Printf("Matched: %s\n", formatSkillList(analysis.SkillsMatched))
		fmt.Printf("Missing: %s\n", formatSkillList(analysis.SkillsMissing))
	} else {
		outputJSON(analysis)
	}

	return nil
}
