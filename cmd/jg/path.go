package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jobgraph/jobgraph/internal/rag"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pathCmd)
}

var pathCmd = &cobra.Command{
	Use:   "path <from-role> <to-role>",
	Short: "Plan a career transition between two roles",
	Long: `Path matches both role names to stored jobs and compares their
required skills: what carries over and what still has to be learned.

Examples:
  jg path "data scientist" "machine learning engineer"
  jg path "customer service" "sales manager"`,
	Args: cobra.ExactArgs(2),
	RunE: runPath,
}

func runPath(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	from := strings.TrimSpace(args[0])
	to := strings.TrimSpace(args[1])
	if from == "" || to == "" {
		exitWithError(ExitError, "Role names cannot be empty")
	}

	engine := mustOpenEngine(ctx, false)
	defer engine.Close()

	result := engine.CareerPath(ctx, from, to)

	// Output
	if humanOutput {
		printCareerPathHuman(result)
	} else {
		outputJSON(result)
	}

	return nil
}

// printCareerPathHuman prints a career transition in human-readable format.
func printCareerPathHuman(result rag.CareerPathResult) {
	fmt.Println(result.Narrative)
	if !result.Success {
		return
	}

	fmt.Println()
	fmt.Printf("From: %s\n", result.FromTitle)
	fmt.Printf("To:   %s\n", result.ToTitle)
	fmt.Printf("Transferable skills: %s\n", formatSkillList(result.Leverageable))
	fmt.Printf("Skills to learn:     %s\n", formatSkillList(result.SkillsToLearn))
}
