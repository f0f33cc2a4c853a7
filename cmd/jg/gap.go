package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jobgraph/jobgraph/internal/rag"
	"github.com/spf13/cobra"
)

var (
	gapSkills string
	gapResume string
	gapTarget string
)

func init() {
	rootCmd.AddCommand(gapCmd)

	gapCmd.Flags().StringVar(&gapSkills, "skills", "", "Comma-separated list of current skills")
	gapCmd.Flags().StringVar(&gapResume, "resume", "", "Plain-text resume to extract current skills from")
	gapCmd.Flags().StringVar(&gapTarget, "target", "", "Target role to analyze against")
	gapCmd.MarkFlagRequired("target")
}

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Analyze the skill gap to a target role",
	Long: `Gap compares the skills you have against what a target role requires.

Requirements are collected from the stored jobs that best match the target
role. Provide current skills directly with --skills, or point --resume at
a plain-text resume to extract them first.

Examples:
  jg gap --skills "python,sql" --target "machine learning engineer"
  jg gap --resume resume.txt --target "data scientist"`,
	Args: cobra.NoArgs,
	RunE: runGap,
}

func runGap(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Validate flags
	if gapSkills != "" && gapResume != "" {
		exitWithError(ExitError, "--skills and --resume are mutually exclusive")
	}
	if gapSkills == "" && gapResume == "" {
		exitWithError(ExitError, "Provide current skills with --skills or --resume")
	}
	target := strings.TrimSpace(gapTarget)
	if target == "" {
		exitWithError(ExitError, "Target role cannot be empty")
	}

	engine := mustOpenEngine(ctx, false)
	defer engine.Close()

	var currentSkills []string
	if gapResume != "" {
		data, err := os.ReadFile(gapResume)
		if err != nil {
			exitWithError(ExitError, "reading resume: %v", err)
		}
		currentSkills, err = engine.ExtractSkills(ctx, string(data))
		if err != nil {
			exitWithError(ExitStoreError, "extracting skills: %v", err)
		}
	} else {
		currentSkills = splitCSV(gapSkills)
	}

	result := engine.SkillPath(ctx, currentSkills, target)

	// Output
	if humanOutput {
		printSkillPathHuman(result)
	} else {
		outputJSON(result)
	}

	return nil
}

// printSkillPathHuman prints a skill-gap analysis in human-readable format.
func printSkillPathHuman(result rag.SkillPathResult) {
	if !result.Success {
		fmt.Println(result.Message)
		return
	}

	fmt.Printf("Target role: %s\n", result.TargetRole)
	if result.CurrentRole != nil {
		fmt.Printf("Closest current role: %s\n", result.CurrentRole.Title)
	}
	fmt.Println()
	fmt.Printf("Required skills: %s\n", formatSkillList(result.RequiredSkills))
	fmt.Printf("Already have:    %s\n", formatSkillList(result.AlreadyHave))
	fmt.Printf("Need to learn:   %s\n", formatSkillList(result.SkillsToLearn))
}
