package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(extractCmd)
}

// ExtractResponse is the response for the extract command.
type ExtractResponse struct {
	File   string   `json:"file"`
	Skills []string `json:"skills"`
	Total  int      `json:"total"`
}

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract known skills from a resume",
	Long: `Extract scans a plain-text resume for skills the store knows about.

Only stored skill names are reported, so the output feeds directly into
'jg gap --skills' and 'jg match --skills'.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	data, err := os.ReadFile(args[0])
	if err != nil {
		exitWithError(ExitError, "reading resume: %v", err)
	}

	engine := mustOpenEngine(ctx, false)
	defer engine.Close()

	skills, err := engine.ExtractSkills(ctx, string(data))
	if err != nil {
		exitWithError(ExitStoreError, "extracting skills: %v", err)
	}

	// Output
	if humanOutput {
		fmt.Printf("Skills found in %s: %s\n", args[0], formatSkillList(skills))
	} else {
		outputJSON(ExtractResponse{
			File:   args[0],
			Skills: skills,
			Total:  len(skills),
		})
	}

	return nil
}
