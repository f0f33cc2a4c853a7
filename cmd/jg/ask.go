package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func init() {
	// Load .env file if present (for GEMINI_API_KEY / HUGGINGFACEHUB_API_TOKEN)
	_ = godotenv.Load()

	rootCmd.AddCommand(askCmd)
}

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a question about the job market",
	Long: `Ask retrieves the jobs and skills most relevant to the question and
composes an answer from them.

With generation credentials the configured LLM writes the answer; without
them, or when the backend fails, a rule-based responder answers from the
same retrieved context. The response always names the generator used.

Environment Variables:
  GEMINI_API_KEY             Google Gemini API key
  HUGGINGFACEHUB_API_TOKEN   Hugging Face Inference API token`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	question := strings.TrimSpace(args[0])

	// Validate question
	if question == "" {
		exitWithError(ExitError, "Question cannot be empty")
	}

	engine := mustOpenEngine(ctx, true)
	defer engine.Close()

	answer, err := engine.AnswerQuestion(ctx, question)
	if err != nil {
		exitWithError(ExitStoreError, "answering question: %v", err)
	}

	// Output
	if humanOutput {
		fmt.Println(answer.Text)
		fmt.Println()
		fmt.Printf("Generator: %s\n", answer.Generator)
		if len(answer.Jobs) > 0 {
			titles := make([]string, len(answer.Jobs))
			for i, m := range answer.Jobs {
				titles[i] = m.Title
			}
			fmt.Printf("Context jobs: %s\n", strings.Join(titles, ", "))
		}
	} else {
		outputJSON(answer)
	}

	return nil
}
