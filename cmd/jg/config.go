package main

import (
	"fmt"
	"os"

	"github.com/jobgraph/jobgraph/internal/config"
	"github.com/jobgraph/jobgraph/internal/embedding"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func init() {
	// Load .env file if present, so credential status reflects it
	_ = godotenv.Load()

	rootCmd.AddCommand(configCmd)
}

// ConfigResponse is the response for the config command. Secrets are
// reported as set or not set, never echoed.
type ConfigResponse struct {
	File          string `json:"file"`
	StoreBackend  string `json:"store_backend"`
	StorePath     string `json:"store_path"`
	Neo4jURI      string `json:"neo4j_uri"`
	Neo4jUser     string `json:"neo4j_user"`
	Neo4jPassword string `json:"neo4j_password"`
	PostgresDSN   string `json:"postgres_dsn"`
	PostgresGraph string `json:"postgres_graph"`
	LLMBackend    string `json:"llm_backend"`
	LLMModel      string `json:"llm_model"`
	EmbeddingDims int    `json:"embedding_dimensions"`
	HFToken       string `json:"huggingface_token"`
	GeminiKey     string `json:"gemini_key"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show resolved configuration",
	Long: `Show the configuration every command runs with, after defaults,
the config file, and environment overrides are merged.

Secrets report only whether they are set. Edit the file at the printed
path to change settings; 'jg check' validates them.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	dims := cfg.Embedding.Dimensions
	if dims <= 0 {
		dims = embedding.DefaultDimensions
	}

	resp := ConfigResponse{
		File:          config.Path(),
		StoreBackend:  cfg.Store.Backend,
		StorePath:     cfg.Store.Path,
		Neo4jURI:      cfg.Neo4j.URI,
		Neo4jUser:     cfg.Neo4j.Username,
		Neo4jPassword: redactSecret(cfg.Neo4j.Password),
		PostgresDSN:   redactSecret(cfg.Postgres.DSN),
		PostgresGraph: cfg.Postgres.Graph,
		LLMBackend:    displayLLMBackend(cfg.LLM.Backend),
		LLMModel:      cfg.LLM.Model,
		EmbeddingDims: dims,
		HFToken:       redactSecret(os.Getenv("HUGGINGFACEHUB_API_TOKEN")),
		GeminiKey:     redactSecret(os.Getenv("GEMINI_API_KEY")),
	}

	// Output
	if humanOutput {
		fmt.Printf("file:            %s\n", resp.File)
		fmt.Printf("store backend:   %s\n", resp.StoreBackend)
		fmt.Printf("store path:      %s\n", resp.StorePath)
		fmt.Printf("neo4j uri:       %s\n", resp.Neo4jURI)
		fmt.Printf("neo4j user:      %s\n", resp.Neo4jUser)
		fmt.Printf("neo4j password:  %s\n", resp.Neo4jPassword)
		fmt.Printf("postgres dsn:    %s\n", resp.PostgresDSN)
		fmt.Printf("postgres graph:  %s\n", resp.PostgresGraph)
		fmt.Printf("llm backend:     %s\n", resp.LLMBackend)
		fmt.Printf("llm model:       %s\n", resp.LLMModel)
		fmt.Printf("embedding dims:  %d\n", resp.EmbeddingDims)
		fmt.Printf("hf token:        %s\n", resp.HFToken)
		fmt.Printf("gemini key:      %s\n", resp.GeminiKey)
	} else {
		outputJSON(resp)
	}

	return nil
}
