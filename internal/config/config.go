// Package config handles jobgraph configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/jobgraph/config.yml.
// Every key is optional; missing keys keep their defaults and environment
// variables override both.
type Config struct {
	Store     StoreConfig     `yaml:"store,omitempty"`
	Neo4j     Neo4jConfig     `yaml:"neo4j,omitempty"`
	Postgres  PostgresConfig  `yaml:"postgres,omitempty"`
	LLM       LLMConfig       `yaml:"llm,omitempty"`
	Embedding EmbeddingConfig `yaml:"embedding,omitempty"`
}

// StoreConfig selects the graph store backend.
type StoreConfig struct {
	Backend string `yaml:"backend,omitempty"` // memory, sqlite, neo4j or postgres
	Path    string `yaml:"path,omitempty"`    // SQLite database file
}

// Neo4jConfig holds Bolt connection settings.
type Neo4jConfig struct {
	URI      string `yaml:"uri,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
}

// PostgresConfig holds Apache AGE connection settings.
type PostgresConfig struct {
	DSN   string `yaml:"dsn,omitempty"`
	Graph string `yaml:"graph,omitempty"`
}

// LLMConfig selects the answer-generation backend.
type LLMConfig struct {
	Backend string `yaml:"backend,omitempty"` // auto, huggingface, gemini or rules
	Model   string `yaml:"model,omitempty"`
}

// EmbeddingConfig holds text-embedding settings.
type EmbeddingConfig struct {
	Dimensions int `yaml:"dimensions,omitempty"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "jobgraph"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
)

// ValidStoreBackends lists the supported store.backend values.
var ValidStoreBackends = []string{"memory", "sqlite", "neo4j", "postgres"}

// ValidLLMBackends lists the supported llm.backend values.
var ValidLLMBackends = []string{"auto", "huggingface", "gemini", "rules"}

// Default returns the configuration used when no file and no environment
// overrides are present. The Neo4j values mirror the docker-compose setup
// this tool is usually pointed at.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: "sqlite",
			Path:    "~/.local/share/jobgraph/jobgraph.db",
		},
		Neo4j: Neo4jConfig{
			URI:      "bolt://localhost:7688",
			Username: "neo4j",
			Password: "password",
		},
		Postgres: PostgresConfig{
			Graph: "jobgraph",
		},
		LLM: LLMConfig{
			Backend: "auto",
			Model:   "google/flan-t5-base",
		},
		Embedding: EmbeddingConfig{
			Dimensions: 100,
		},
	}
}

// cache holds the loaded config so repeated Load calls within one process
// see the same values.
var cache *Config

// Path returns the path to the config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/jobgraph/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load returns the resolved configuration: defaults, overlaid by the config
// file when it exists, overlaid by environment variables. A missing file is
// not an error. The result is cached for the life of the process.
func Load() (*Config, error) {
	if cache != nil {
		return cache, nil
	}

	cfg := Default()

	if path := Path(); path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	applyEnv(cfg)
	cfg.Store.Path = ExpandPath(cfg.Store.Path)

	cache = cfg
	return cfg, nil
}

// ResetCache clears the cached config. Useful for testing.
func ResetCache() {
	cache = nil
}

// applyEnv overlays environment variables onto cfg. The generation API
// tokens (HUGGINGFACEHUB_API_TOKEN, GEMINI_API_KEY) are read directly by
// the generate package and have no file key.
func applyEnv(cfg *Config) {
	if v := os.Getenv("JOBGRAPH_STORE"); v != "" {
		cfg.Store.Backend = v
	}
	if v := os.Getenv("JOBGRAPH_DB_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("NEO4J_URI"); v != "" {
		cfg.Neo4j.URI = v
	}
	if v := os.Getenv("NEO4J_USER"); v != "" {
		cfg.Neo4j.Username = v
	}
	if v := os.Getenv("NEO4J_PASSWORD"); v != "" {
		cfg.Neo4j.Password = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
}

// ValidateStoreBackend checks that the backend value is valid.
func ValidateStoreBackend(backend string) error {
	for _, valid := range ValidStoreBackends {
		if backend == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid store.backend: %s (valid: %v)", backend, ValidStoreBackends)
}

// ValidateLLMBackend checks that the backend value is valid.
func ValidateLLMBackend(backend string) error {
	if backend == "" {
		return nil // Empty defaults to "auto"
	}

	for _, valid := range ValidLLMBackends {
		if backend == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid llm.backend: %s (valid: %v)", backend, ValidLLMBackends)
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}

// HelpfulConfigMessage returns a helpful message when configuration is
// missing or points nowhere usable.
func HelpfulConfigMessage() string {
	configPath := Path()
	return fmt.Sprintf(`No usable jobgraph configuration found.

Tip: Create %s to configure the store:
  mkdir -p %s
  printf 'store:\n  backend: sqlite\n' > %s

Environment variables override file values: JOBGRAPH_STORE, JOBGRAPH_DB_PATH,
NEO4J_URI, NEO4J_USER, NEO4J_PASSWORD, DATABASE_URL.`,
		configPath,
		filepath.Dir(configPath),
		configPath)
}
