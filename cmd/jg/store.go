package main

import (
	"github.com/spf13/cobra"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Graph store management commands",
	Long: `Manage the job graph store behind every query command.

The default backend is a local SQLite file; Neo4j and PostgreSQL (Apache
AGE) backends are configured in config.yml for shared deployments. init
and load manage the SQLite file, info works against any backend.`,
}

func init() {
	rootCmd.AddCommand(storeCmd)
}
