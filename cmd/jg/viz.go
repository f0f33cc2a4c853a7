package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jobgraph/jobgraph/internal/viz"
	"github.com/spf13/cobra"
)

var (
	vizOut    string
	vizLayout string
)

// VizResult is the response for the viz command.
type VizResult struct {
	Path  string `json:"path"`
	Nodes int    `json:"nodes"`
	Edges int    `json:"edges"`
}

func init() {
	rootCmd.AddCommand(vizCmd)

	vizCmd.Flags().StringVarP(&vizOut, "out", "o", "jobgraph.html", "Output HTML file")
	vizCmd.Flags().StringVar(&vizLayout, "layout", "force",
		"Graph layout: "+strings.Join(viz.ValidLayouts, ", "))
}

var vizCmd = &cobra.Command{
	Use:   "viz",
	Short: "Export the job graph as interactive HTML",
	Long: `Viz renders the whole store as a self-contained HTML page.

Jobs and skills become nodes, requirements become edges. The page loads
Cytoscape.js from a CDN; tap a node to highlight its neighborhood.

Examples:
  jg viz
  jg viz --out graph.html --layout circle`,
	Args: cobra.NoArgs,
	RunE: runViz,
}

func runViz(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg := mustLoadConfig()
	store := mustOpenStore(ctx, cfg)
	defer store.Close()

	graphData, err := viz.BuildGraph(ctx, store)
	if err != nil {
		exitWithError(ExitStoreError, "building graph: %v", err)
	}

	html, err := viz.GenerateHTML(graphData, viz.HTMLOptions{Layout: vizLayout})
	if err != nil {
		exitWithError(ExitError, "generating HTML: %v", err)
	}

	if err := os.WriteFile(vizOut, []byte(html), 0o644); err != nil {
		exitWithError(ExitError, "writing %s: %v", vizOut, err)
	}

	// Output result
	result := VizResult{
		Path:  vizOut,
		Nodes: len(graphData.Nodes),
		Edges: len(graphData.Edges),
	}

	if humanOutput {
		fmt.Printf("Wrote %s (%d nodes, %d edges)\n", result.Path, result.Nodes, result.Edges)
	} else {
		outputJSON(result)
	}

	return nil
}
