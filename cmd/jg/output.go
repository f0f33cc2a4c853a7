package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jobgraph/jobgraph/internal/rag"
)

// Constants for output formatting.
const (
	// SearchDescriptionMaxLen bounds description previews in search results.
	SearchDescriptionMaxLen = 100
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// splitCSV splits a comma-separated flag value, trimming whitespace and
// dropping empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// redactSecret reports whether a secret is configured without echoing it.
func redactSecret(v string) string {
	if v == "" {
		return "(not set)"
	}
	return "(set)"
}

// formatSkillList renders a skill list for human output, with a placeholder
// for empty lists.
func formatSkillList(skills []string) string {
	if len(skills) == 0 {
		return "(none)"
	}
	return strings.Join(skills, ", ")
}

// printJobMatchesHuman prints job search results in human-readable format.
func printJobMatchesHuman(matches []rag.JobMatch) {
	for i, m := range matches {
		fmt.Printf("%d. [%.2f] %s\n", i+1, m.Similarity, m.Title)

		detail := m.Job.Company
		if m.Job.Location != "" {
			if detail != "" {
				detail += ", "
			}
			detail += m.Job.Location
		}
		if detail != "" {
			fmt.Printf("   %s\n", detail)
		}
		if m.Job.Description != "" {
			fmt.Printf("   %s\n", truncateString(m.Job.Description, SearchDescriptionMaxLen))
		}
		fmt.Println()
	}
}

// printSkillMatchesHuman prints skill search results in human-readable format.
func printSkillMatchesHuman(matches []rag.SkillMatch) {
	for i, m := range matches {
		if m.Skill.Category != "" {
			fmt.Printf("%d. [%.2f] %s (%s)\n", i+1, m.Similarity, m.Skill.Name, m.Skill.Category)
		} else {
			fmt.Printf("%d. [%.2f] %s\n", i+1, m.Similarity, m.Skill.Name)
		}
	}
}
