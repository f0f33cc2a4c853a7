package rag

import (
	"strings"
	"unicode"

	"github.com/jobgraph/jobgraph/internal/graph"
)

// ResolveDisplayTitle returns a human-readable label for a job. Upstream
// ingestion sometimes writes a numeric hash (or nothing) into the title
// field; every surface that shows a job to a person goes through this one
// function so they all repair such records the same way.
//
// A stored title is kept when it is non-empty, not purely numeric, and at
// least 5 characters long. Failing that the fallback order is: first
// sentence of the description (truncated to 50 chars plus "..." when
// longer), "{company} position in {location}", "Position at {company}",
// and finally "Job #{id}".
func ResolveDisplayTitle(job graph.Job) string {
	title := strings.TrimSpace(job.Title)
	if usableTitle(title) {
		return title
	}

	if strings.TrimSpace(job.Description) != "" {
		first, _, _ := strings.Cut(job.Description, ".")
		if len(first) > 50 {
			first = first[:50] + "..."
		}
		return strings.TrimSpace(first)
	}

	if job.Company != "" && job.Location != "" {
		return strings.TrimSpace(job.Company + " position in " + job.Location)
	}
	if job.Company != "" {
		return strings.TrimSpace("Position at " + job.Company)
	}
	return "Job #" + job.ID
}

// usableTitle reports whether a stored title can be shown as-is.
func usableTitle(title string) bool {
	if title == "" || len(title) < 5 {
		return false
	}
	return !isNumeric(title)
}

// isNumeric reports whether s is non-empty and entirely digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
