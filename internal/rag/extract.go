package rag

import (
	"context"
	"fmt"
	"strings"
)

// ExtractSkills finds which of the store's known skills appear in free text,
// e.g. pasted resume notes. The graph is the dictionary: a skill counts when
// its name occurs in the text case-insensitively. Results keep store order
// and are de-duplicated by name.
func (e *Engine) ExtractSkills(ctx context.Context, text string) ([]string, error) {
	skills, err := e.store.Skills(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching skills: %w", err)
	}

	haystack := strings.ToLower(text)
	found := []string{}
	seen := make(map[string]bool)
	for _, skill := range skills {
		name := strings.TrimSpace(skill.Name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		if strings.Contains(haystack, key) {
			seen[key] = true
			found = append(found, name)
		}
	}
	return found, nil
}
