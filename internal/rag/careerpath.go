package rag

import (
	"context"
	"fmt"
	"strings"
)

// careerMatchThreshold is the minimum similarity for a searched job to count
// as actually being the role the user named.
const careerMatchThreshold = 0.3

// CareerPathResult describes a transition between two roles: the skills the
// source role already provides and the skills the target role adds.
// Narrative is the human-readable summary; the list fields carry the same
// information structured.
type CareerPathResult struct {
	Success       bool     `json:"success"`
	FromQuery     string   `json:"from_query"`
	ToQuery       string   `json:"to_query"`
	FromTitle     string   `json:"from_title,omitempty"`
	ToTitle       string   `json:"to_title,omitempty"`
	Leverageable  []string `json:"leverageable"`
	SkillsToLearn []string `json:"skills_to_learn"`
	Narrative     string   `json:"narrative"`
}

// CareerPath finds a transition between two roles by matching each query to
// a stored job and comparing their required skills. Both sides must match a
// job whose resolved title overlaps the query text with similarity above
// the threshold; vague queries produce a try-more-common-titles narrative
// instead of a wrong path.
func (e *Engine) CareerPath(ctx context.Context, fromQuery, toQuery string) CareerPathResult {
	result := CareerPathResult{
		FromQuery:     fromQuery,
		ToQuery:       toQuery,
		Leverageable:  []string{},
		SkillsToLearn: []string{},
	}

	fromJobs, err := e.SearchJobs(ctx, fromQuery, 3)
	if err != nil {
		return e.careerPathDegraded(result, err)
	}
	toJobs, err := e.SearchJobs(ctx, toQuery, 3)
	if err != nil {
		return e.careerPathDegraded(result, err)
	}

	if len(fromJobs) == 0 || len(toJobs) == 0 {
		result.Narrative = "I couldn't find matching jobs for your query."
		return result
	}

	fromJobs = filterCareerMatches(fromJobs, fromQuery)
	toJobs = filterCareerMatches(toJobs, toQuery)
	if len(fromJobs) == 0 || len(toJobs) == 0 {
		result.Narrative = fmt.Sprintf(
			"I couldn't find specific job roles matching '%s' and '%s'. Please try more common job titles.",
			fromQuery, toQuery)
		return result
	}

	fromJob := fromJobs[0]
	toJob := toJobs[0]
	result.FromTitle = displayOrQuery(fromJob.Job.Title, fromQuery)
	result.ToTitle = displayOrQuery(toJob.Job.Title, toQuery)

	fromSkills, err := e.store.JobSkills(ctx, fromJob.Job.ID)
	if err != nil {
		return e.careerPathDegraded(result, err)
	}
	toSkills, err := e.store.JobSkills(ctx, toJob.Job.ID)
	if err != nil {
		return e.careerPathDegraded(result, err)
	}

	fromSet := make(map[string]bool, len(fromSkills))
	for _, s := range fromSkills {
		fromSet[s] = true
	}

	// Both lists keep the target side's order so output is deterministic.
	for _, s := range toSkills {
		if fromSet[s] {
			result.Leverageable = append(result.Leverageable, s)
		} else {
			result.SkillsToLearn = append(result.SkillsToLearn, s)
		}
	}

	if len(result.Leverageable) == 0 {
		result.Narrative = fmt.Sprintf(
			"There's no direct skill overlap between %s and %s. You may need to learn %s.",
			result.FromTitle, result.ToTitle, strings.Join(toSkills, ", "))
		result.Success = true
		return result
	}

	narrative := fmt.Sprintf(
		"To transition from %s to %s, you can leverage these common skills: %s.\n",
		result.FromTitle, result.ToTitle, strings.Join(result.Leverageable, ", "))
	if len(result.SkillsToLearn) > 0 {
		narrative += fmt.Sprintf(
			"You would need to learn these additional skills: %s.",
			strings.Join(result.SkillsToLearn, ", "))
	}
	result.Narrative = narrative
	result.Success = true
	return result
}

func (e *Engine) careerPathDegraded(result CareerPathResult, err error) CareerPathResult {
	e.logger.Error("career path analysis failed",
		"from", result.FromQuery, "to", result.ToQuery, "error", err)
	result.Success = false
	result.Narrative = fmt.Sprintf(
		"I found some matching positions for %s and %s, but couldn't create a detailed path between them.",
		result.FromQuery, result.ToQuery)
	return result
}

// filterCareerMatches keeps matches that plausibly ARE the queried role:
// similarity above the threshold and query/title substring overlap in
// either direction.
func filterCareerMatches(matches []JobMatch, query string) []JobMatch {
	q := strings.ToLower(query)
	kept := matches[:0]
	for _, m := range matches {
		if m.Similarity <= careerMatchThreshold {
			continue
		}
		title := strings.ToLower(m.Title)
		if strings.Contains(title, q) || strings.Contains(q, title) {
			kept = append(kept, m)
		}
	}
	return kept
}

// displayOrQuery shows the stored title when usable and otherwise falls
// back to what the user typed.
func displayOrQuery(storedTitle, query string) string {
	title := strings.TrimSpace(storedTitle)
	if usableTitle(title) {
		return title
	}
	return query
}
