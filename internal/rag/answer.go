package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/jobgraph/jobgraph/internal/generate"
)

// Answer is a generated response plus the retrieval context that produced
// it. Generator names the backend that actually wrote Text, which may be
// the rule-based fallback even when a live backend is configured.
type Answer struct {
	Text      string       `json:"text"`
	Generator string       `json:"generator"`
	Jobs      []JobMatch   `json:"jobs"`
	Skills    []SkillMatch `json:"skills"`
}

// AnswerQuestion retrieves the jobs and skills most relevant to the
// question, assembles them into a prompt, and asks the generator. A
// generation failure degrades to the rule-based responder on the same
// prompt, so the only errors returned are store errors.
func (e *Engine) AnswerQuestion(ctx context.Context, question string) (Answer, error) {
	jobs, err := e.SearchJobs(ctx, question, 3)
	if err != nil {
		return Answer{}, fmt.Errorf("retrieving jobs: %w", err)
	}
	skills, err := e.SearchSkills(ctx, question, 5)
	if err != nil {
		return Answer{}, fmt.Errorf("retrieving skills: %w", err)
	}

	prompt := buildPrompt(question, jobs, skills)

	text, err := e.generator.Generate(ctx, prompt)
	generator := e.generator.Name()
	if err != nil {
		e.logger.Warn("generation failed, falling back to rule-based responder",
			"generator", generator, "error", err)
		fallback := generate.NewRules()
		text, _ = fallback.Generate(ctx, prompt)
		generator = fallback.Name()
	}

	return Answer{
		Text:      text,
		Generator: generator,
		Jobs:      jobs,
		Skills:    skills,
	}, nil
}

// buildPrompt renders the retrieval context and question in the fixed
// layout the rule-based responder also parses.
func buildPrompt(question string, jobs []JobMatch, skills []SkillMatch) string {
	var b strings.Builder
	b.WriteString("Based on the job market information:\n\n")

	if len(jobs) > 0 {
		b.WriteString("Relevant jobs:\n")
		for _, m := range jobs {
			company := m.Job.Company
			if company == "" {
				company = "Unknown company"
			}
			location := m.Job.Location
			if location == "" {
				location = "Unknown location"
			}
			description := m.Job.Description
			if description == "" {
				description = "No description available"
			}

			fmt.Fprintf(&b, "- %s at %s in %s\n", m.Title, company, location)
			fmt.Fprintf(&b, "  Description: %s...\n\n", truncate(description, 200))
		}
	}

	if len(skills) > 0 {
		b.WriteString("Relevant skills:\n")
		for _, m := range skills {
			fmt.Fprintf(&b, "- %s\n", m.Skill.Name)
		}
	}

	return fmt.Sprintf("%s\n\nQuestion: %s\nAnswer:", b.String(), question)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
