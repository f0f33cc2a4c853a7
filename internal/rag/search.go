package rag

import (
	"context"
	"fmt"
	"sort"

	"github.com/jobgraph/jobgraph/internal/embedding"
	"github.com/jobgraph/jobgraph/internal/graph"
)

// JobMatch is one ranked job search result. Title is the resolved display
// title, which may differ from Job.Title for malformed records.
type JobMatch struct {
	Job        graph.Job `json:"job"`
	Title      string    `json:"title"`
	Similarity float32   `json:"similarity"`
}

// SkillMatch is one ranked skill search result.
type SkillMatch struct {
	Skill      graph.Skill `json:"skill"`
	Similarity float32     `json:"similarity"`
}

// SearchJobs ranks all jobs against the query by embedding similarity and
// returns the top k. Each job is scored on its resolved title, description,
// company, and location combined. k <= 0 or k beyond the result count
// returns everything. Ties keep store order, so rankings are reproducible.
func (e *Engine) SearchJobs(ctx context.Context, query string, k int) ([]JobMatch, error) {
	jobs, err := e.store.Jobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching jobs: %w", err)
	}

	queryEmb, err := e.provider.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	matches := make([]JobMatch, 0, len(jobs))
	for _, job := range jobs {
		title := ResolveDisplayTitle(job)
		doc := title + " " + job.Description + " " + job.Company + " " + job.Location

		docEmb, err := e.provider.Embed(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("embedding job %s: %w", job.ID, err)
		}

		matches = append(matches, JobMatch{
			Job:        job,
			Title:      title,
			Similarity: embedding.Similarity(queryEmb, docEmb),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	if k > 0 && len(matches) > k {
		matches = matches[:k]
	}
	return matches, nil
}

// SearchSkills ranks all skills against the query by name similarity and
// returns the top k. k <= 0 or k beyond the result count returns everything.
func (e *Engine) SearchSkills(ctx context.Context, query string, k int) ([]SkillMatch, error) {
	skills, err := e.store.Skills(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching skills: %w", err)
	}

	queryEmb, err := e.provider.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	matches := make([]SkillMatch, 0, len(skills))
	for _, skill := range skills {
		nameEmb, err := e.provider.Embed(ctx, skill.Name)
		if err != nil {
			return nil, fmt.Errorf("embedding skill %s: %w", skill.ID, err)
		}

		matches = append(matches, SkillMatch{
			Skill:      skill,
			Similarity: embedding.Similarity(queryEmb, nameEmb),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	if k > 0 && len(matches) > k {
		matches = matches[:k]
	}
	return matches, nil
}
