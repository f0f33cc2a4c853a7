package viz

import (
	"context"
	"fmt"

	"github.com/jobgraph/jobgraph/internal/graph"
	"github.com/jobgraph/jobgraph/internal/rag"
)

// BuildGraph queries the store and constructs a complete GraphData structure
// for visualization: one node per job, one node per skill with its demand
// count for sizing, and one edge per requirement.
func BuildGraph(ctx context.Context, store graph.Store) (*GraphData, error) {
	jobs, err := store.Jobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading jobs: %w", err)
	}
	skills, err := store.Skills(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading skills: %w", err)
	}

	edges, demand, err := buildRequirementEdges(ctx, store, jobs, skills)
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, 0, len(jobs)+len(skills))
	for _, j := range jobs {
		nodes = append(nodes, newJobNode(j))
	}
	for _, s := range skills {
		nodes = append(nodes, newSkillNode(s, demand[s.ID]))
	}

	return &GraphData{Nodes: nodes, Edges: edges}, nil
}

// buildRequirementEdges walks each job's requirements and produces edges
// keyed by node IDs plus per-skill demand counts. Requirements naming a
// skill absent from the skill list are skipped.
func buildRequirementEdges(ctx context.Context, store graph.Store, jobs []graph.Job, skills []graph.Skill) ([]Edge, map[string]int, error) {
	skillIDByName := make(map[string]string, len(skills))
	for _, s := range skills {
		skillIDByName[s.Name] = s.ID
	}

	edges := []Edge{}
	demand := make(map[string]int, len(skills))
	for _, j := range jobs {
		names, err := store.JobSkills(ctx, j.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("loading requirements for job %s: %w", j.ID, err)
		}
		for _, name := range names {
			skillID, ok := skillIDByName[name]
			if !ok {
				continue
			}
			demand[skillID]++
			edges = append(edges, Edge{Source: j.ID, Target: skillID})
		}
	}

	return edges, demand, nil
}

// newJobNode creates a visualization node from a job posting.
func newJobNode(j graph.Job) Node {
	return Node{
		ID:       j.ID,
		Type:     NodeTypeJob,
		Label:    rag.ResolveDisplayTitle(j),
		Company:  j.Company,
		Location: j.Location,
		Salary:   j.Salary,
	}
}

// newSkillNode creates a visualization node from a skill with its demand count.
func newSkillNode(s graph.Skill, demand int) Node {
	return Node{
		ID:       s.ID,
		Type:     NodeTypeSkill,
		Label:    s.Name,
		Category: s.Category,
		Demand:   demand,
	}
}
