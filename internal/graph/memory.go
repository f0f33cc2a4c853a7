package graph

import (
	"context"
	"fmt"
)

// MemoryStore keeps the graph in process memory, preserving insertion order.
// It backs tests and the demo `memory` backend.
type MemoryStore struct {
	jobs       []Job
	skills     []Skill
	skillNames map[string]string   // skill ID -> name
	required   map[string][]string // job ID -> skill IDs in insertion order
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		skillNames: make(map[string]string),
		required:   make(map[string][]string),
	}
}

// InsertJob appends a job.
func (s *MemoryStore) InsertJob(j Job) {
	s.jobs = append(s.jobs, j)
}

// InsertSkill appends a skill.
func (s *MemoryStore) InsertSkill(sk Skill) {
	s.skills = append(s.skills, sk)
	s.skillNames[sk.ID] = sk.Name
}

// InsertRequirement records a REQUIRES_SKILL edge. Inserting the same edge
// twice is a no-op.
func (s *MemoryStore) InsertRequirement(jobID, skillID string) error {
	if _, ok := s.skillNames[skillID]; !ok {
		return fmt.Errorf("unknown skill %q", skillID)
	}
	for _, existing := range s.required[jobID] {
		if existing == skillID {
			return nil
		}
	}
	s.required[jobID] = append(s.required[jobID], skillID)
	return nil
}

// LoadSnapshot inserts the snapshot's jobs, skills, and requirements.
func (s *MemoryStore) LoadSnapshot(snap *Snapshot) error {
	for _, j := range snap.Jobs {
		s.InsertJob(j)
	}
	for _, sk := range snap.Skills {
		s.InsertSkill(sk)
	}
	for _, r := range snap.Requirements {
		if err := s.InsertRequirement(r.JobID, r.SkillID); err != nil {
			return fmt.Errorf("loading requirement: %w", err)
		}
	}
	return nil
}

// Jobs returns all jobs in insertion order.
func (s *MemoryStore) Jobs(ctx context.Context) ([]Job, error) {
	jobs := make([]Job, len(s.jobs))
	copy(jobs, s.jobs)
	return jobs, nil
}

// Skills returns all skills in insertion order.
func (s *MemoryStore) Skills(ctx context.Context) ([]Skill, error) {
	skills := make([]Skill, len(s.skills))
	copy(skills, s.skills)
	return skills, nil
}

// JobSkills returns the skill names required by a job in insertion order.
func (s *MemoryStore) JobSkills(ctx context.Context, jobID string) ([]string, error) {
	ids := s.required[jobID]
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, s.skillNames[id])
	}
	return names, nil
}

// Stats returns node and edge counts.
func (s *MemoryStore) Stats(ctx context.Context) (Stats, error) {
	edges := 0
	for _, ids := range s.required {
		edges += len(ids)
	}
	return Stats{Jobs: len(s.jobs), Skills: len(s.skills), Requirements: edges}, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
