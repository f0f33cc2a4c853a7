// Package graph defines the read boundary to the job/skill knowledge graph
// and its storage backends. Jobs, skills, and their REQUIRES_SKILL edges live
// in an external store; the matching engine only reads through the Store
// interface and never writes through it.
package graph

import "context"

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendNeo4j    = "neo4j"
	BackendPostgres = "postgres"
)

// Job is a job posting node. Upstream ingestion sometimes stores a numeric
// hash in Title; callers that need a human-readable label must not use Title
// directly.
type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Salary      string `json:"salary,omitempty"`
	Description string `json:"description"`
}

// Skill is a skill node. Names are free text and not normalized: "React"
// and "react.js" may coexist as distinct skills.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// Requirement is the snapshot form of a REQUIRES_SKILL edge.
type Requirement struct {
	JobID   string `json:"job_id"`
	SkillID string `json:"skill_id"`
}

// Stats reports node and edge counts for a store.
type Stats struct {
	Jobs         int `json:"jobs"`
	Skills       int `json:"skills"`
	Requirements int `json:"requirements"`
}

// Store is the read boundary to the knowledge graph. Jobs and Skills return
// every node in a stable, backend-defined order; ranking callers rely on
// that order for deterministic tie-breaking.
type Store interface {
	// Jobs returns all job nodes.
	Jobs(ctx context.Context) ([]Job, error)

	// Skills returns all skill nodes.
	Skills(ctx context.Context) ([]Skill, error)

	// JobSkills returns the names of the skills required by one job, in
	// backend order. A job with no requirements yields an empty slice.
	JobSkills(ctx context.Context, jobID string) ([]string, error)

	// Stats returns node and edge counts.
	Stats(ctx context.Context) (Stats, error)

	// Close releases the store's connection.
	Close() error
}
