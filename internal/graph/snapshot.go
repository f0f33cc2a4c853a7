package graph

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// Snapshot is the JSON fixture format consumed by store loading. It mirrors
// the upstream ingestion shape: flat job and skill lists plus requirement
// edges referencing them by ID.
type Snapshot struct {
	Jobs         []Job         `json:"jobs"`
	Skills       []Skill       `json:"skills"`
	Requirements []Requirement `json:"requirements"`
}

// ReadSnapshot loads and normalizes a snapshot from a JSON file.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	if err := snap.Normalize(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Normalize prepares a snapshot for loading: records arriving without an ID
// get a fresh UUID (upstream feeds drop IDs on some records), requirement
// edges are validated against the snapshot's own nodes, and duplicate
// (job_id, skill_id) pairs collapse so loading stays idempotent.
func (s *Snapshot) Normalize() error {
	jobIDs := make(map[string]bool, len(s.Jobs))
	for i := range s.Jobs {
		if s.Jobs[i].ID == "" {
			s.Jobs[i].ID = uuid.NewString()
		}
		jobIDs[s.Jobs[i].ID] = true
	}

	skillIDs := make(map[string]bool, len(s.Skills))
	for i := range s.Skills {
		if s.Skills[i].ID == "" {
			s.Skills[i].ID = uuid.NewString()
		}
		if s.Skills[i].Name == "" {
			return fmt.Errorf("skill %s has no name", s.Skills[i].ID)
		}
		skillIDs[s.Skills[i].ID] = true
	}

	seen := make(map[Requirement]bool, len(s.Requirements))
	deduped := s.Requirements[:0]
	for _, r := range s.Requirements {
		if !jobIDs[r.JobID] {
			return fmt.Errorf("requirement references unknown job %q", r.JobID)
		}
		if !skillIDs[r.SkillID] {
			return fmt.Errorf("requirement references unknown skill %q", r.SkillID)
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		deduped = append(deduped, r)
	}
	s.Requirements = deduped

	return nil
}

// SampleSnapshot returns a small built-in data set for demos and tests.
func SampleSnapshot() *Snapshot {
	return &Snapshot{
		Jobs: []Job{
			{
				ID:          "job-001",
				Title:       "Data Scientist",
				Company:     "Nordic Analytics",
				Location:    "Copenhagen",
				Salary:      "€70,000",
				Description: "Build predictive models on customer behavior data. Work with product teams to ship experiments.",
			},
			{
				ID:          "job-002",
				Title:       "Software Engineer",
				Company:     "Fjord Systems",
				Location:    "Oslo",
				Description: "Design and maintain backend services in Go. Own the deployment pipeline end to end.",
			},
			{
				ID:          "job-003",
				Title:       "Machine Learning Engineer",
				Company:     "Aurora Labs",
				Location:    "Stockholm",
				Salary:      "SEK 720,000",
				Description: "Productionize machine learning models and build the feature pipelines behind them.",
			},
			{
				// Upstream ingestion stored a hash where the title belongs;
				// display-title resolution has to repair records like this.
				ID:          "job-004",
				Title:       "8412937",
				Company:     "Baltic Data Works",
				Location:    "Tallinn",
				Description: "Senior Data Engineer. Responsible for warehouse modeling, batch pipelines, and data quality.",
			},
			{
				ID:          "job-005",
				Title:       "Customer Service Representative",
				Company:     "Polaris Retail",
				Location:    "Helsinki",
				Description: "Handle customer inquiries across chat and phone. Track issues and escalate recurring problems.",
			},
		},
		Skills: []Skill{
			{ID: "skill-001", Name: "Python", Category: "language"},
			{ID: "skill-002", Name: "SQL", Category: "language"},
			{ID: "skill-003", Name: "Machine Learning", Category: "data"},
			{ID: "skill-004", Name: "Go", Category: "language"},
			{ID: "skill-005", Name: "Docker", Category: "devops"},
			{ID: "skill-006", Name: "Kubernetes", Category: "devops"},
			{ID: "skill-007", Name: "Spark", Category: "data"},
			{ID: "skill-008", Name: "Airflow", Category: "data"},
			{ID: "skill-009", Name: "Communication", Category: "soft"},
			{ID: "skill-010", Name: "CRM Tools", Category: "tools"},
			{ID: "skill-011", Name: "Statistics", Category: "data"},
			{ID: "skill-012", Name: "JavaScript", Category: "language"},
		},
		Requirements: []Requirement{
			{JobID: "job-001", SkillID: "skill-001"},
			{JobID: "job-001", SkillID: "skill-002"},
			{JobID: "job-001", SkillID: "skill-003"},
			{JobID: "job-001", SkillID: "skill-011"},
			{JobID: "job-002", SkillID: "skill-004"},
			{JobID: "job-002", SkillID: "skill-005"},
			{JobID: "job-002", SkillID: "skill-002"},
			{JobID: "job-003", SkillID: "skill-001"},
			{JobID: "job-003", SkillID: "skill-003"},
			{JobID: "job-003", SkillID: "skill-005"},
			{JobID: "job-003", SkillID: "skill-006"},
			{JobID: "job-004", SkillID: "skill-002"},
			{JobID: "job-004", SkillID: "skill-007"},
			{JobID: "job-004", SkillID: "skill-008"},
			{JobID: "job-005", SkillID: "skill-009"},
			{JobID: "job-005", SkillID: "skill-010"},
		},
	}
}
