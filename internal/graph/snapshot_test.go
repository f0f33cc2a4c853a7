package graph

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadSnapshot(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "snapshot.json")

	data := `{
		"jobs": [
			{"id": "j1", "title": "Backend Developer", "company": "Acme", "location": "Berlin", "description": "Build APIs."}
		],
		"skills": [
			{"id": "s1", "name": "Go"},
			{"id": "s2", "name": "PostgreSQL"}
		],
		"requirements": [
			{"job_id": "j1", "skill_id": "s1"},
			{"job_id": "j1", "skill_id": "s2"}
		]
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	snap, err := ReadSnapshot(path)
	if err != nil {
		t.Fatalf("ReadSnapshot() error = %v", err)
	}
	if len(snap.Jobs) != 1 || len(snap.Skills) != 2 || len(snap.Requirements) != 2 {
		t.Errorf("ReadSnapshot() sizes = %d/%d/%d, want 1/2/2",
			len(snap.Jobs), len(snap.Skills), len(snap.Requirements))
	}
	if snap.Jobs[0].Title != "Backend Developer" {
		t.Errorf("Jobs[0].Title = %q, want Backend Developer", snap.Jobs[0].Title)
	}
}

func TestReadSnapshot_MissingFile(t *testing.T) {
	if _, err := ReadSnapshot(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("ReadSnapshot() with missing file: error = nil, want error")
	}
}

func TestReadSnapshot_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := ReadSnapshot(path); err == nil {
		t.Error("ReadSnapshot() with bad JSON: error = nil, want error")
	}
}

func TestSnapshot_Normalize_AssignsIDs(t *testing.T) {
	snap := &Snapshot{
		Jobs:   []Job{{Title: "Analyst"}},
		Skills: []Skill{{Name: "Excel"}},
	}

	if err := snap.Normalize(); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if snap.Jobs[0].ID == "" {
		t.Error("Normalize() left job ID empty, want generated ID")
	}
	if snap.Skills[0].ID == "" {
		t.Error("Normalize() left skill ID empty, want generated ID")
	}
}

func TestSnapshot_Normalize_Validation(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
	}{
		{
			name: "unknown job in requirement",
			snap: Snapshot{
				Skills:       []Skill{{ID: "s1", Name: "Go"}},
				Requirements: []Requirement{{JobID: "ghost", SkillID: "s1"}},
			},
		},
		{
			name: "unknown skill in requirement",
			snap: Snapshot{
				Jobs:         []Job{{ID: "j1", Title: "Dev"}},
				Requirements: []Requirement{{JobID: "j1", SkillID: "ghost"}},
			},
		},
		{
			name: "skill without name",
			snap: Snapshot{
				Skills: []Skill{{ID: "s1"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.snap.Normalize(); err == nil {
				t.Error("Normalize() error = nil, want error")
			}
		})
	}
}

func TestSnapshot_Normalize_DedupesRequirements(t *testing.T) {
	snap := &Snapshot{
		Jobs:   []Job{{ID: "j1", Title: "Dev"}},
		Skills: []Skill{{ID: "s1", Name: "Go"}},
		Requirements: []Requirement{
			{JobID: "j1", SkillID: "s1"},
			{JobID: "j1", SkillID: "s1"},
			{JobID: "j1", SkillID: "s1"},
		},
	}

	if err := snap.Normalize(); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(snap.Requirements) != 1 {
		t.Errorf("Normalize() requirements len = %d, want 1", len(snap.Requirements))
	}
}

func TestSampleSnapshot_IsValid(t *testing.T) {
	snap := SampleSnapshot()

	if err := snap.Normalize(); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(snap.Jobs) != 5 {
		t.Errorf("Jobs len = %d, want 5", len(snap.Jobs))
	}
	if len(snap.Skills) != 12 {
		t.Errorf("Skills len = %d, want 12", len(snap.Skills))
	}
	if len(snap.Requirements) != 16 {
		t.Errorf("Requirements len = %d, want 16", len(snap.Requirements))
	}
}
