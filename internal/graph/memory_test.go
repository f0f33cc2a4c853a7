package graph

import (
	"context"
	"testing"
)

var _ Store = (*MemoryStore)(nil)

func newSampleMemoryStore(t *testing.T) *MemoryStore {
	t.Helper()

	store := NewMemoryStore()
	if err := store.LoadSnapshot(SampleSnapshot()); err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}
	return store
}

func TestMemoryStore_Jobs_InsertionOrder(t *testing.T) {
	store := newSampleMemoryStore(t)

	jobs, err := store.Jobs(context.Background())
	if err != nil {
		t.Fatalf("Jobs() error = %v", err)
	}
	if len(jobs) != 5 {
		t.Fatalf("Jobs() len = %d, want 5", len(jobs))
	}
	if jobs[0].ID != "job-001" || jobs[4].ID != "job-005" {
		t.Errorf("Jobs() order = [%s ... %s], want [job-001 ... job-005]", jobs[0].ID, jobs[4].ID)
	}
	if jobs[0].Title != "Data Scientist" {
		t.Errorf("jobs[0].Title = %q, want Data Scientist", jobs[0].Title)
	}
	if jobs[0].Company != "Nordic Analytics" {
		t.Errorf("jobs[0].Company = %q, want Nordic Analytics", jobs[0].Company)
	}
}

func TestMemoryStore_Jobs_ReturnsCopy(t *testing.T) {
	store := newSampleMemoryStore(t)
	ctx := context.Background()

	first, err := store.Jobs(ctx)
	if err != nil {
		t.Fatalf("Jobs() error = %v", err)
	}
	first[0].Title = "mutated"

	second, err := store.Jobs(ctx)
	if err != nil {
		t.Fatalf("Jobs() error = %v", err)
	}
	if second[0].Title != "Data Scientist" {
		t.Errorf("Jobs() second read title = %q, want Data Scientist", second[0].Title)
	}
}

func TestMemoryStore_Skills(t *testing.T) {
	store := newSampleMemoryStore(t)

	skills, err := store.Skills(context.Background())
	if err != nil {
		t.Fatalf("Skills() error = %v", err)
	}
	if len(skills) != 12 {
		t.Fatalf("Skills() len = %d, want 12", len(skills))
	}
	if skills[0].Name != "Python" {
		t.Errorf("skills[0].Name = %q, want Python", skills[0].Name)
	}
}

func TestMemoryStore_JobSkills(t *testing.T) {
	store := newSampleMemoryStore(t)
	ctx := context.Background()

	tests := []struct {
		jobID string
		want  []string
	}{
		{"job-001", []string{"Python", "SQL", "Machine Learning", "Statistics"}},
		{"job-002", []string{"Go", "Docker", "SQL"}},
		{"job-005", []string{"Communication", "CRM Tools"}},
		{"no-such-job", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.jobID, func(t *testing.T) {
			got, err := store.JobSkills(ctx, tt.jobID)
			if err != nil {
				t.Fatalf("JobSkills() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("JobSkills() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("JobSkills()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMemoryStore_Stats(t *testing.T) {
	store := newSampleMemoryStore(t)

	stats, err := store.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	want := Stats{Jobs: 5, Skills: 12, Requirements: 16}
	if stats != want {
		t.Errorf("Stats() = %+v, want %+v", stats, want)
	}
}

func TestMemoryStore_InsertRequirement_UnknownSkill(t *testing.T) {
	store := NewMemoryStore()
	store.InsertJob(Job{ID: "j1", Title: "Tester"})

	if err := store.InsertRequirement("j1", "missing"); err == nil {
		t.Error("InsertRequirement() with unknown skill: error = nil, want error")
	}
}

func TestMemoryStore_InsertRequirement_Idempotent(t *testing.T) {
	store := NewMemoryStore()
	store.InsertJob(Job{ID: "j1", Title: "Tester"})
	store.InsertSkill(Skill{ID: "s1", Name: "Selenium"})

	for i := 0; i < 3; i++ {
		if err := store.InsertRequirement("j1", "s1"); err != nil {
			t.Fatalf("InsertRequirement() error = %v", err)
		}
	}

	stats, err := store.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Requirements != 1 {
		t.Errorf("Stats().Requirements = %d, want 1", stats.Requirements)
	}
}
