package rag

import (
	"context"
	"strings"
	"testing"

	"github.com/jobgraph/jobgraph/internal/graph"
)

const wantInDemandAnswer = "Based on the job market data, the most in-demand skills include Python, AI, and fluent language abilities. These skills appear frequently in job postings across different sectors."

func TestAnswerQuestion_RuleBased(t *testing.T) {
	e := sampleEngine(t)

	answer, err := e.AnswerQuestion(context.Background(), "What skills are in demand?")
	if err != nil {
		t.Fatalf("AnswerQuestion() error = %v", err)
	}

	if answer.Text != wantInDemandAnswer {
		t.Errorf("Text = %q, want %q", answer.Text, wantInDemandAnswer)
	}
	if answer.Generator != "rules" {
		t.Errorf("Generator = %q, want rules", answer.Generator)
	}
	if len(answer.Jobs) != 3 {
		t.Errorf("len(Jobs) = %d, want 3", len(answer.Jobs))
	}
	if len(answer.Skills) != 5 {
		t.Errorf("len(Skills) = %d, want 5", len(answer.Skills))
	}
}

func TestAnswerQuestion_FallbackOnGeneratorError(t *testing.T) {
	store := graph.NewMemoryStore()
	if err := store.LoadSnapshot(graph.SampleSnapshot()); err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}
	e := New(store, WithGenerator(failingGenerator{}))

	answer, err := e.AnswerQuestion(context.Background(), "What skills are in demand?")
	if err != nil {
		t.Fatalf("AnswerQuestion() error = %v", err)
	}

	if answer.Generator != "rules" {
		t.Errorf("Generator = %q, want rules after fallback", answer.Generator)
	}
	if answer.Text != wantInDemandAnswer {
		t.Errorf("Text = %q, want canned fallback answer", answer.Text)
	}
}

func TestAnswerQuestion_StoreErrors(t *testing.T) {
	inner := graph.NewMemoryStore()
	if err := inner.LoadSnapshot(graph.SampleSnapshot()); err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}

	tests := []struct {
		name  string
		store *brokenStore
		want  string
	}{
		{"jobs unavailable", &brokenStore{inner: inner, failJobs: true}, "retrieving jobs"},
		{"skills unavailable", &brokenStore{inner: inner, failSkills: true}, "retrieving skills"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(tt.store)
			_, err := e.AnswerQuestion(context.Background(), "anything")
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("AnswerQuestion() error = %v, want wrapped %q", err, tt.want)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	jobs := []JobMatch{
		{
			Job: graph.Job{
				ID:          "j1",
				Title:       "Data Scientist",
				Company:     "Nordic Analytics",
				Location:    "Helsinki",
				Description: "Build models.",
			},
			Title: "Data Scientist",
		},
		{
			Job:   graph.Job{ID: "j2", Title: "Analyst"},
			Title: "Analyst",
		},
	}
	skills := []SkillMatch{
		{Skill: graph.Skill{ID: "s1", Name: "Python"}},
		{Skill: graph.Skill{ID: "s2", Name: "SQL"}},
	}

	got := buildPrompt("What skills are in demand?", jobs, skills)

	want := "Based on the job market information:\n\n" +
		"Relevant jobs:\n" +
		"- Data Scientist at Nordic Analytics in Helsinki\n" +
		"  Description: Build models....\n\n" +
		"- Analyst at Unknown company in Unknown location\n" +
		"  Description: No description available...\n\n" +
		"Relevant skills:\n" +
		"- Python\n" +
		"- SQL\n" +
		"\n\nQuestion: What skills are in demand?\nAnswer:"
	if got != want {
		t.Errorf("buildPrompt() =\n%q\nwant\n%q", got, want)
	}
}

func TestBuildPrompt_TruncatesLongDescriptions(t *testing.T) {
	long := strings.Repeat("x", 300)
	jobs := []JobMatch{
		{Job: graph.Job{Description: long, Company: "C", Location: "L"}, Title: "T"},
	}

	got := buildPrompt("q", jobs, nil)

	if strings.Contains(got, long) {
		t.Error("description was not truncated")
	}
	if want := strings.Repeat("x", 200) + "..."; !strings.Contains(got, want) {
		t.Error("truncated description missing from prompt")
	}
}

func TestBuildPrompt_NoContext(t *testing.T) {
	got := buildPrompt("Anything out there?", nil, nil)

	want := "Based on the job market information:\n\n\n\nQuestion: Anything out there?\nAnswer:"
	if got != want {
		t.Errorf("buildPrompt() = %q, want %q", got, want)
	}
}
