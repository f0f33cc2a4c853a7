package rag

import (
	"context"
	"testing"

	"github.com/jobgraph/jobgraph/internal/graph"
)

// rankedStore holds three jobs whose relevance to "python" is fully
// controlled by the keyword provider: j1 and j2 mention it, j3 does not.
func rankedStore(t *testing.T) *graph.MemoryStore {
	t.Helper()

	store := graph.NewMemoryStore()
	store.InsertJob(graph.Job{ID: "j1", Title: "Python Developer", Description: "python services"})
	store.InsertJob(graph.Job{ID: "j2", Title: "Data Analyst", Description: "python and spreadsheets"})
	store.InsertJob(graph.Job{ID: "j3", Title: "Gardener", Description: "plants"})
	return store
}

func TestSearchJobs_Ranking(t *testing.T) {
	e := New(rankedStore(t), WithProvider(&keywordProvider{keywords: []string{"python", "spreadsheets"}}))

	matches, err := e.SearchJobs(context.Background(), "python", 0)
	if err != nil {
		t.Fatalf("SearchJobs() error = %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("SearchJobs() len = %d, want 3", len(matches))
	}

	// j1 scores 1.0 (python only), j2 ~0.707 (python + spreadsheets), j3 0.
	if matches[0].Job.ID != "j1" || matches[1].Job.ID != "j2" || matches[2].Job.ID != "j3" {
		t.Errorf("order = [%s %s %s], want [j1 j2 j3]",
			matches[0].Job.ID, matches[1].Job.ID, matches[2].Job.ID)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Similarity > matches[i-1].Similarity {
			t.Errorf("similarity not descending at %d: %v then %v",
				i, matches[i-1].Similarity, matches[i].Similarity)
		}
	}
}

func TestSearchJobs_TopK(t *testing.T) {
	e := New(rankedStore(t), WithProvider(&keywordProvider{keywords: []string{"python"}}))
	ctx := context.Background()

	tests := []struct {
		name string
		k    int
		want int
	}{
		{"k limits results", 1, 1},
		{"k beyond count returns all", 10, 3},
		{"zero k returns all", 0, 3},
		{"negative k returns all", -1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := e.SearchJobs(ctx, "python", tt.k)
			if err != nil {
				t.Fatalf("SearchJobs() error = %v", err)
			}
			if len(matches) != tt.want {
				t.Errorf("len = %d, want %d", len(matches), tt.want)
			}
		})
	}
}

func TestSearchJobs_StableTies(t *testing.T) {
	store := graph.NewMemoryStore()
	store.InsertJob(graph.Job{ID: "first", Title: "Go Developer", Description: "go"})
	store.InsertJob(graph.Job{ID: "second", Title: "Go Engineer", Description: "go"})
	store.InsertJob(graph.Job{ID: "third", Title: "Go Lead", Description: "go"})

	e := New(store, WithProvider(&keywordProvider{keywords: []string{"go"}}))

	// All three score identically, so store order must survive the sort.
	matches, err := e.SearchJobs(context.Background(), "go", 0)
	if err != nil {
		t.Fatalf("SearchJobs() error = %v", err)
	}
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if matches[i].Job.ID != w {
			t.Errorf("matches[%d] = %s, want %s", i, matches[i].Job.ID, w)
		}
	}
}

func TestSearchJobs_ResolvesTitles(t *testing.T) {
	store := graph.NewMemoryStore()
	store.InsertJob(graph.Job{ID: "j1", Title: "8412937", Description: "Senior Data Engineer. Pipelines."})

	e := New(store)
	matches, err := e.SearchJobs(context.Background(), "data engineer", 1)
	if err != nil {
		t.Fatalf("SearchJobs() error = %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("len = %d, want 1", len(matches))
	}
	if matches[0].Title != "Senior Data Engineer" {
		t.Errorf("Title = %q, want Senior Data Engineer", matches[0].Title)
	}
	if matches[0].Job.Title != "8412937" {
		t.Errorf("Job.Title = %q, want raw 8412937 preserved", matches[0].Job.Title)
	}
}

func TestSearchJobs_StoreError(t *testing.T) {
	e := New(&brokenStore{inner: graph.NewMemoryStore(), failJobs: true})

	if _, err := e.SearchJobs(context.Background(), "anything", 3); err == nil {
		t.Error("SearchJobs() error = nil, want error")
	}
}

func TestSearchSkills_Ranking(t *testing.T) {
	store := graph.NewMemoryStore()
	store.InsertSkill(graph.Skill{ID: "s1", Name: "Python"})
	store.InsertSkill(graph.Skill{ID: "s2", Name: "JavaScript"})
	store.InsertSkill(graph.Skill{ID: "s3", Name: "Communication"})

	e := New(store, WithProvider(&keywordProvider{keywords: []string{"python"}}))

	matches, err := e.SearchSkills(context.Background(), "python experience", 2)
	if err != nil {
		t.Fatalf("SearchSkills() error = %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("len = %d, want 2", len(matches))
	}
	if matches[0].Skill.Name != "Python" {
		t.Errorf("top skill = %q, want Python", matches[0].Skill.Name)
	}
	if matches[0].Similarity <= matches[1].Similarity {
		t.Errorf("similarities not descending: %v then %v",
			matches[0].Similarity, matches[1].Similarity)
	}
}

func TestSearchSkills_StoreError(t *testing.T) {
	e := New(&brokenStore{inner: graph.NewMemoryStore(), failSkills: true})

	if _, err := e.SearchSkills(context.Background(), "anything", 3); err == nil {
		t.Error("SearchSkills() error = nil, want error")
	}
}
