package viz

import (
	"strings"
	"testing"
)

func vizFixture() *GraphData {
	return &GraphData{
		Nodes: []Node{
			{ID: "job-1", Type: NodeTypeJob, Label: "Data Scientist", Company: "Acme"},
			{ID: "skill-1", Type: NodeTypeSkill, Label: "Python", Demand: 2},
		},
		Edges: []Edge{{Source: "job-1", Target: "skill-1"}},
	}
}

func TestGenerateHTML(t *testing.T) {
	html, err := GenerateHTML(vizFixture(), DefaultOptions())
	if err != nil {
		t.Fatalf("GenerateHTML() error = %v", err)
	}

	for _, want := range []string{
		"cytoscape.min.js",
		"Data Scientist",
		"Python",
		`const layout = "cose"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("generated HTML missing %q", want)
		}
	}
}

func TestGenerateHTML_Layouts(t *testing.T) {
	tests := []struct {
		layout string
		want   string
	}{
		{"", "cose"},
		{"force", "cose"},
		{"circle", "circle"},
		{"grid", "grid"},
	}
	for _, tt := range tests {
		html, err := GenerateHTML(vizFixture(), HTMLOptions{Layout: tt.layout})
		if err != nil {
			t.Fatalf("GenerateHTML(layout=%q) error = %v", tt.layout, err)
		}
		if want := `const layout = "` + tt.want + `"`; !strings.Contains(html, want) {
			t.Errorf("layout %q: HTML missing %q", tt.layout, want)
		}
	}
}

func TestGenerateHTML_InvalidLayout(t *testing.T) {
	if _, err := GenerateHTML(vizFixture(), HTMLOptions{Layout: "spiral"}); err == nil {
		t.Error("GenerateHTML(layout=spiral) error = nil, want invalid layout error")
	}
}

func TestGenerateHTML_EmptyGraph(t *testing.T) {
	html, err := GenerateHTML(&GraphData{}, DefaultOptions())
	if err != nil {
		t.Fatalf("GenerateHTML() error = %v", err)
	}
	if !strings.Contains(html, "No graph data") {
		t.Error("empty graph HTML missing empty state message")
	}
	if strings.Contains(html, "cytoscape") {
		t.Error("empty graph HTML should not load Cytoscape")
	}
}

func TestGenerateHTML_NilGraph(t *testing.T) {
	if _, err := GenerateHTML(nil, DefaultOptions()); err == nil {
		t.Error("GenerateHTML(nil) error = nil, want error")
	}
}
