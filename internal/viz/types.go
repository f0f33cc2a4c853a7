// Package viz provides job graph visualization functionality.
package viz

// Node type values.
const (
	NodeTypeJob   = "job"
	NodeTypeSkill = "skill"
)

// GraphData contains all data needed to render the visualization.
type GraphData struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node represents a job or skill in the graph.
type Node struct {
	ID   string `json:"id"`
	Type string `json:"type"` // "job" or "skill"

	// Display
	Label string `json:"label"`

	// Job-specific fields (for tooltips)
	Company  string `json:"company,omitempty"`
	Location string `json:"location,omitempty"`
	Salary   string `json:"salary,omitempty"`

	// Skill-specific fields (for tooltips)
	Category string `json:"category,omitempty"`

	// Sizing (for skill nodes): number of jobs requiring the skill.
	Demand int `json:"demand"`
}

// Edge represents a job-skill requirement.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// IsEmpty returns true if the graph has no nodes.
func (g *GraphData) IsEmpty() bool {
	return len(g.Nodes) == 0
}
