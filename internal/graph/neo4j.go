package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Neo4jStore reads the graph from a Neo4j server over Bolt. Each call opens
// a short-lived read session so the store is safe for concurrent use.
type Neo4jStore struct {
	driver neo4j.DriverWithContext
}

// OpenNeo4j connects to a Neo4j server and verifies connectivity before
// returning.
func OpenNeo4j(ctx context.Context, uri, username, password string) (*Neo4jStore, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("creating neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("connecting to neo4j at %s: %w", uri, err)
	}
	return &Neo4jStore{driver: driver}, nil
}

// Close shuts down the underlying driver and its connection pool.
func (s *Neo4jStore) Close() error {
	return s.driver.Close(context.Background())
}

func (s *Neo4jStore) readSession(ctx context.Context) neo4j.SessionWithContext {
	return s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
}

// Jobs returns all Job nodes.
func (s *Neo4jStore) Jobs(ctx context.Context) ([]Job, error) {
	session := s.readSession(ctx)
	defer session.Close(ctx)

	result, err := session.Run(ctx, "MATCH (j:Job) RETURN j", nil)
	if err != nil {
		return nil, fmt.Errorf("querying jobs: %w", err)
	}

	var jobs []Job
	for result.Next(ctx) {
		node, ok := nodeValue(result.Record(), "j")
		if !ok {
			continue
		}
		jobs = append(jobs, Job{
			ID:          stringProp(node.Props, "id"),
			Title:       stringProp(node.Props, "title"),
			Company:     stringProp(node.Props, "company"),
			Location:    stringProp(node.Props, "location"),
			Salary:      stringProp(node.Props, "salary"),
			Description: stringProp(node.Props, "description"),
		})
	}
	return jobs, result.Err()
}

// Skills returns all Skill nodes.
func (s *Neo4jStore) Skills(ctx context.Context) ([]Skill, error) {
	session := s.readSession(ctx)
	defer session.Close(ctx)

	result, err := session.Run(ctx, "MATCH (s:Skill) RETURN s", nil)
	if err != nil {
		return nil, fmt.Errorf("querying skills: %w", err)
	}

	var skills []Skill
	for result.Next(ctx) {
		node, ok := nodeValue(result.Record(), "s")
		if !ok {
			continue
		}
		skills = append(skills, Skill{
			ID:       stringProp(node.Props, "id"),
			Name:     stringProp(node.Props, "name"),
			Category: stringProp(node.Props, "category"),
		})
	}
	return skills, result.Err()
}

// JobSkills returns the names of skills required by a job.
func (s *Neo4jStore) JobSkills(ctx context.Context, jobID string) ([]string, error) {
	session := s.readSession(ctx)
	defer session.Close(ctx)

	result, err := session.Run(ctx,
		"MATCH (j:Job)-[:REQUIRES_SKILL]->(s:Skill) WHERE j.id = $job_id RETURN s.name as skill",
		map[string]any{"job_id": jobID})
	if err != nil {
		return nil, fmt.Errorf("querying skills for job %s: %w", jobID, err)
	}

	names := []string{}
	for result.Next(ctx) {
		v, ok := result.Record().Get("skill")
		if !ok {
			continue
		}
		if name, ok := v.(string); ok {
			names = append(names, name)
		}
	}
	return names, result.Err()
}

// Stats returns node and relationship counts.
func (s *Neo4jStore) Stats(ctx context.Context) (Stats, error) {
	session := s.readSession(ctx)
	defer session.Close(ctx)

	var st Stats
	counts := []struct {
		query string
		dest  *int
	}{
		{"MATCH (j:Job) RETURN count(j) as count", &st.Jobs},
		{"MATCH (s:Skill) RETURN count(s) as count", &st.Skills},
		{"MATCH (:Job)-[r:REQUIRES_SKILL]->(:Skill) RETURN count(r) as count", &st.Requirements},
	}
	for _, c := range counts {
		result, err := session.Run(ctx, c.query, nil)
		if err != nil {
			return Stats{}, fmt.Errorf("counting: %w", err)
		}
		record, err := result.Single(ctx)
		if err != nil {
			return Stats{}, fmt.Errorf("counting: %w", err)
		}
		if v, ok := record.Get("count"); ok {
			if n, ok := v.(int64); ok {
				*c.dest = int(n)
			}
		}
	}
	return st, nil
}

func nodeValue(record *neo4j.Record, key string) (neo4j.Node, bool) {
	v, ok := record.Get(key)
	if !ok {
		return neo4j.Node{}, false
	}
	node, ok := v.(neo4j.Node)
	return node, ok
}

func stringProp(props map[string]any, key string) string {
	if v, ok := props[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return ""
}
