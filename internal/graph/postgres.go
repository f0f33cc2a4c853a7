package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ageSetup runs per-connection AGE initialization.
const ageSetup = `LOAD 'age'; SET search_path TO ag_catalog, "$user", public`

// PostgresStore reads the graph from PostgreSQL with the Apache AGE
// extension. Every query acquires its own pooled connection and loads AGE
// on it before running Cypher.
type PostgresStore struct {
	pool  *pgxpool.Pool
	graph string
}

// OpenPostgres connects to PostgreSQL and pings it before returning. The
// graph argument names the AGE graph to query.
func OpenPostgres(ctx context.Context, dsn, graph string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing postgres DSN: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	return &PostgresStore{pool: pool, graph: graph}, nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// Jobs returns all Job vertices.
func (s *PostgresStore) Jobs(ctx context.Context) ([]Job, error) {
	vertices, err := s.queryVertices(ctx, "MATCH (j:Job) RETURN j", "j")
	if err != nil {
		return nil, fmt.Errorf("querying jobs: %w", err)
	}

	var jobs []Job
	for _, v := range vertices {
		jobs = append(jobs, Job{
			ID:          stringProp(v.Properties, "id"),
			Title:       stringProp(v.Properties, "title"),
			Company:     stringProp(v.Properties, "company"),
			Location:    stringProp(v.Properties, "location"),
			Salary:      stringProp(v.Properties, "salary"),
			Description: stringProp(v.Properties, "description"),
		})
	}
	return jobs, nil
}

// Skills returns all Skill vertices.
func (s *PostgresStore) Skills(ctx context.Context) ([]Skill, error) {
	vertices, err := s.queryVertices(ctx, "MATCH (s:Skill) RETURN s", "s")
	if err != nil {
		return nil, fmt.Errorf("querying skills: %w", err)
	}

	var skills []Skill
	for _, v := range vertices {
		skills = append(skills, Skill{
			ID:       stringProp(v.Properties, "id"),
			Name:     stringProp(v.Properties, "name"),
			Category: stringProp(v.Properties, "category"),
		})
	}
	return skills, nil
}

// JobSkills returns the names of skills required by a job.
func (s *PostgresStore) JobSkills(ctx context.Context, jobID string) ([]string, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, ageSetup); err != nil {
		return nil, fmt.Errorf("age setup: %w", err)
	}

	cypher := fmt.Sprintf(`
		SELECT * FROM ag_catalog.cypher('%s', $$
			MATCH (j:Job {id: '%s'})-[:REQUIRES_SKILL]->(s:Skill)
			RETURN s.name
		$$) AS (name ag_catalog.agtype)`, s.graph, escapeCypher(jobID))

	rows, err := conn.Query(ctx, cypher)
	if err != nil {
		return nil, fmt.Errorf("querying skills for job %s: %w", jobID, err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			continue
		}
		if name := agtypeString(raw); name != "" {
			names = append(names, name)
		}
	}
	return names, rows.Err()
}

// Stats returns vertex and edge counts.
func (s *PostgresStore) Stats(ctx context.Context) (Stats, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, ageSetup); err != nil {
		return Stats{}, fmt.Errorf("age setup: %w", err)
	}

	var st Stats
	counts := []struct {
		match string
		dest  *int
	}{
		{"MATCH (j:Job) RETURN count(j)", &st.Jobs},
		{"MATCH (s:Skill) RETURN count(s)", &st.Skills},
		{"MATCH (:Job)-[r:REQUIRES_SKILL]->(:Skill) RETURN count(r)", &st.Requirements},
	}
	for _, c := range counts {
		cypher := fmt.Sprintf(`SELECT * FROM ag_catalog.cypher('%s', $$
			%s
		$$) AS (count ag_catalog.agtype)`, s.graph, c.match)

		var raw string
		if err := conn.QueryRow(ctx, cypher).Scan(&raw); err != nil {
			return Stats{}, fmt.Errorf("counting: %w", err)
		}
		_, _ = fmt.Sscanf(strings.TrimSpace(raw), "%d", c.dest)
	}
	return st, nil
}

// ageVertex is the JSON shape AGE uses for vertex results, minus the
// ::vertex suffix.
type ageVertex struct {
	Label      string         `json:"label"`
	Properties map[string]any `json:"properties"`
}

func (s *PostgresStore) queryVertices(ctx context.Context, match, column string) ([]ageVertex, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, ageSetup); err != nil {
		return nil, fmt.Errorf("age setup: %w", err)
	}

	cypher := fmt.Sprintf(`SELECT * FROM ag_catalog.cypher('%s', $$
		%s
	$$) AS (%s ag_catalog.agtype)`, s.graph, match, column)

	rows, err := conn.Query(ctx, cypher)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vertices []ageVertex
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			continue
		}
		v, err := parseVertex(raw)
		if err != nil {
			continue
		}
		vertices = append(vertices, v)
	}
	return vertices, rows.Err()
}

// parseVertex decodes an agtype vertex literal such as
// {"id": 844424930131969, "label": "Job", "properties": {...}}::vertex.
func parseVertex(raw string) (ageVertex, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(raw), "::vertex")
	var v ageVertex
	if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
		return ageVertex{}, fmt.Errorf("parsing agtype vertex: %w", err)
	}
	return v, nil
}

// agtypeString unquotes an agtype string scalar.
func agtypeString(raw string) string {
	return strings.Trim(strings.TrimSpace(raw), `"`)
}

// escapeCypher escapes a string for safe use in a single-quoted Cypher literal.
func escapeCypher(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "`", "\\`")
	s = strings.ReplaceAll(s, "\x00", "")
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return s
}
