package graph

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore is the embedded backend. Scan order is pinned to rowid so
// repeated reads return nodes in insertion order.
type SQLiteStore struct {
	db *sql.DB
}

// sqliteSchema holds jobs, skills, and their REQUIRES_SKILL edges. The
// composite primary key on job_skills makes requirement loading idempotent.
const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS jobs (
		id TEXT PRIMARY KEY,
		title TEXT,
		company TEXT,
		location TEXT,
		salary TEXT,
		description TEXT
	);

	CREATE TABLE IF NOT EXISTS skills (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT
	);

	CREATE TABLE IF NOT EXISTS job_skills (
		job_id TEXT NOT NULL,
		skill_id TEXT NOT NULL,
		PRIMARY KEY (job_id, skill_id)
	);

	CREATE INDEX IF NOT EXISTS idx_job_skills_job ON job_skills(job_id);
`

// OpenSQLite opens or creates a SQLite store at the given path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Jobs returns all jobs in insertion order.
func (s *SQLiteStore) Jobs(ctx context.Context) ([]Job, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, company, location, salary, description
		FROM jobs
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var j Job
		var title, company, location, salary, description sql.NullString
		if err := rows.Scan(&j.ID, &title, &company, &location, &salary, &description); err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}
		j.Title = title.String
		j.Company = company.String
		j.Location = location.String
		j.Salary = salary.String
		j.Description = description.String
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// Skills returns all skills in insertion order.
func (s *SQLiteStore) Skills(ctx context.Context) ([]Skill, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category
		FROM skills
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying skills: %w", err)
	}
	defer rows.Close()

	var skills []Skill
	for rows.Next() {
		var sk Skill
		var category sql.NullString
		if err := rows.Scan(&sk.ID, &sk.Name, &category); err != nil {
			return nil, fmt.Errorf("scanning skill: %w", err)
		}
		sk.Category = category.String
		skills = append(skills, sk)
	}
	return skills, rows.Err()
}

// JobSkills returns the skill names required by a job in edge insertion order.
func (s *SQLiteStore) JobSkills(ctx context.Context, jobID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sk.name
		FROM job_skills js
		JOIN skills sk ON sk.id = js.skill_id
		WHERE js.job_id = ?
		ORDER BY js.rowid
	`, jobID)
	if err != nil {
		return nil, fmt.Errorf("querying job skills: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning skill name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Stats returns node and edge counts.
func (s *SQLiteStore) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	counts := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) FROM jobs", &st.Jobs},
		{"SELECT COUNT(*) FROM skills", &st.Skills},
		{"SELECT COUNT(*) FROM job_skills", &st.Requirements},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return Stats{}, fmt.Errorf("counting: %w", err)
		}
	}
	return st, nil
}

// InsertJob writes one job. Reloading the same ID replaces the row, so
// snapshot loading is idempotent. Write methods exist for store management
// only; the engine never calls them.
func (s *SQLiteStore) InsertJob(ctx context.Context, j Job) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO jobs (id, title, company, location, salary, description)
		VALUES (?, ?, ?, ?, ?, ?)
	`, j.ID, j.Title, j.Company, j.Location, j.Salary, j.Description)
	if err != nil {
		return fmt.Errorf("inserting job %s: %w", j.ID, err)
	}
	return nil
}

// InsertSkill writes one skill.
func (s *SQLiteStore) InsertSkill(ctx context.Context, sk Skill) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO skills (id, name, category)
		VALUES (?, ?, ?)
	`, sk.ID, sk.Name, sk.Category)
	if err != nil {
		return fmt.Errorf("inserting skill %s: %w", sk.ID, err)
	}
	return nil
}

// InsertRequirement writes one REQUIRES_SKILL edge.
func (s *SQLiteStore) InsertRequirement(ctx context.Context, r Requirement) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO job_skills (job_id, skill_id)
		VALUES (?, ?)
	`, r.JobID, r.SkillID)
	if err != nil {
		return fmt.Errorf("inserting requirement %s->%s: %w", r.JobID, r.SkillID, err)
	}
	return nil
}

// LoadSnapshot writes the snapshot's jobs, skills, and requirements in one
// transaction.
func (s *SQLiteStore) LoadSnapshot(ctx context.Context, snap *Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	jobStmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO jobs (id, title, company, location, salary, description)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing job insert: %w", err)
	}
	defer jobStmt.Close()

	for _, j := range snap.Jobs {
		if _, err := jobStmt.ExecContext(ctx, j.ID, j.Title, j.Company, j.Location, j.Salary, j.Description); err != nil {
			return fmt.Errorf("inserting job %s: %w", j.ID, err)
		}
	}

	skillStmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO skills (id, name, category)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing skill insert: %w", err)
	}
	defer skillStmt.Close()

	for _, sk := range snap.Skills {
		if _, err := skillStmt.ExecContext(ctx, sk.ID, sk.Name, sk.Category); err != nil {
			return fmt.Errorf("inserting skill %s: %w", sk.ID, err)
		}
	}

	reqStmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO job_skills (job_id, skill_id)
		VALUES (?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing requirement insert: %w", err)
	}
	defer reqStmt.Close()

	for _, r := range snap.Requirements {
		if _, err := reqStmt.ExecContext(ctx, r.JobID, r.SkillID); err != nil {
			return fmt.Errorf("inserting requirement %s->%s: %w", r.JobID, r.SkillID, err)
		}
	}

	return tx.Commit()
}
