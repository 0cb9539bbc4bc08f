package store

import "database/sql"

// Migrate brings the schema up to the current version using PRAGMA
// user_version as the version marker.
func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}

	if v >= 1 {
		return tx.Commit()
	}

	// ---- Schema v1 ----
	// id is the content fingerprint, so uniqueness doubles as dedup.

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS jobs (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  company TEXT NOT NULL,
  location TEXT NOT NULL,
  work_mode TEXT NOT NULL DEFAULT 'unspecified',
  seniority TEXT NOT NULL DEFAULT 'mid',
  experience_min INTEGER NOT NULL DEFAULT 0,
  experience_max INTEGER NOT NULL DEFAULT 0,
  experience_display TEXT NOT NULL DEFAULT '',
  salary_min REAL NOT NULL DEFAULT 0,
  salary_max REAL NOT NULL DEFAULT 0,
  salary_display TEXT NOT NULL DEFAULT '',
  posted_date TEXT NOT NULL DEFAULT '',
  skills TEXT NOT NULL DEFAULT '[]',
  match_score INTEGER NOT NULL DEFAULT 0,
  company_tier TEXT NOT NULL DEFAULT 'unknown',
  source TEXT NOT NULL,
  url TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_jobs_posted_date ON jobs(posted_date);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_jobs_score ON jobs(match_score);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_jobs_source ON jobs(source);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}
