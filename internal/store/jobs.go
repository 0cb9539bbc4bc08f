package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/PremDutta/pm-job-hub/internal/domain"
)

// InsertJobIfNew inserts the job unless a row with the same fingerprint
// id already exists. The first writer wins; later duplicates are
// silently skipped.
func InsertJobIfNew(ctx context.Context, db *sql.DB, j domain.Job) (added bool, err error) {
	skillsJSON, _ := json.Marshal(j.Skills)
	if j.Skills == nil {
		skillsJSON = []byte("[]")
	}

	_, err = db.ExecContext(ctx, `
INSERT OR IGNORE INTO jobs (
  id, title, company, location, work_mode, seniority,
  experience_min, experience_max, experience_display,
  salary_min, salary_max, salary_display,
  posted_date, skills, match_score, company_tier, source, url, created_at
) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?);`,
		j.ID, j.Title, j.Company, j.Location, j.WorkMode, j.Seniority,
		j.ExperienceMin, j.ExperienceMax, j.ExperienceDisplay,
		j.SalaryMin, j.SalaryMax, j.SalaryDisplay,
		j.PostedDate, string(skillsJSON), j.MatchScore, j.CompanyTier, j.Source, j.URL,
		j.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return false, fmt.Errorf("insert job: %w", err)
	}

	// INSERT OR IGNORE does not report rows affected reliably across
	// drivers; SELECT changes() does.
	var changes int
	if e := db.QueryRowContext(ctx, `SELECT changes();`).Scan(&changes); e == nil {
		return changes > 0, nil
	}
	return true, nil
}

type ListJobsOpts struct {
	Sort     string // score | date | company | title
	Window   string // 24h | 7d | all
	Source   string
	WorkMode string
	Limit    int
}

func ListJobs(ctx context.Context, db *sql.DB, opts ListJobsOpts) ([]domain.Job, error) {
	if opts.Sort == "" {
		opts.Sort = "score"
	}
	if opts.Window == "" {
		opts.Window = "all"
	}
	if opts.Limit <= 0 || opts.Limit > 2000 {
		opts.Limit = 500
	}

	// whitelist sort columns, never interpolate user input
	var orderBy string
	switch opts.Sort {
	case "date":
		orderBy = "posted_date DESC, match_score DESC"
	case "company":
		orderBy = "company ASC, match_score DESC"
	case "title":
		orderBy = "title ASC"
	default:
		orderBy = "match_score DESC, posted_date DESC"
	}

	where := "WHERE 1=1"
	var args []any
	switch opts.Window {
	case "24h":
		where += " AND created_at >= datetime('now','-24 hours')"
	case "7d":
		where += " AND created_at >= datetime('now','-7 days')"
	}
	if opts.Source != "" {
		where += " AND source = ? COLLATE NOCASE"
		args = append(args, opts.Source)
	}
	if opts.WorkMode != "" {
		where += " AND work_mode = ?"
		args = append(args, opts.WorkMode)
	}
	args = append(args, opts.Limit)

	query := fmt.Sprintf(`
SELECT id, title, company, location, work_mode, seniority,
       experience_min, experience_max, experience_display,
       salary_min, salary_max, salary_display,
       posted_date, skills, match_score, company_tier, source, url, created_at
FROM jobs
%s
ORDER BY %s
LIMIT ?;`, where, orderBy)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func GetJob(ctx context.Context, db *sql.DB, id string) (domain.Job, error) {
	row := db.QueryRowContext(ctx, `
SELECT id, title, company, location, work_mode, seniority,
       experience_min, experience_max, experience_display,
       salary_min, salary_max, salary_display,
       posted_date, skills, match_score, company_tier, source, url, created_at
FROM jobs WHERE id = ?;`, id)
	return scanJob(row)
}

// DeleteJob removes one job by fingerprint id. Returns false when no
// such row exists.
func DeleteJob(ctx context.Context, db *sql.DB, id string) (bool, error) {
	res, err := db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?;`, id)
	if err != nil {
		return false, fmt.Errorf("delete job: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

type Stats struct {
	Total       int            `json:"total"`
	AddedToday  int            `json:"added_today"`
	AvgScore    float64        `json:"avg_score"`
	BySource    map[string]int `json:"by_source"`
	ByWorkMode  map[string]int `json:"by_work_mode"`
	BySeniority map[string]int `json:"by_seniority"`
}

func LoadStats(ctx context.Context, db *sql.DB) (Stats, error) {
	s := Stats{
		BySource:    map[string]int{},
		ByWorkMode:  map[string]int{},
		BySeniority: map[string]int{},
	}

	err := db.QueryRowContext(ctx, `
SELECT COUNT(*), COALESCE(AVG(match_score), 0)
FROM jobs;`).Scan(&s.Total, &s.AvgScore)
	if err != nil {
		return s, err
	}

	err = db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM jobs
WHERE created_at >= datetime('now','-24 hours');`).Scan(&s.AddedToday)
	if err != nil {
		return s, err
	}

	for col, dst := range map[string]map[string]int{
		"source":    s.BySource,
		"work_mode": s.ByWorkMode,
		"seniority": s.BySeniority,
	} {
		if err := countBy(ctx, db, col, dst); err != nil {
			return s, err
		}
	}
	return s, nil
}

func countBy(ctx context.Context, db *sql.DB, col string, dst map[string]int) error {
	// col comes from a fixed caller-side set, never from user input
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`
SELECT %s, COUNT(*) FROM jobs GROUP BY %s;`, col, col))
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var k string
		var n int
		if err := rows.Scan(&k, &n); err != nil {
			return err
		}
		dst[k] = n
	}
	return rows.Err()
}

// CleanupOldJobs drops rows older than three months so the database
// stays bounded on long-lived installs.
func CleanupOldJobs(db *sql.DB) (deleted int64, err error) {
	res, err := db.Exec(`
DELETE FROM jobs
WHERE created_at < datetime('now', '-3 months');`)
	if err != nil {
		return 0, fmt.Errorf("cleanup old jobs: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(r rowScanner) (domain.Job, error) {
	var j domain.Job
	var skillsJSON, createdAt string
	err := r.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &j.WorkMode, &j.Seniority,
		&j.ExperienceMin, &j.ExperienceMax, &j.ExperienceDisplay,
		&j.SalaryMin, &j.SalaryMax, &j.SalaryDisplay,
		&j.PostedDate, &skillsJSON, &j.MatchScore, &j.CompanyTier, &j.Source, &j.URL,
		&createdAt,
	)
	if err != nil {
		return domain.Job{}, err
	}
	_ = json.Unmarshal([]byte(skillsJSON), &j.Skills)
	j.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return j, nil
}
