package types

import (
	"context"

	"github.com/PremDutta/pm-job-hub/internal/domain"
)

// SourceAdapter fetches one page of results for a (query, location,
// page-index) from a single job board. Adapters degrade to empty
// results when markup changes or the board blocks; they never abort
// a run.
type SourceAdapter interface {
	Name() string
	FetchPage(ctx context.Context, query, location string, page int) ([]domain.RawPosting, error)
}

// RunStats is the run-status snapshot exposed to pollers.
type RunStats struct {
	Running     bool   `json:"running"`
	Phase       string `json:"phase"` // idle | scraping | processing | done | error | cancelled
	Progress    int    `json:"progress"`
	Found       int    `json:"found"`
	New         int    `json:"new"`
	Duplicates  int    `json:"duplicates"`
	StartedAt   string `json:"started_at"`
	CompletedAt string `json:"completed_at"`
	LastError   string `json:"last_error"`
}
