// Package httpapi exposes the engine over a local HTTP surface.
package httpapi

import (
	"database/sql"
	"sync/atomic"

	"github.com/PremDutta/pm-job-hub/internal/config"
	"github.com/PremDutta/pm-job-hub/internal/events"
	"github.com/PremDutta/pm-job-hub/internal/scrape"
)

type Deps struct {
	DB *sql.DB

	Hub *events.Hub

	Runner *scrape.Runner

	// CfgVal stores config.Config; handlers always read a snapshot.
	CfgVal      *atomic.Value
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}
