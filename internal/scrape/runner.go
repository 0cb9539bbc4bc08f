package scrape

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/PremDutta/pm-job-hub/internal/config"
	"github.com/PremDutta/pm-job-hub/internal/events"
	"github.com/PremDutta/pm-job-hub/internal/scrape/fetch"
	"github.com/PremDutta/pm-job-hub/internal/scrape/types"
	"github.com/PremDutta/pm-job-hub/internal/store"
)

// ErrRunInProgress is returned when a run is requested while one is
// already active. Runs are strictly single-flight.
var ErrRunInProgress = errors.New("scrape: run already in progress")

// Runner owns run lifecycle: single-flight admission, cancellation, and
// the status snapshot pollers read.
type Runner struct {
	db  *store.DB
	hub *events.Hub
	cfg func() config.Config

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc

	statusMu sync.Mutex   // serializes writers; readers go through the atomic
	status   atomic.Value // types.RunStats

	// proc is the run entrypoint, swappable in tests
	proc func(ctx context.Context, cfg config.Config) (Result, error)
}

func NewRunner(db *store.DB, hub *events.Hub, cfg func() config.Config) *Runner {
	r := &Runner{db: db, hub: hub, cfg: cfg}
	r.proc = r.process
	r.status.Store(types.RunStats{Phase: "idle"})
	return r
}

func (r *Runner) process(ctx context.Context, cfg config.Config) (Result, error) {
	limiter := fetch.NewHostLimiter(cfg.Fetch.HostReqPerSec, cfg.Fetch.HostBurst)
	fc := fetch.NewClient(cfg, limiter)
	adapters := BuildAdapters(cfg.Search.Sources, fc)
	return Process(ctx, r.db.Pool, cfg, adapters, fc, r.hub, r.updateStatus)
}

// Status returns the latest run snapshot.
func (r *Runner) Status() types.RunStats {
	return r.status.Load().(types.RunStats)
}

// Start launches a run in the background. The admission check and the
// running flag flip happen under one lock; a bare atomic check would
// let two concurrent POSTs both pass.
func (r *Runner) Start() error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return ErrRunInProgress
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.running = true
	r.cancel = cancel
	r.mu.Unlock()

	now := time.Now().UTC()
	r.status.Store(types.RunStats{
		Running:   true,
		Phase:     "scraping",
		StartedAt: now.Format(time.RFC3339),
	})
	r.hub.Publish(events.Make(events.TypeRunStarted, map[string]string{
		"started_at": now.Format(time.RFC3339),
	}))

	go func() {
		defer func() {
			r.mu.Lock()
			r.running = false
			r.cancel = nil
			r.mu.Unlock()
		}()
		r.run(ctx)
	}()
	return nil
}

// Cancel stops the active run, if any. Jobs saved before the cancel
// stay saved.
func (r *Runner) Cancel() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running || r.cancel == nil {
		return false
	}
	r.cancel()
	return true
}

func (r *Runner) run(ctx context.Context) {
	res, err := r.proc(ctx, r.cfg())

	st := r.Status()
	st.Running = false
	st.CompletedAt = time.Now().UTC().Format(time.RFC3339)
	st.Found = res.Found
	st.New = res.New
	st.Duplicates = res.Duplicates
	st.Progress = 100

	switch {
	case errors.Is(err, context.Canceled):
		st.Phase = "cancelled"
		log.Printf("[scrape] run cancelled found=%d new=%d", res.Found, res.New)
	case err != nil:
		st.Phase = "error"
		st.LastError = err.Error()
		log.Printf("[scrape] run failed: %v", err)
	default:
		st.Phase = "done"
		log.Printf("[scrape] run done found=%d new=%d dup=%d", res.Found, res.New, res.Duplicates)
	}
	r.status.Store(st)

	r.hub.Publish(events.Make(events.TypeRunFinished, map[string]any{
		"phase":      st.Phase,
		"found":      st.Found,
		"new":        st.New,
		"duplicates": st.Duplicates,
	}))
}

// updateStatus lets pipeline workers mutate the live snapshot. Writers
// are serialized so concurrent counter bumps are not lost.
func (r *Runner) updateStatus(fn func(*types.RunStats)) {
	r.statusMu.Lock()
	st := r.Status()
	fn(&st)
	r.status.Store(st)
	r.statusMu.Unlock()
}
