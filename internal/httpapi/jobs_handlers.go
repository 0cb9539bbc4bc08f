package httpapi

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PremDutta/pm-job-hub/internal/domain"
	"github.com/PremDutta/pm-job-hub/internal/events"
	"github.com/PremDutta/pm-job-hub/internal/rank"
	"github.com/PremDutta/pm-job-hub/internal/store"
)

type JobsHandler struct {
	DB  *sql.DB
	Hub *events.Hub
}

// jobView is the API shape: the stored record plus freshness, which is
// computed at read time so it never goes stale in the database.
type jobView struct {
	domain.Job
	Freshness domain.Freshness `json:"freshness"`
}

func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if v := q.Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	jobs, err := store.ListJobs(r.Context(), h.DB, store.ListJobsOpts{
		Sort:     q.Get("sort"),
		Window:   q.Get("window"),
		Source:   q.Get("source"),
		WorkMode: q.Get("work_mode"),
		Limit:    limit,
	})
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "list_failed", err.Error())
		return
	}

	now := time.Now().UTC()
	views := make([]jobView, 0, len(jobs))
	for _, j := range jobs {
		views = append(views, jobView{
			Job:       j,
			Freshness: rank.FreshnessOf(j.PostedDate, j.CreatedAt, now),
		})
	}
	writeJSON(w, map[string]any{"jobs": views, "count": len(views)})
}

func (h JobsHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/jobs/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid job id")
		return
	}

	j, err := store.GetJob(r.Context(), h.DB, id)
	if errors.Is(err, sql.ErrNoRows) {
		WriteError(w, r, http.StatusNotFound, "not_found", "no such job")
		return
	}
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "get_failed", err.Error())
		return
	}

	writeJSON(w, jobView{
		Job:       j,
		Freshness: rank.FreshnessOf(j.PostedDate, j.CreatedAt, time.Now().UTC()),
	})
}

func (h JobsHandler) DeleteByPath(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/jobs/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid job id")
		return
	}

	deleted, err := store.DeleteJob(r.Context(), h.DB, id)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "delete_failed", err.Error())
		return
	}
	if !deleted {
		WriteError(w, r, http.StatusNotFound, "not_found", "no such job")
		return
	}

	h.Hub.Publish(events.Make("job_deleted", map[string]any{"id": id}))
	writeJSON(w, map[string]any{"ok": true, "id": id})
}

func (h JobsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	s, err := store.LoadStats(r.Context(), h.DB)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "stats_failed", err.Error())
		return
	}

	// freshness is derived, so its distribution is computed here rather
	// than in SQL
	jobs, err := store.ListJobs(r.Context(), h.DB, store.ListJobsOpts{Window: "all", Limit: 2000})
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "stats_failed", err.Error())
		return
	}
	byFreshness := map[string]int{}
	now := time.Now().UTC()
	for _, j := range jobs {
		byFreshness[rank.FreshnessOf(j.PostedDate, j.CreatedAt, now).Bucket]++
	}

	writeJSON(w, struct {
		store.Stats
		ByFreshness map[string]int `json:"by_freshness"`
	}{Stats: s, ByFreshness: byFreshness})
}
