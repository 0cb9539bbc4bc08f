package httpapi

import (
	"errors"
	"net/http"

	"github.com/PremDutta/pm-job-hub/internal/scrape"
	"github.com/PremDutta/pm-job-hub/internal/scrape/types"
)

// RunController is what the handlers need from the scrape runner.
type RunController interface {
	Start() error
	Cancel() bool
	Status() types.RunStats
}

type ScrapeHandler struct {
	Runner RunController
}

func (h ScrapeHandler) Run(w http.ResponseWriter, r *http.Request) {
	if err := h.Runner.Start(); err != nil {
		if errors.Is(err, scrape.ErrRunInProgress) {
			WriteError(w, r, http.StatusConflict, "run_in_progress", "a scrape run is already in progress")
			return
		}
		WriteError(w, r, http.StatusInternalServerError, "run_failed", err.Error())
		return
	}
	WriteJSON(w, http.StatusAccepted, map[string]any{"ok": true})
}

func (h ScrapeHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Runner.Status())
}

func (h ScrapeHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if !h.Runner.Cancel() {
		WriteError(w, r, http.StatusConflict, "not_running", "no scrape run in progress")
		return
	}
	writeJSON(w, map[string]any{"ok": true})
}
