package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PremDutta/pm-job-hub/internal/scrape"
	"github.com/PremDutta/pm-job-hub/internal/scrape/types"
)

type fakeRunner struct {
	startErr error
	started  int
	canceled bool
	status   types.RunStats
}

func (f *fakeRunner) Start() error {
	f.started++
	return f.startErr
}
func (f *fakeRunner) Cancel() bool { return f.canceled }

func (f *fakeRunner) Status() types.RunStats { return f.status }

func TestScrapeRun(t *testing.T) {
	fr := &fakeRunner{}
	h := ScrapeHandler{Runner: fr}

	rec := httptest.NewRecorder()
	h.Run(rec, httptest.NewRequest(http.MethodPost, "/scrape/run", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, fr.started)
}

func TestScrapeRunConflict(t *testing.T) {
	fr := &fakeRunner{startErr: scrape.ErrRunInProgress}
	h := ScrapeHandler{Runner: fr}

	rec := httptest.NewRecorder()
	h.Run(rec, httptest.NewRequest(http.MethodPost, "/scrape/run", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)

	var e APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "run_in_progress", e.Error.Code)
}

func TestScrapeStatus(t *testing.T) {
	fr := &fakeRunner{status: types.RunStats{Running: true, Phase: "scraping", Found: 7}}
	h := ScrapeHandler{Runner: fr}

	rec := httptest.NewRecorder()
	h.Status(rec, httptest.NewRequest(http.MethodGet, "/scrape/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var st types.RunStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.True(t, st.Running)
	assert.Equal(t, "scraping", st.Phase)
	assert.Equal(t, 7, st.Found)
}

func TestScrapeCancel(t *testing.T) {
	h := ScrapeHandler{Runner: &fakeRunner{canceled: true}}
	rec := httptest.NewRecorder()
	h.Cancel(rec, httptest.NewRequest(http.MethodPost, "/scrape/cancel", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	h = ScrapeHandler{Runner: &fakeRunner{canceled: false}}
	rec = httptest.NewRecorder()
	h.Cancel(rec, httptest.NewRequest(http.MethodPost, "/scrape/cancel", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
