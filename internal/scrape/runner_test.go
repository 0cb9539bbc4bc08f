package scrape

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PremDutta/pm-job-hub/internal/config"
	"github.com/PremDutta/pm-job-hub/internal/events"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestRunnerSingleFlight(t *testing.T) {
	db := testStore(t)
	r := NewRunner(db, events.NewHub(), func() config.Config { return testConfig() })

	release := make(chan struct{})
	r.proc = func(ctx context.Context, cfg config.Config) (Result, error) {
		<-release
		return Result{Found: 2, New: 1, Duplicates: 1}, nil
	}

	require.NoError(t, r.Start())
	assert.ErrorIs(t, r.Start(), ErrRunInProgress)

	st := r.Status()
	assert.True(t, st.Running)
	assert.Equal(t, "scraping", st.Phase)

	close(release)
	waitFor(t, func() bool { return !r.Status().Running })

	st = r.Status()
	assert.Equal(t, "done", st.Phase)
	assert.Equal(t, 2, st.Found)
	assert.Equal(t, 1, st.New)
	assert.Equal(t, 1, st.Duplicates)
	assert.NotEmpty(t, st.CompletedAt)

	// a finished runner accepts the next run
	r.proc = func(ctx context.Context, cfg config.Config) (Result, error) {
		return Result{}, nil
	}
	require.NoError(t, r.Start())
	waitFor(t, func() bool { return !r.Status().Running })
}

func TestRunnerCancel(t *testing.T) {
	db := testStore(t)
	r := NewRunner(db, events.NewHub(), func() config.Config { return testConfig() })

	r.proc = func(ctx context.Context, cfg config.Config) (Result, error) {
		<-ctx.Done()
		return Result{Found: 1}, ctx.Err()
	}

	require.NoError(t, r.Start())
	waitFor(t, func() bool { return r.Status().Running })

	assert.True(t, r.Cancel())
	waitFor(t, func() bool { return !r.Status().Running })

	st := r.Status()
	assert.Equal(t, "cancelled", st.Phase)
	assert.Equal(t, 1, st.Found)

	// no active run to cancel anymore
	assert.False(t, r.Cancel())
}

func TestRunnerErrorPhase(t *testing.T) {
	db := testStore(t)
	r := NewRunner(db, events.NewHub(), func() config.Config { return testConfig() })

	r.proc = func(ctx context.Context, cfg config.Config) (Result, error) {
		return Result{}, errors.New("boom")
	}

	require.NoError(t, r.Start())
	waitFor(t, func() bool { return !r.Status().Running })

	st := r.Status()
	assert.Equal(t, "error", st.Phase)
	assert.Equal(t, "boom", st.LastError)
}

func TestRunnerPublishesEvents(t *testing.T) {
	db := testStore(t)
	hub := events.NewHub()
	r := NewRunner(db, hub, func() config.Config { return testConfig() })

	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	r.proc = func(ctx context.Context, cfg config.Config) (Result, error) {
		return Result{New: 1}, nil
	}
	require.NoError(t, r.Start())

	var got []string
	deadline := time.After(2 * time.Second)
	for len(got) < 2 {
		select {
		case msg := <-ch:
			got = append(got, msg)
		case <-deadline:
			t.Fatalf("timed out, events so far: %v", got)
		}
	}
	assert.Contains(t, got[0], events.TypeRunStarted)
	assert.Contains(t, got[1], events.TypeRunFinished)
}
