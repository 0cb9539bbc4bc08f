// Package events fans run progress out to SSE subscribers.
package events

import (
	"encoding/json"
	"time"
)

// Event types published by the scrape runner.
const (
	TypeRunStarted  = "run_started"
	TypeJobCreated  = "job_created"
	TypeRunFinished = "run_finished"
)

type Event struct {
	Type string          `json:"type"`
	At   time.Time       `json:"at"`
	Data json.RawMessage `json:"data,omitempty"`
}

func Make(typ string, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type: typ,
		At:   time.Now().UTC(),
		Data: raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
