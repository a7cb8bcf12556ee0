package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// --- Wire format ---

const traceVersion = 1

type traceEvent struct {
	At     time.Time `json:"at"`
	Event  string    `json:"event"`
	Reason string    `json:"reason,omitempty"`
	Offset float64   `json:"offset"`
}

type traceDTO struct {
	Version int          `json:"version"`
	Source  string       `json:"source,omitempty"`
	Events  []traceEvent `json:"events"`
}

// gestureTrace records what the sheet did, in arrival order.
type gestureTrace struct {
	events []traceEvent
	now    func() time.Time
}

func newGestureTrace() *gestureTrace {
	return &gestureTrace{now: time.Now}
}

func (t *gestureTrace) add(event, reason string, offset float64) {
	t.events = append(t.events, traceEvent{At: t.now(), Event: event, Reason: reason, Offset: offset})
}

func (t *gestureTrace) Len() int { return len(t.events) }

// SaveTrace writes the trace as versioned JSON.
func SaveTrace(t *gestureTrace, source, path string) error {
	dto := traceDTO{
		Version: traceVersion,
		Source:  source,
		Events:  append([]traceEvent{}, t.events...),
	}
	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return fmt.Errorf("encode trace: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write trace: %w", err)
	}
	return nil
}

// LoadTrace reads a trace written by SaveTrace.
func LoadTrace(path string) (*gestureTrace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var dto traceDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("decode trace: %w", err)
	}
	if dto.Version != traceVersion {
		return nil, fmt.Errorf("trace version %d not supported (want %d)", dto.Version, traceVersion)
	}
	t := newGestureTrace()
	t.events = dto.Events
	return t, nil
}

// ExportTrace writes the trace as CSV with a header row.
func ExportTrace(t *gestureTrace, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"time", "event", "reason", "offset"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, e := range t.events {
		rec := []string{
			e.At.Format(time.RFC3339Nano),
			e.Event,
			e.Reason,
			strconv.FormatFloat(e.Offset, 'f', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write event %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
