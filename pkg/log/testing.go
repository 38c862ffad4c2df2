// This file contains helpers for asserting on log output in tests without
// touching the process-default logger.

package log

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Capture stores log records emitted through a test logger for later
// inspection.
type Capture struct {
	mu      sync.Mutex
	records []CapturedRecord
}

// CapturedRecord is one log call: its level, message, and flattened attributes.
type CapturedRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// NewTestLogger returns a logger whose output is captured in memory,
// together with the capture for assertions.
//
// Example:
//
//	logger, capture := log.NewTestLogger()
//	runner := search.NewTrialRunner(..., search.WithLogger(logger))
//	...
//	if !capture.Contains("trial finished") { t.Error(...) }
func NewTestLogger() (*slog.Logger, *Capture) {
	c := &Capture{}
	return slog.New(&captureHandler{capture: c}), c
}

// Records returns a copy of everything logged so far.
func (c *Capture) Records() []CapturedRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CapturedRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Contains reports whether any captured message contains the substring.
func (c *Capture) Contains(substr string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.records {
		if strings.Contains(r.Message, substr) {
			return true
		}
	}
	return false
}

type captureHandler struct {
	capture *Capture
	attrs   []slog.Attr
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	rec := CapturedRecord{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   make(map[string]any),
	}
	for _, a := range h.attrs {
		rec.Attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		rec.Attrs[a.Key] = a.Value.Any()
		return true
	})

	h.capture.mu.Lock()
	defer h.capture.mu.Unlock()
	h.capture.records = append(h.capture.records, rec)
	return nil
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &captureHandler{capture: h.capture, attrs: merged}
}

func (h *captureHandler) WithGroup(string) slog.Handler { return h }
