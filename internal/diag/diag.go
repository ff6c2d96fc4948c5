// Package diag provides an append-only diagnostics log consumed by the API log
// panel and by tests. Events are ordered and timestamped; logging an event can
// never fail.
package diag

import (
	"sync"
	"time"
)

// Severity classifies a diagnostic event.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Event is a single diagnostic entry.
type Event struct {
	Message   string    `json:"message" yaml:"message"`
	Severity  Severity  `json:"severity" yaml:"severity"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Sink collects events in arrival order. Safe for concurrent use.
type Sink struct {
	mu     sync.Mutex
	events []Event
}

// NewSink creates an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

// Log appends an event with the current timestamp.
func (s *Sink) Log(message string, severity Severity) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, Event{
		Message:   message,
		Severity:  severity,
		Timestamp: time.Now(),
	})
}

// Clear empties the sink.
func (s *Sink) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}

// Events returns a copy of the collected events in order.
func (s *Sink) Events() []Event {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Len returns the number of collected events.
func (s *Sink) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}
