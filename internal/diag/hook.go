package diag

import (
	"github.com/sirupsen/logrus"
)

// Hook mirrors logrus entries into a Sink so the server can expose application
// logs through the log panel endpoints.
type Hook struct {
	sink *Sink
}

// NewHook creates a logrus hook writing into the given sink.
func NewHook(sink *Sink) *Hook {
	return &Hook{sink: sink}
}

// Levels reports the levels the hook fires on.
func (h *Hook) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.InfoLevel,
		logrus.WarnLevel,
		logrus.ErrorLevel,
	}
}

// Fire appends the entry to the sink.
func (h *Hook) Fire(entry *logrus.Entry) error {
	var severity Severity
	switch entry.Level {
	case logrus.WarnLevel:
		severity = SeverityWarning
	case logrus.ErrorLevel:
		severity = SeverityError
	default:
		severity = SeverityInfo
	}
	h.sink.Log(entry.Message, severity)
	return nil
}
