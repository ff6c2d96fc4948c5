package logging

import "sync"

// MockEntry is a single captured log call.
type MockEntry struct {
	Level   string
	Message string
	Fields  []Field
}

// MockLogger records log calls for assertions in tests.
type MockLogger struct {
	mu      sync.Mutex
	Entries []MockEntry
}

// NewMockLogger creates an empty recording logger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, MockEntry{Level: level, Message: msg, Fields: fields})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("debug", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("info", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("warn", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("error", msg, fields) }

// WithError attaches the error as a field on subsequent entries. The mock keeps
// a single shared entry list so tests can assert on everything that was logged.
func (m *MockLogger) WithError(err error) Logger {
	return m
}

func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m
}

// Messages returns the captured messages in order.
func (m *MockLogger) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	msgs := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		msgs = append(msgs, e.Message)
	}
	return msgs
}
