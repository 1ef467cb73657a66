package testdoubles

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"
)

// FixedTime is a stable clock value for test data.
func FixedTime() time.Time {
	return time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
}

// LogHandlerSpy is a slog.Handler that keeps every record.
type LogHandlerSpy struct {
	records     []slog.Record
	mu          sync.Mutex
	logToStdout bool
}

// NewLogHandlerSpy creates a LogHandlerSpy. Set logToStdout to see the output while debugging a test.
func NewLogHandlerSpy(logToStdout bool) *LogHandlerSpy {
	return &LogHandlerSpy{logToStdout: logToStdout}
}

func (s *LogHandlerSpy) Handle(ctx context.Context, record slog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record.Clone())

	if s.logToStdout {
		_ = slog.NewJSONHandler(os.Stdout, nil).Handle(ctx, record)
	}

	return nil
}

func (s *LogHandlerSpy) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (s *LogHandlerSpy) WithAttrs(_ []slog.Attr) slog.Handler {
	return s
}

func (s *LogHandlerSpy) WithGroup(_ string) slog.Handler {
	return s
}

// HasMessage reports whether a record with level (DEBUG, INFO, WARN, ERROR) and msg was logged.
func (s *LogHandlerSpy) HasMessage(level string, msg string) bool {
	return s.Find(level, msg) != nil
}

// Find returns the attributes of the first matching record, nil if there is none.
func (s *LogHandlerSpy) Find(level string, msg string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.Level.String() != level || record.Message != msg {
			continue
		}

		attrs := make(map[string]any)
		record.Attrs(func(a slog.Attr) bool {
			attrs[a.Key] = a.Value.Any()
			return true
		})

		return attrs
	}

	return nil
}

func (s *LogHandlerSpy) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// LoggerSpy is a *slog.Logger writing into a LogHandlerSpy. It satisfies the plain and the contextual logger interfaces.
type LoggerSpy struct {
	*slog.Logger
	*LogHandlerSpy
}

func NewLoggerSpy() *LoggerSpy {
	handler := NewLogHandlerSpy(false)

	return &LoggerSpy{Logger: slog.New(handler), LogHandlerSpy: handler}
}
