package postgresengine

import (
	"github.com/AntonStoeckl/school-library-go/eventstore"
)

// Option configures an EventStore.
type Option func(*EventStore) error

// WithTableName sets the name of the events table. The default is "events".
func WithTableName(tableName string) Option {
	return func(es *EventStore) error {
		if tableName == "" {
			return eventstore.ErrEmptyEventsTableName
		}

		es.eventTableName = tableName

		return nil
	}
}

// WithLogger sets the logger.
//
// Debug level: executed SQL with timing
// Info level: event counts, durations and concurrency conflicts
// Warn level: cleanup failures
// Error level: failed operations.
func WithLogger(logger eventstore.Logger) Option {
	return func(es *EventStore) error {
		es.observer.Logger = logger
		return nil
	}
}

// WithContextualLogger sets a logger that receives the context, so log records carry the trace of the operation.
// It takes precedence over WithLogger.
func WithContextualLogger(logger eventstore.ContextualLogger) Option {
	return func(es *EventStore) error {
		es.observer.ContextualLogger = logger
		return nil
	}
}

// WithMetrics sets the collector for durations, event counts, conflicts and database errors.
func WithMetrics(collector eventstore.MetricsCollector) Option {
	return func(es *EventStore) error {
		es.observer.Metrics = collector
		return nil
	}
}

// WithTracing sets the collector that receives one span per Query and Append.
func WithTracing(collector eventstore.TracingCollector) Option {
	return func(es *EventStore) error {
		es.observer.Tracing = collector
		return nil
	}
}
