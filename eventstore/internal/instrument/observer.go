// Package instrument holds the logging, metrics and tracing plumbing shared by the engines.
// Every collaborator is optional; a zero Observer does nothing.
package instrument

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/AntonStoeckl/school-library-go/eventstore"
)

const (
	MetricQueryDuration        = "eventstore_query_duration_seconds"
	MetricAppendDuration       = "eventstore_append_duration_seconds"
	MetricEventsQueried        = "eventstore_events_queried_total"
	MetricEventsAppended       = "eventstore_events_appended_total"
	MetricDatabaseErrors       = "eventstore_database_errors_total"
	MetricConcurrencyConflicts = "eventstore_concurrency_conflicts_total"

	SpanNameQuery  = "eventstore.query"
	SpanNameAppend = "eventstore.append"

	AttrEngine       = "engine"
	AttrOperation    = "operation"
	AttrStatus       = "status"
	AttrErrorType    = "error_type"
	AttrEventCount   = "event_count"
	AttrEventType    = "event_type"
	AttrExpectedSeq  = "expected_sequence"
	AttrMaxSequence  = "max_sequence"
	AttrRowsAffected = "rows_affected"
	AttrDurationMS   = "duration_ms"
	AttrFilter       = "filter"
	AttrConsistency  = "consistency"
	AttrQuery        = "query"
	AttrError        = "error"

	OperationQuery  = "query"
	OperationAppend = "append"

	StatusSuccess  = "success"
	StatusError    = "error"
	StatusConflict = "conflict"

	ErrorTypeBuildQuery   = "build_query"
	ErrorTypeDatabase     = "database_query"
	ErrorTypeExec         = "database_exec"
	ErrorTypeScan         = "row_scan"
	ErrorTypeBuildEvent   = "build_storable_event"
	ErrorTypeRowsAffected = "rows_affected"
	ErrorTypeTableMissing = "table_missing"
	ErrorTypeCanceled     = "context_canceled"
	ErrorTypeTimeout      = "context_deadline_exceeded"

	msgSQLExecuted         = "executed sql for: "
	msgOperation           = "eventstore operation: "
	msgQueryCompleted      = "query completed"
	msgEventsAppended      = "events appended"
	msgConcurrencyConflict = "concurrency conflict detected"
)

// Observer fans one engine event out to the configured logger, metrics collector and tracer.
type Observer struct {
	Engine           string
	Logger           eventstore.Logger
	ContextualLogger eventstore.ContextualLogger
	Metrics          eventstore.MetricsCollector
	Tracing          eventstore.TracingCollector
}

// Operation tracks one Query or Append from start to finish.
type Operation struct {
	o         *Observer
	ctx       context.Context
	name      string
	span      eventstore.SpanContext
	startedAt time.Time
}

// StartQuery opens the span for a Query and starts its clock.
func (o *Observer) StartQuery(ctx context.Context, filter eventstore.Filter) (context.Context, *Operation) {
	return o.start(ctx, OperationQuery, SpanNameQuery, map[string]string{
		AttrFilter:      filter.String(),
		AttrConsistency: eventstore.GetConsistencyLevel(ctx).String(),
	})
}

// StartAppend opens the span for an Append and starts its clock.
func (o *Observer) StartAppend(
	ctx context.Context,
	events eventstore.StorableEvents,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
) (context.Context, *Operation) {

	attrs := map[string]string{
		AttrEventCount:  strconv.Itoa(len(events)),
		AttrExpectedSeq: strconv.FormatUint(uint64(expectedMaxSequenceNumber), 10),
	}

	if len(events) > 0 {
		attrs[AttrEventType] = events[0].EventType
	}

	return o.start(ctx, OperationAppend, SpanNameAppend, attrs)
}

func (o *Observer) start(ctx context.Context, operation, spanName string, attrs map[string]string) (context.Context, *Operation) {
	op := &Operation{o: o, ctx: ctx, name: operation, startedAt: time.Now()}

	if o.Tracing != nil {
		attrs[AttrOperation] = operation
		attrs[AttrEngine] = o.Engine
		op.ctx, op.span = o.Tracing.StartSpan(ctx, spanName, attrs)
	}

	return op.ctx, op
}

// Context returns the context carrying the operation span.
func (op *Operation) Context() context.Context {
	return op.ctx
}

// SQL logs a statement the operation executed at debug level.
func (op *Operation) SQL(sqlQuery string) {
	op.o.logDebug(op.ctx, msgSQLExecuted+op.name, AttrDurationMS, ToMilliseconds(time.Since(op.startedAt)), AttrQuery, sqlQuery)
}

// QuerySucceeded records a finished Query.
func (op *Operation) QuerySucceeded(eventCount int, maxSequenceNumber eventstore.MaxSequenceNumberUint) {
	duration := time.Since(op.startedAt)

	op.o.recordDuration(op.ctx, MetricQueryDuration, duration, op.name, StatusSuccess)
	op.o.recordValue(op.ctx, MetricEventsQueried, float64(eventCount), op.name)
	op.o.logInfo(op.ctx, msgOperation+msgQueryCompleted, AttrEventCount, eventCount, AttrDurationMS, ToMilliseconds(duration))
	op.finishSpan(StatusSuccess, map[string]string{
		AttrEventCount:  strconv.Itoa(eventCount),
		AttrMaxSequence: strconv.FormatUint(uint64(maxSequenceNumber), 10),
		AttrDurationMS:  formatMS(duration),
	})
}

// AppendSucceeded records a finished Append.
func (op *Operation) AppendSucceeded(eventCount int) {
	duration := time.Since(op.startedAt)

	op.o.recordDuration(op.ctx, MetricAppendDuration, duration, op.name, StatusSuccess)
	op.o.recordValue(op.ctx, MetricEventsAppended, float64(eventCount), op.name)
	op.o.logInfo(op.ctx, msgOperation+msgEventsAppended, AttrEventCount, eventCount, AttrDurationMS, ToMilliseconds(duration))
	op.finishSpan(StatusSuccess, map[string]string{
		AttrRowsAffected: strconv.Itoa(eventCount),
		AttrDurationMS:   formatMS(duration),
	})
}

// Conflicted records an Append that lost the race for its stream.
func (op *Operation) Conflicted(expectedEvents int, rowsAffected int64, expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint) {
	duration := time.Since(op.startedAt)

	op.o.recordDuration(op.ctx, MetricAppendDuration, duration, op.name, StatusConflict)
	op.o.increment(op.ctx, MetricConcurrencyConflicts, map[string]string{AttrOperation: op.name, AttrEngine: op.o.Engine})
	op.o.logInfo(op.ctx, msgOperation+msgConcurrencyConflict,
		"expected_events", expectedEvents,
		AttrRowsAffected, rowsAffected,
		AttrExpectedSeq, expectedMaxSequenceNumber,
	)
	op.finishSpan(StatusConflict, map[string]string{
		AttrErrorType:    StatusConflict,
		AttrRowsAffected: strconv.FormatInt(rowsAffected, 10),
	})
}

// Failed records a failed operation and logs err with message at error level.
func (op *Operation) Failed(message string, errorType string, err error, args ...any) {
	duration := time.Since(op.startedAt)

	switch {
	case errors.Is(err, context.Canceled):
		errorType = ErrorTypeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		errorType = ErrorTypeTimeout
	}

	metric := MetricQueryDuration
	if op.name == OperationAppend {
		metric = MetricAppendDuration
	}

	op.o.recordDuration(op.ctx, metric, duration, op.name, StatusError)
	op.o.increment(op.ctx, MetricDatabaseErrors, map[string]string{
		AttrOperation: op.name,
		AttrEngine:    op.o.Engine,
		AttrErrorType: errorType,
	})
	op.o.logError(op.ctx, message, append([]any{AttrError, err.Error(), AttrErrorType, errorType}, args...)...)
	op.finishSpan(StatusError, map[string]string{
		AttrErrorType:  errorType,
		AttrDurationMS: formatMS(duration),
	})
}

// Warn logs a non-fatal problem, for example a failure to close rows.
func (op *Operation) Warn(message string, err error) {
	if op.o.ContextualLogger != nil {
		op.o.ContextualLogger.WarnContext(op.ctx, message, AttrError, err.Error())
	} else if op.o.Logger != nil {
		op.o.Logger.Warn(message, AttrError, err.Error())
	}
}

func (op *Operation) finishSpan(status string, attrs map[string]string) {
	if op.o.Tracing == nil || op.span == nil {
		return
	}

	op.o.Tracing.FinishSpan(op.span, status, attrs)
}

func (o *Observer) logDebug(ctx context.Context, msg string, args ...any) {
	if o.ContextualLogger != nil {
		o.ContextualLogger.DebugContext(ctx, msg, args...)
	} else if o.Logger != nil {
		o.Logger.Debug(msg, args...)
	}
}

func (o *Observer) logInfo(ctx context.Context, msg string, args ...any) {
	if o.ContextualLogger != nil {
		o.ContextualLogger.InfoContext(ctx, msg, args...)
	} else if o.Logger != nil {
		o.Logger.Info(msg, args...)
	}
}

func (o *Observer) logError(ctx context.Context, msg string, args ...any) {
	if o.ContextualLogger != nil {
		o.ContextualLogger.ErrorContext(ctx, msg, args...)
	} else if o.Logger != nil {
		o.Logger.Error(msg, args...)
	}
}

func (o *Observer) recordDuration(ctx context.Context, metric string, d time.Duration, operation, status string) {
	if o.Metrics == nil {
		return
	}

	labels := map[string]string{AttrOperation: operation, AttrStatus: status, AttrEngine: o.Engine}

	if contextual, ok := o.Metrics.(eventstore.ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(ctx, metric, d, labels)
		return
	}

	o.Metrics.RecordDuration(metric, d, labels)
}

func (o *Observer) recordValue(ctx context.Context, metric string, value float64, operation string) {
	if o.Metrics == nil {
		return
	}

	labels := map[string]string{AttrOperation: operation, AttrEngine: o.Engine}

	if contextual, ok := o.Metrics.(eventstore.ContextualMetricsCollector); ok {
		contextual.RecordValueContext(ctx, metric, value, labels)
		return
	}

	o.Metrics.RecordValue(metric, value, labels)
}

func (o *Observer) increment(ctx context.Context, metric string, labels map[string]string) {
	if o.Metrics == nil {
		return
	}

	if contextual, ok := o.Metrics.(eventstore.ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, metric, labels)
		return
	}

	o.Metrics.IncrementCounter(metric, labels)
}

// ToMilliseconds converts d to milliseconds rounded to three decimals.
func ToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

func formatMS(d time.Duration) string {
	return strconv.FormatFloat(float64(d.Nanoseconds())/1e6, 'f', 2, 64)
}
