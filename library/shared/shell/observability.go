package shell

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/AntonStoeckl/school-library-go/eventstore"
)

const (
	CommandHandlerDurationMetric            = "commandhandler_handle_duration_seconds"
	CommandHandlerCallsMetric               = "commandhandler_handle_calls_total"
	CommandHandlerIdempotentMetric          = "commandhandler_idempotent_operations_total"
	CommandHandlerCanceledMetric            = "commandhandler_canceled_operations_total"
	CommandHandlerTimeoutMetric             = "commandhandler_timeout_operations_total"
	CommandHandlerConcurrencyConflictMetric = "commandhandler_concurrency_conflicts_total"

	// CommandHandlerRetriesMetric is labeled with command_type, attempt_number and error_type.
	CommandHandlerRetriesMetric = "commandhandler_retries_total"

	// CommandHandlerRetryDelayMetric is labeled with command_type and attempt_number.
	CommandHandlerRetryDelayMetric = "commandhandler_retry_delay_seconds"

	// CommandHandlerMaxRetriesReachedMetric is labeled with command_type and final_error_type.
	CommandHandlerMaxRetriesReachedMetric = "commandhandler_max_retries_reached_total"

	QueryHandlerDurationMetric = "queryhandler_handle_duration_seconds"
	QueryHandlerCallsMetric    = "queryhandler_handle_calls_total"
	QueryHandlerCanceledMetric = "queryhandler_canceled_operations_total"
	QueryHandlerTimeoutMetric  = "queryhandler_timeout_operations_total"

	StatusSuccess             = "success"
	StatusError               = "error"
	StatusIdempotent          = "idempotent"
	StatusCanceled            = "canceled"
	StatusTimeout             = "timeout"
	StatusConcurrencyConflict = "concurrency_conflict"

	LogMsgCommandStarted   = "command handler started"
	LogMsgCommandCompleted = "command handler completed"
	LogMsgCommandFailed    = "command handler failed"
	LogMsgQueryStarted     = "query handler started"
	LogMsgQueryCompleted   = "query handler completed"
	LogMsgQueryFailed      = "query handler failed"

	LogAttrCommandType     = "command_type"
	LogAttrQueryType       = "query_type"
	LogAttrStatus          = "status"
	LogAttrDurationMS      = "duration_ms"
	LogAttrBusinessOutcome = "business_outcome"
	LogAttrError           = "error"

	SpanNameCommandHandle = "commandhandler.handle"
	SpanNameQueryHandle   = "queryhandler.handle"
)

type MetricsCollector = eventstore.MetricsCollector
type ContextualMetricsCollector = eventstore.ContextualMetricsCollector
type TracingCollector = eventstore.TracingCollector
type SpanContext = eventstore.SpanContext
type ContextualLogger = eventstore.ContextualLogger
type Logger = eventstore.Logger

// Observability bundles the optional collaborators of the command and query wrappers.
// Every field may be nil.
type Observability struct {
	Metrics          MetricsCollector
	Tracing          TracingCollector
	ContextualLogger ContextualLogger
	Logger           Logger
}

func BuildCommandLabels(commandType, status string) map[string]string {
	return map[string]string{LogAttrCommandType: commandType, LogAttrStatus: status}
}

func BuildQueryLabels(queryType, status string) map[string]string {
	return map[string]string{LogAttrQueryType: queryType, LogAttrStatus: status}
}

func BuildRetryLabels(commandType string, attemptNumber int, errorType string) map[string]string {
	return map[string]string{
		LogAttrCommandType: commandType,
		"attempt_number":   strconv.Itoa(attemptNumber),
		"error_type":       errorType,
	}
}

func ToMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// StatusOf classifies err into one of the Status* constants. A nil err is a success.
func StatusOf(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, context.Canceled):
		return StatusCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return StatusTimeout
	case errors.Is(err, eventstore.ErrConcurrencyConflict):
		return StatusConcurrencyConflict
	default:
		return StatusError
	}
}

var commandStatusMetrics = map[string]string{
	StatusIdempotent:          CommandHandlerIdempotentMetric,
	StatusCanceled:            CommandHandlerCanceledMetric,
	StatusTimeout:             CommandHandlerTimeoutMetric,
	StatusConcurrencyConflict: CommandHandlerConcurrencyConflictMetric,
}

var queryStatusMetrics = map[string]string{
	StatusCanceled: QueryHandlerCanceledMetric,
	StatusTimeout:  QueryHandlerTimeoutMetric,
}

// RecordCommandMetrics records duration and call count, plus the dedicated counter of special statuses.
func (o Observability) RecordCommandMetrics(ctx context.Context, commandType, status string, duration time.Duration) {
	labels := BuildCommandLabels(commandType, status)

	o.recordDuration(ctx, CommandHandlerDurationMetric, duration, labels)
	o.increment(ctx, CommandHandlerCallsMetric, labels)

	if metric, ok := commandStatusMetrics[status]; ok {
		o.increment(ctx, metric, BuildCommandLabels(commandType, status))
	}
}

func (o Observability) RecordQueryMetrics(ctx context.Context, queryType, status string, duration time.Duration) {
	labels := BuildQueryLabels(queryType, status)

	o.recordDuration(ctx, QueryHandlerDurationMetric, duration, labels)
	o.increment(ctx, QueryHandlerCallsMetric, labels)

	if metric, ok := queryStatusMetrics[status]; ok {
		o.increment(ctx, metric, BuildQueryLabels(queryType, status))
	}
}

// RecordRetryMetrics records what the retry loop of one handled command reported.
func (o Observability) RecordRetryMetrics(ctx context.Context, commandType string, result HandlerResult) {
	if result.RetryAttempts > 1 {
		o.increment(ctx, CommandHandlerRetriesMetric, BuildRetryLabels(commandType, result.RetryAttempts-1, result.LastErrorType))
		o.recordDuration(ctx, CommandHandlerRetryDelayMetric, result.TotalRetryDelay, map[string]string{LogAttrCommandType: commandType})
	}

	if result.RetriesExhausted {
		o.increment(ctx, CommandHandlerMaxRetriesReachedMetric, map[string]string{LogAttrCommandType: commandType})
	}
}

// StartSpan returns ctx unchanged and a nil span when tracing is off.
func (o Observability) StartSpan(ctx context.Context, name, typeAttr, typeValue string) (context.Context, SpanContext) {
	if o.Tracing == nil {
		return ctx, nil
	}

	return o.Tracing.StartSpan(ctx, name, map[string]string{typeAttr: typeValue})
}

func (o Observability) FinishSpan(span SpanContext, status string, duration time.Duration, err error) {
	if o.Tracing == nil || span == nil {
		return
	}

	attrs := map[string]string{
		LogAttrStatus:     status,
		LogAttrDurationMS: strconv.FormatFloat(ToMilliseconds(duration), 'f', 2, 64),
	}

	if err != nil {
		attrs[LogAttrError] = err.Error()
	}

	o.Tracing.FinishSpan(span, status, attrs)
}

func (o Observability) LogInfo(ctx context.Context, msg string, args ...any) {
	if o.ContextualLogger != nil {
		o.ContextualLogger.InfoContext(ctx, msg, args...)
	} else if o.Logger != nil {
		o.Logger.Info(msg, args...)
	}
}

func (o Observability) LogError(ctx context.Context, msg string, args ...any) {
	if o.ContextualLogger != nil {
		o.ContextualLogger.ErrorContext(ctx, msg, args...)
	} else if o.Logger != nil {
		o.Logger.Error(msg, args...)
	}
}

// LogWarn is used for failures that are the caller's fault, for example a rejected loan request.
func (o Observability) LogWarn(ctx context.Context, msg string, args ...any) {
	if o.ContextualLogger != nil {
		o.ContextualLogger.WarnContext(ctx, msg, args...)
	} else if o.Logger != nil {
		o.Logger.Warn(msg, args...)
	}
}

func (o Observability) recordDuration(ctx context.Context, metric string, d time.Duration, labels map[string]string) {
	if o.Metrics == nil {
		return
	}

	if contextual, ok := o.Metrics.(ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(ctx, metric, d, labels)
		return
	}

	o.Metrics.RecordDuration(metric, d, labels)
}

func (o Observability) increment(ctx context.Context, metric string, labels map[string]string) {
	if o.Metrics == nil {
		return
	}

	if contextual, ok := o.Metrics.(ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, metric, labels)
		return
	}

	o.Metrics.IncrementCounter(metric, labels)
}

// RecordValue records a gauge style value, for example the number of overdue loans.
func (o Observability) RecordValue(ctx context.Context, metric string, value float64, labels map[string]string) {
	if o.Metrics == nil {
		return
	}

	if contextual, ok := o.Metrics.(ContextualMetricsCollector); ok {
		contextual.RecordValueContext(ctx, metric, value, labels)
		return
	}

	o.Metrics.RecordValue(metric, value, labels)
}
