package shell

import (
	"context"
	"time"

	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

// HandlerResult is what a command handler reports besides its error: the business outcome
// and how many attempts the optimistic concurrency retry needed.
type HandlerResult struct {
	// Idempotent means the command was already fulfilled and nothing was appended.
	Idempotent bool

	// RetryAttempts is 1 when the first attempt settled the command.
	RetryAttempts int

	// TotalRetryDelay is the time spent sleeping between attempts.
	TotalRetryDelay time.Duration

	// LastErrorType is "none", "concurrency_conflict", "context_canceled", "context_deadline_exceeded" or "other".
	LastErrorType string

	// RetriesExhausted is true when every attempt ended in a concurrency conflict.
	RetriesExhausted bool
}

func NewSuccessResult(retryMetrics RetryMetrics) HandlerResult {
	return resultFrom(false, retryMetrics)
}

func NewIdempotentResult(retryMetrics RetryMetrics) HandlerResult {
	return resultFrom(true, retryMetrics)
}

// NewErrorResult keeps the retry metadata of a failed command.
func NewErrorResult(retryMetrics RetryMetrics) HandlerResult {
	return resultFrom(false, retryMetrics)
}

func resultFrom(idempotent bool, retryMetrics RetryMetrics) HandlerResult {
	return HandlerResult{
		Idempotent:       idempotent,
		RetryAttempts:    retryMetrics.Attempts,
		TotalRetryDelay:  retryMetrics.TotalDelay,
		LastErrorType:    retryMetrics.LastErrorType,
		RetriesExhausted: retryMetrics.RetriesExhausted,
	}
}

// HandleWithRetry runs execute with RetryWithExponentialBackoff and turns the outcome into a HandlerResult.
// Each attempt must re-query and re-decide, so a retried command can never apply a stale decision.
func HandleWithRetry(
	ctx context.Context,
	execute func(ctx context.Context) (core.DecisionResult, error),
	options ...RetryOption,
) (HandlerResult, error) {

	var decision core.DecisionResult

	retryMetrics, err := RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		var execErr error
		decision, execErr = execute(retryCtx)

		return execErr
	}, options...)

	switch {
	case err != nil:
		return NewErrorResult(retryMetrics), err
	case decision.IsIdempotent():
		return NewIdempotentResult(retryMetrics), nil
	default:
		return NewSuccessResult(retryMetrics), nil
	}
}
