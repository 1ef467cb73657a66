package approveloan

import (
	"context"
	"time"

	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/library/shared/shell"
)

// CommandHandler runs Query -> Decide -> Append for ApproveLoan and retries on concurrency conflicts.
type CommandHandler struct {
	eventStore   shell.EventStore
	loanPeriod   time.Duration
	retryOptions []shell.RetryOption
}

type Option func(*CommandHandler)

func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// WithLoanPeriod overrides DefaultLoanPeriod. Non-positive periods are ignored.
func WithLoanPeriod(period time.Duration) Option {
	return func(h *CommandHandler) {
		if period > 0 {
			h.loanPeriod = period
		}
	}
}

func NewCommandHandler(eventStore shell.EventStore, opts ...Option) CommandHandler {
	handler := CommandHandler{
		eventStore: eventStore,
		loanPeriod: DefaultLoanPeriod,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	filter := BuildEventFilter(command.LoanID)

	return shell.HandleWithRetry(ctx, func(ctx context.Context) (core.DecisionResult, error) {
		return shell.ExecuteCommand(ctx, h.eventStore, filter, func(history core.DomainEvents) core.DecisionResult {
			return Decide(history, command, h.loanPeriod)
		})
	}, h.retryOptions...)
}
