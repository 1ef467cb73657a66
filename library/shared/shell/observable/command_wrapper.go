package observable

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/library/shared/shell"
)

// CommandWrapper instruments a core command handler.
type CommandWrapper[C shell.Command] struct {
	coreHandler shell.CoreCommandHandler[C]
	commandType string
	o           shell.Observability
}

func NewCommandWrapper[C shell.Command](coreHandler shell.CoreCommandHandler[C], opts ...Option) *CommandWrapper[C] {
	var zeroCommand C

	return &CommandWrapper[C]{
		coreHandler: coreHandler,
		commandType: zeroCommand.CommandType(),
		o:           build(opts),
	}
}

// Handle delegates to the core handler and records the outcome.
// Rejected commands (a core.DecisionError) count as errors but are logged at warn level.
func (w *CommandWrapper[C]) Handle(ctx context.Context, command C) (shell.HandlerResult, error) {
	start := time.Now()
	ctx, span := w.o.StartSpan(ctx, shell.SpanNameCommandHandle, shell.LogAttrCommandType, w.commandType)
	w.o.LogInfo(ctx, shell.LogMsgCommandStarted, shell.LogAttrCommandType, w.commandType)

	result, err := w.coreHandler.Handle(ctx, command)
	duration := time.Since(start)

	w.o.RecordRetryMetrics(ctx, w.commandType, result)

	status := shell.StatusOf(err)
	if err == nil && result.Idempotent {
		status = shell.StatusIdempotent
	}

	w.o.RecordCommandMetrics(ctx, w.commandType, status, duration)
	w.o.FinishSpan(span, status, duration, err)

	switch {
	case err == nil:
		w.o.LogInfo(ctx, shell.LogMsgCommandCompleted,
			shell.LogAttrCommandType, w.commandType,
			shell.LogAttrBusinessOutcome, status,
			shell.LogAttrDurationMS, shell.ToMilliseconds(duration),
		)
	case errors.As(err, new(core.DecisionError)):
		w.o.LogWarn(ctx, shell.LogMsgCommandFailed, shell.LogAttrCommandType, w.commandType, shell.LogAttrError, err.Error())
	default:
		w.o.LogError(ctx, shell.LogMsgCommandFailed, shell.LogAttrCommandType, w.commandType, shell.LogAttrError, err.Error())
	}

	return result, err
}
