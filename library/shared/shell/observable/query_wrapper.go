package observable

import (
	"context"
	"time"

	"github.com/AntonStoeckl/school-library-go/library/shared/shell"
)

// QueryWrapper instruments a core query handler.
type QueryWrapper[Q shell.Query, R any] struct {
	coreHandler shell.CoreQueryHandler[Q, R]
	queryType   string
	o           shell.Observability
}

func NewQueryWrapper[Q shell.Query, R any](coreHandler shell.CoreQueryHandler[Q, R], opts ...Option) *QueryWrapper[Q, R] {
	var zeroQuery Q

	return &QueryWrapper[Q, R]{
		coreHandler: coreHandler,
		queryType:   zeroQuery.QueryType(),
		o:           build(opts),
	}
}

func (w *QueryWrapper[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	start := time.Now()
	ctx, span := w.o.StartSpan(ctx, shell.SpanNameQueryHandle, shell.LogAttrQueryType, w.queryType)
	w.o.LogInfo(ctx, shell.LogMsgQueryStarted, shell.LogAttrQueryType, w.queryType)

	result, err := w.coreHandler.Handle(ctx, query)
	duration := time.Since(start)

	status := shell.StatusOf(err)
	if status == shell.StatusConcurrencyConflict {
		status = shell.StatusError
	}

	w.o.RecordQueryMetrics(ctx, w.queryType, status, duration)
	w.o.FinishSpan(span, status, duration, err)

	if err != nil {
		w.o.LogError(ctx, shell.LogMsgQueryFailed, shell.LogAttrQueryType, w.queryType, shell.LogAttrError, err.Error())
		return result, err
	}

	w.o.LogInfo(ctx, shell.LogMsgQueryCompleted,
		shell.LogAttrQueryType, w.queryType,
		shell.LogAttrBusinessOutcome, status,
		shell.LogAttrDurationMS, shell.ToMilliseconds(duration),
	)

	return result, nil
}
