package observable_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/school-library-go/library/shared/shell"
	"github.com/AntonStoeckl/school-library-go/library/shared/shell/observable"
	"github.com/AntonStoeckl/school-library-go/testutil/observability/testdoubles"
)

func Test_QueryWrapper_Handle_Success(t *testing.T) {
	// arrange
	handler := queryHandlerStub{result: []string{"978-0-13-468599-1"}}
	metrics := testdoubles.NewMetricsCollectorSpy()
	tracing := testdoubles.NewTracingCollectorSpy()
	logger := testdoubles.NewLoggerSpy()

	wrapper := observable.NewQueryWrapper[stubQuery, []string](
		handler,
		observable.WithObservability(shell.Observability{Metrics: metrics, Tracing: tracing, ContextualLogger: logger}),
	)

	// act
	result, err := wrapper.Handle(context.Background(), stubQuery{})

	// assert
	require.NoError(t, err)
	assert.Equal(t, handler.result, result)

	calls := metrics.CounterRecords(shell.QueryHandlerCallsMetric)
	require.Len(t, calls, 1)
	assert.Equal(t, shell.BuildQueryLabels("StubQuery", shell.StatusSuccess), calls[0].Labels)
	assert.True(t, metrics.HasDurationRecord(shell.QueryHandlerDurationMetric))
	assert.Len(t, tracing.SpansNamed(shell.SpanNameQueryHandle), 1)
	assert.True(t, logger.HasMessage("INFO", shell.LogMsgQueryCompleted))
}

func Test_QueryWrapper_Handle_Errors(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		expectedStatus string
		expectedMetric string
	}{
		{name: "canceled", err: context.Canceled, expectedStatus: shell.StatusCanceled, expectedMetric: shell.QueryHandlerCanceledMetric},
		{name: "timeout", err: context.DeadlineExceeded, expectedStatus: shell.StatusTimeout, expectedMetric: shell.QueryHandlerTimeoutMetric},
		{name: "other", err: errors.New("disk full"), expectedStatus: shell.StatusError, expectedMetric: shell.QueryHandlerCallsMetric},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			metrics := testdoubles.NewMetricsCollectorSpy()
			logger := testdoubles.NewLoggerSpy()
			wrapper := observable.NewQueryWrapper[stubQuery, []string](
				queryHandlerStub{err: tc.err},
				observable.WithMetrics(metrics),
				observable.WithLogging(logger),
			)

			// act
			_, err := wrapper.Handle(context.Background(), stubQuery{})

			// assert
			assert.ErrorIs(t, err, tc.err)

			records := metrics.CounterRecords(tc.expectedMetric)
			require.NotEmpty(t, records)
			assert.Equal(t, tc.expectedStatus, records[0].Labels[shell.LogAttrStatus])
			assert.True(t, logger.HasMessage("ERROR", shell.LogMsgQueryFailed))
		})
	}
}

type stubQuery struct{}

func (q stubQuery) QueryType() string {
	return "StubQuery"
}

type queryHandlerStub struct {
	result []string
	err    error
}

func (h queryHandlerStub) Handle(_ context.Context, _ stubQuery) ([]string, error) {
	return h.result, h.err
}
