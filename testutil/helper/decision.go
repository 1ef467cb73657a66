package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

// AssertSuccessDecision checks the outcome and the event types, in order, and returns the events.
func AssertSuccessDecision(t *testing.T, result core.DecisionResult, expectedEventTypes ...string) core.DomainEvents {
	t.Helper()

	assert.Equal(t, "success", result.Outcome, "Expected success decision")
	assert.NoError(t, result.HasError(), "Expected no error for success decision")
	require.Len(t, result.Events, len(expectedEventTypes))

	for i, eventType := range expectedEventTypes {
		assert.Equal(t, eventType, result.Events[i].EventType())
	}

	return result.Events
}

func AssertIdempotentDecision(t *testing.T, result core.DecisionResult) {
	t.Helper()

	assert.Equal(t, "idempotent", result.Outcome, "Expected idempotent decision")
	assert.Empty(t, result.Events, "Expected no event for idempotent decision")
	assert.NoError(t, result.HasError())
}

// AssertErrorDecision checks the failure event and that the error unwraps to kind.
func AssertErrorDecision(t *testing.T, result core.DecisionResult, failedEventType string, kind error, reason string) {
	t.Helper()

	assert.Equal(t, "error", result.Outcome, "Expected error decision")
	require.Len(t, result.Events, 1)
	assert.ErrorIs(t, result.HasError(), kind)
	assert.Equal(t, reason, core.Reason(result.HasError()))

	failure, ok := result.Events[0].(core.OperationFailed)
	require.True(t, ok, "Expected OperationFailed event")
	assert.Equal(t, failedEventType, failure.EventType())
	assert.Equal(t, reason, failure.FailureInfo)
}
