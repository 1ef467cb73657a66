package core_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

func Test_ErrorDecisionFrom_KeepsKindAndReason(t *testing.T) {
	// arrange
	_, violation := core.BookInventory{}.ReserveCopy()

	// act
	result := core.ErrorDecisionFrom("RequestingLoanFailed", "loan-1", violation, time.Now())

	// assert
	err := result.HasError()
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Equal(t, "RequestingLoanFailed: book not found", err.Error())
	assert.Equal(t, "book not found", core.Reason(err))
	require.Len(t, result.Events, 1)
	assert.Equal(t, "RequestingLoanFailed", result.Events[0].EventType())
	assert.True(t, result.HasEventToAppend())
}

func Test_ErrorDecisionFrom_UnknownErrorIsInvariantViolation(t *testing.T) {
	// act
	result := core.ErrorDecisionFrom("ReturningLoanFailed", "loan-1", errors.New("boom"), time.Now())

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrInvariantViolation)

	var decisionErr core.DecisionError
	require.ErrorAs(t, result.HasError(), &decisionErr)
	assert.Equal(t, "ReturningLoanFailed", decisionErr.EventType)
}

func Test_IdempotentDecision(t *testing.T) {
	result := core.IdempotentDecision()

	assert.True(t, result.IsIdempotent())
	assert.False(t, result.HasEventToAppend())
	assert.NoError(t, result.HasError())
}
