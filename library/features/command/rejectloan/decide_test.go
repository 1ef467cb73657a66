package rejectloan_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/school-library-go/library/features/command/rejectloan"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/testutil/helper"
)

func Test_Decide_Success_ReleasesCopy(t *testing.T) {
	// arrange
	loanID := helper.GivenUniqueID(t)
	now := time.Now()
	ref := core.LoanRef{LoanID: loanID.String(), BookID: helper.GivenUniqueID(t).String(), StudentID: "student"}
	history := append(core.DomainEvents{helper.GivenBookAdded(ref.BookID, "isbn", 1, now)}, helper.GivenPendingLoan(ref, now)...)

	// act
	result := rejectloan.Decide(history, rejectloan.BuildCommand(loanID, helper.GivenUniqueID(t), now))

	// assert
	events := helper.AssertSuccessDecision(t, result, core.LoanRejectedEventType, core.BookCopyReleasedEventType)

	after := append(history, events...)
	assert.Equal(t, 1, core.ProjectBookInventory(after, ref.BookID).AvailableCopies)
	assert.Equal(t, core.LoanStatusRejected, core.ProjectLoan(after, ref.LoanID).Status)
}

func Test_Decide_Errors(t *testing.T) {
	loanID := helper.GivenUniqueID(t)
	now := time.Now()
	ref := core.LoanRef{LoanID: loanID.String(), BookID: helper.GivenUniqueID(t).String(), StudentID: "student"}
	book := helper.GivenBookAdded(ref.BookID, "isbn", 1, now)
	pending := append(core.DomainEvents{book}, helper.GivenPendingLoan(ref, now)...)

	testCases := []struct {
		name           string
		history        core.DomainEvents
		expectedKind   error
		expectedReason string
	}{
		{
			name:           "unknown loan",
			history:        core.DomainEvents{book},
			expectedKind:   core.ErrNotFound,
			expectedReason: core.ReasonLoanNotFound,
		},
		{
			name:           "approved loan",
			history:        append(pending, core.BuildLoanApproved(ref, "admin", now, now)),
			expectedKind:   core.ErrInvalidState,
			expectedReason: "loan is approved, cannot become rejected",
		},
		{
			name:           "release would exceed the total",
			history:        core.DomainEvents{book, core.BuildLoanRequested(ref, now)},
			expectedKind:   core.ErrInvariantViolation,
			expectedReason: core.ReasonReleaseExceedsTotal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := rejectloan.Decide(tc.history, rejectloan.BuildCommand(loanID, helper.GivenUniqueID(t), now))

			// assert
			helper.AssertErrorDecision(t, result, "RejectingLoanFailed", tc.expectedKind, tc.expectedReason)
		})
	}
}
