package returnloan_test

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/school-library-go/library/features/command/returnloan"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/testutil/helper"
)

func Test_Decide_Success(t *testing.T) {
	loanID := helper.GivenUniqueID(t)
	now := time.Now()
	ref := core.LoanRef{LoanID: loanID.String(), BookID: helper.GivenUniqueID(t).String(), StudentID: "student"}
	pending := append(core.DomainEvents{helper.GivenBookAdded(ref.BookID, "isbn", 1, now)}, helper.GivenPendingLoan(ref, now)...)
	approved := append(pending, core.BuildLoanApproved(ref, "admin", now.Add(-time.Hour), now.Add(-2*time.Hour)))

	testCases := []struct {
		name    string
		history core.DomainEvents
	}{
		{name: "approved", history: approved},
		{name: "borrowed and overdue", history: append(approved, core.BuildBookHandedOver(ref, "admin", now.Add(-2*time.Hour)))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := returnloan.Decide(tc.history, returnloan.BuildCommand(loanID, helper.GivenUniqueID(t), now))

			// assert
			events := helper.AssertSuccessDecision(t, result, core.LoanReturnedEventType, core.BookCopyReleasedEventType)

			after := slices.Concat(tc.history, events)
			loan := core.ProjectLoan(after, ref.LoanID)
			assert.Equal(t, core.LoanStatusReturned, loan.Status)
			assert.False(t, loan.IsOverdue(now), "a returned loan is never overdue")
			assert.Equal(t, 1, core.ProjectBookInventory(after, ref.BookID).AvailableCopies)
		})
	}
}

func Test_Decide_SecondReturnFails(t *testing.T) {
	// arrange
	loanID := helper.GivenUniqueID(t)
	now := time.Now()
	ref := core.LoanRef{LoanID: loanID.String(), BookID: helper.GivenUniqueID(t).String(), StudentID: "student"}
	history := append(core.DomainEvents{helper.GivenBookAdded(ref.BookID, "isbn", 1, now)}, helper.GivenPendingLoan(ref, now)...)
	history = append(history, core.BuildLoanApproved(ref, "admin", now.Add(time.Hour), now))

	first := returnloan.Decide(history, returnloan.BuildCommand(loanID, helper.GivenUniqueID(t), now))
	history = append(history, first.Events...)

	// act
	second := returnloan.Decide(history, returnloan.BuildCommand(loanID, helper.GivenUniqueID(t), now))

	// assert
	helper.AssertErrorDecision(t, second, "ReturningLoanFailed", core.ErrInvalidState, "loan is returned, cannot become returned")
	assert.Equal(t, 1, core.ProjectBookInventory(history, ref.BookID).AvailableCopies)
}

func Test_Decide_PendingLoanCannotBeReturned(t *testing.T) {
	loanID := helper.GivenUniqueID(t)
	now := time.Now()
	ref := core.LoanRef{LoanID: loanID.String(), BookID: "book", StudentID: "student"}

	result := returnloan.Decide(helper.GivenPendingLoan(ref, now), returnloan.BuildCommand(loanID, helper.GivenUniqueID(t), now))

	helper.AssertErrorDecision(t, result, "ReturningLoanFailed", core.ErrInvalidState, "loan is pending, cannot become returned")
}
