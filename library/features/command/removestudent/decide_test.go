package removestudent_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/school-library-go/library/features/command/removestudent"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/testutil/helper"
)

func Test_Decide(t *testing.T) {
	studentID := helper.GivenUniqueID(t)
	now := time.Now()
	registered := helper.GivenStudentRegistered(studentID.String(), "jane@school.test", now)
	loan := core.LoanRef{LoanID: "loan", BookID: "book", StudentID: studentID.String()}

	t.Run("student without open loans is removed", func(t *testing.T) {
		// arrange
		history := append(core.DomainEvents{registered}, helper.GivenPendingLoan(loan, now)...)
		history = append(history, core.BuildLoanRejected(loan, "admin", now))

		// act
		result := removestudent.Decide(history, removestudent.BuildCommand(studentID, now))

		// assert
		events := helper.AssertSuccessDecision(t, result, core.StudentRemovedEventType)
		assert.Equal(t, "jane@school.test", events[0].(core.StudentRemoved).Email)
	})

	t.Run("student with a pending loan is kept", func(t *testing.T) {
		history := append(core.DomainEvents{registered}, helper.GivenPendingLoan(loan, now)...)

		result := removestudent.Decide(history, removestudent.BuildCommand(studentID, now))

		helper.AssertErrorDecision(t, result, "RemovingStudentFailed", core.ErrInvalidState, core.ReasonStudentHasOpenLoans)
	})

	t.Run("unknown student", func(t *testing.T) {
		result := removestudent.Decide(nil, removestudent.BuildCommand(studentID, now))

		helper.AssertErrorDecision(t, result, "RemovingStudentFailed", core.ErrNotFound, core.ReasonStudentNotFound)
	})
}
