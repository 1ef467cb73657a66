package removestudent

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const failedEventType = "RemovingStudentFailed"

// Decide removes a student without open loans. The email becomes free again.
//
//	ERROR: NotFound if the student does not exist
//	ERROR: InvalidState if a loan of the student still holds a copy
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	studentID := command.StudentID.String()
	student := core.ProjectStudent(history, studentID)

	if !student.Exists {
		return fail(command, core.ErrNotFound, core.ReasonStudentNotFound)
	}

	openLoans := core.CountOpenLoans(history, func(loan core.LoanRecord) bool { return loan.StudentID == studentID })
	if openLoans > 0 {
		return fail(command, core.ErrInvalidState, core.ReasonStudentHasOpenLoans)
	}

	return core.SuccessDecision(core.BuildStudentRemoved(studentID, student.Email, command.OccurredAt))
}

func fail(command Command, kind error, reason string) core.DecisionResult {
	return core.ErrorDecision(
		core.BuildOperationFailed(failedEventType, command.StudentID.String(), reason, command.OccurredAt),
		kind,
	)
}

// BuildEventFilter selects the student and all loans of the student.
func BuildEventFilter(studentID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.StudentRegisteredEventType,
			core.StudentDetailsUpdatedEventType,
			core.StudentRemovedEventType,
			core.MembershipActivatedEventType,
			core.MembershipDeactivatedEventType,
			core.LoanRequestedEventType,
			core.LoanApprovedEventType,
			core.LoanRejectedEventType,
			core.BookHandedOverEventType,
			core.LoanReturnedEventType,
		).
		AndAnyPredicateOf(eventstore.P("StudentID", studentID.String())).
		Finalize()
}
