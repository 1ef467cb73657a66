package changemembership

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const failedEventType = "ChangingMembershipFailed"

// Decide switches the membership to the requested state.
//
//	ERROR: NotFound if the student does not exist
//	IDEMPOTENCY: the membership already has the requested state, nothing is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	studentID := command.StudentID.String()
	student := core.ProjectStudent(history, studentID)

	if !student.Exists {
		return core.ErrorDecision(
			core.BuildOperationFailed(failedEventType, studentID, core.ReasonStudentNotFound, command.OccurredAt),
			core.ErrNotFound,
		)
	}

	if student.Active == command.Activate {
		return core.IdempotentDecision()
	}

	if command.Activate {
		return core.SuccessDecision(core.BuildMembershipActivated(studentID, command.AdminID.String(), command.OccurredAt))
	}

	return core.SuccessDecision(core.BuildMembershipDeactivated(studentID, command.AdminID.String(), command.OccurredAt))
}

func BuildEventFilter(studentID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.StudentRegisteredEventType,
			core.StudentRemovedEventType,
			core.MembershipActivatedEventType,
			core.MembershipDeactivatedEventType,
		).
		AndAnyPredicateOf(eventstore.P("StudentID", studentID.String())).
		Finalize()
}
