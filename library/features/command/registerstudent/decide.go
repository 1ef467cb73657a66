package registerstudent

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const failedEventType = "RegisteringStudentFailed"

// Decide registers the student unless the email is taken.
//
//	ERROR: Conflict if another student holds the email or the student id was registered with another email
//	ERROR: NotFound if the grade level does not exist
//	IDEMPOTENCY: the student id was already registered with the same email, nothing is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	studentID := command.StudentID.String()
	student := core.ProjectStudent(history, studentID)

	if student.Exists || student.Removed {
		if registeredEmail(history, studentID) != command.Profile.Email {
			return fail(command, core.ErrConflict, core.ReasonStudentIDReused)
		}

		return core.IdempotentDecision()
	}

	if core.StudentEmailOwner(history, command.Profile.Email) != "" {
		return fail(command, core.ErrConflict, core.ReasonEmailTaken)
	}

	if command.Profile.GradeLevelID != "" && !core.GradeLevelExists(history, command.Profile.GradeLevelID) {
		return fail(command, core.ErrNotFound, core.ReasonGradeLevelNotFound)
	}

	return core.SuccessDecision(core.BuildStudentRegistered(studentID, command.Profile, command.OccurredAt))
}

func fail(command Command, kind error, reason string) core.DecisionResult {
	return core.ErrorDecision(
		core.BuildOperationFailed(failedEventType, command.StudentID.String(), reason, command.OccurredAt),
		kind,
	)
}

func registeredEmail(history core.DomainEvents, studentID core.StudentIDString) core.EmailString {
	for _, event := range history {
		if e, ok := event.(core.StudentRegistered); ok && e.StudentID == studentID {
			return e.Email
		}
	}

	return ""
}

// BuildEventFilter selects the student, every event moving the email and the grade level.
func BuildEventFilter(studentID uuid.UUID, email core.EmailString, gradeLevelID core.GradeLevelIDString) eventstore.Filter {
	builder := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.StudentRegisteredEventType,
			core.StudentDetailsUpdatedEventType,
			core.StudentRemovedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("StudentID", studentID.String()),
			eventstore.P("Email", email),
			eventstore.P("PreviousEmail", email),
		)

	if gradeLevelID == "" {
		return builder.Finalize()
	}

	return builder.
		OrMatching().
		AnyEventTypeOf(core.GradeLevelAddedEventType).
		AndAnyPredicateOf(eventstore.P("GradeLevelID", gradeLevelID)).
		Finalize()
}
