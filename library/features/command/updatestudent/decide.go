package updatestudent

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const failedEventType = "UpdatingStudentFailed"

// Decide applies the changes to an existing student.
//
//	ERROR: NotFound if the student or the new grade level does not exist
//	ERROR: Conflict if another student holds the new email
//	IDEMPOTENCY: nothing changes, nothing is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	studentID := command.StudentID.String()
	student := core.ProjectStudent(history, studentID)

	if !student.Exists {
		return fail(command, core.ErrNotFound, core.ReasonStudentNotFound)
	}

	profile := command.Changes.ApplyTo(student.StudentProfile)

	if profile == student.StudentProfile {
		return core.IdempotentDecision()
	}

	if profile.Email != student.Email {
		if owner := core.StudentEmailOwner(history, profile.Email); owner != "" && owner != studentID {
			return fail(command, core.ErrConflict, core.ReasonEmailTaken)
		}
	}

	if profile.GradeLevelID != student.GradeLevelID && profile.GradeLevelID != "" {
		if !core.GradeLevelExists(history, profile.GradeLevelID) {
			return fail(command, core.ErrNotFound, core.ReasonGradeLevelNotFound)
		}
	}

	return core.SuccessDecision(core.BuildStudentDetailsUpdated(studentID, profile, student.Email, command.OccurredAt))
}

func fail(command Command, kind error, reason string) core.DecisionResult {
	return core.ErrorDecision(
		core.BuildOperationFailed(failedEventType, command.StudentID.String(), reason, command.OccurredAt),
		kind,
	)
}

// BuildEventFilter selects the student and, when they change, the new email and grade level.
func BuildEventFilter(studentID uuid.UUID, changes Changes) eventstore.Filter {
	builder := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.StudentRegisteredEventType,
			core.StudentDetailsUpdatedEventType,
			core.StudentRemovedEventType,
		).
		AndAnyPredicateOf(eventstore.P("StudentID", studentID.String()))

	if changes.Email != nil && *changes.Email != "" {
		builder = builder.
			OrMatching().
			AnyEventTypeOf(
				core.StudentRegisteredEventType,
				core.StudentDetailsUpdatedEventType,
				core.StudentRemovedEventType,
			).
			AndAnyPredicateOf(
				eventstore.P("Email", *changes.Email),
				eventstore.P("PreviousEmail", *changes.Email),
			)
	}

	if changes.GradeLevelID != nil && *changes.GradeLevelID != "" {
		builder = builder.
			OrMatching().
			AnyEventTypeOf(core.GradeLevelAddedEventType).
			AndAnyPredicateOf(eventstore.P("GradeLevelID", *changes.GradeLevelID))
	}

	return builder.Finalize()
}
