package addgradelevel

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const failedEventType = "AddingGradeLevelFailed"

// Decide adds the grade level unless the name is taken.
//
//	ERROR: InvalidArgument if the name is blank
//	ERROR: Conflict if another grade level holds the name
//	IDEMPOTENCY: the grade level id was already used, nothing is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	gradeLevelID := command.GradeLevelID.String()

	if command.Name == "" {
		return core.ErrorDecision(
			core.BuildOperationFailed(failedEventType, gradeLevelID, core.ReasonGradeLevelNameRequired, command.OccurredAt),
			core.ErrInvalidArgument,
		)
	}

	if core.GradeLevelExists(history, gradeLevelID) {
		return core.IdempotentDecision()
	}

	if core.GradeLevelNameOwner(history, command.Name) != "" {
		return core.ErrorDecision(
			core.BuildOperationFailed(failedEventType, gradeLevelID, core.ReasonGradeLevelNameTaken, command.OccurredAt),
			core.ErrConflict,
		)
	}

	return core.SuccessDecision(core.BuildGradeLevelAdded(gradeLevelID, command.Name, command.OccurredAt))
}

func BuildEventFilter(gradeLevelID uuid.UUID, name string) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.GradeLevelAddedEventType).
		AndAnyPredicateOf(
			eventstore.P("GradeLevelID", gradeLevelID.String()),
			eventstore.P("Name", name),
		).
		Finalize()
}
