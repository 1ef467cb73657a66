package addcategory

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const failedEventType = "AddingCategoryFailed"

// Decide adds the category unless the name is taken.
//
//	ERROR: InvalidArgument if the name is blank
//	ERROR: Conflict if another category holds the name
//	IDEMPOTENCY: the category id was already used, nothing is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	categoryID := command.CategoryID.String()

	if command.Name == "" {
		return core.ErrorDecision(
			core.BuildOperationFailed(failedEventType, categoryID, core.ReasonCategoryNameRequired, command.OccurredAt),
			core.ErrInvalidArgument,
		)
	}
	category := core.ProjectCategory(history, categoryID)

	if category.Exists || category.Removed {
		return core.IdempotentDecision()
	}

	if core.CategoryNameOwner(history, command.Name) != "" {
		return core.ErrorDecision(
			core.BuildOperationFailed(failedEventType, categoryID, core.ReasonCategoryNameTaken, command.OccurredAt),
			core.ErrConflict,
		)
	}

	return core.SuccessDecision(core.BuildCategoryAdded(categoryID, command.Name, command.OccurredAt))
}

// BuildEventFilter selects the category and every event moving the name.
func BuildEventFilter(categoryID uuid.UUID, name string) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.CategoryAddedEventType,
			core.CategoryRenamedEventType,
			core.CategoryRemovedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("CategoryID", categoryID.String()),
			eventstore.P("Name", name),
			eventstore.P("PreviousName", name),
		).
		Finalize()
}
