package removecategory

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const failedEventType = "RemovingCategoryFailed"

// Decide removes an existing category and releases its name.
//
//	ERROR: NotFound if the category does not exist
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	categoryID := command.CategoryID.String()
	category := core.ProjectCategory(history, categoryID)

	if !category.Exists {
		return core.ErrorDecision(
			core.BuildOperationFailed(failedEventType, categoryID, core.ReasonCategoryNotFound, command.OccurredAt),
			core.ErrNotFound,
		)
	}

	return core.SuccessDecision(core.BuildCategoryRemoved(categoryID, category.Name, command.OccurredAt))
}

func BuildEventFilter(categoryID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.CategoryAddedEventType,
			core.CategoryRenamedEventType,
			core.CategoryRemovedEventType,
		).
		AndAnyPredicateOf(eventstore.P("CategoryID", categoryID.String())).
		Finalize()
}
