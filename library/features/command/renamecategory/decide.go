package renamecategory

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const failedEventType = "RenamingCategoryFailed"

// Decide renames an existing category.
//
//	ERROR: InvalidArgument if the new name is blank
//	ERROR: NotFound if the category does not exist
//	ERROR: Conflict if another category holds the new name
//	IDEMPOTENCY: the category already has the name, nothing is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if command.Name == "" {
		return fail(command, core.ErrInvalidArgument, core.ReasonCategoryNameRequired)
	}

	categoryID := command.CategoryID.String()
	category := core.ProjectCategory(history, categoryID)

	if !category.Exists {
		return fail(command, core.ErrNotFound, core.ReasonCategoryNotFound)
	}

	if category.Name == command.Name {
		return core.IdempotentDecision()
	}

	if core.CategoryNameOwner(history, command.Name) != "" {
		return fail(command, core.ErrConflict, core.ReasonCategoryNameTaken)
	}

	return core.SuccessDecision(core.BuildCategoryRenamed(categoryID, command.Name, category.Name, command.OccurredAt))
}

func fail(command Command, kind error, reason string) core.DecisionResult {
	return core.ErrorDecision(
		core.BuildOperationFailed(failedEventType, command.CategoryID.String(), reason, command.OccurredAt),
		kind,
	)
}

// BuildEventFilter selects the category and every event moving the new name.
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
