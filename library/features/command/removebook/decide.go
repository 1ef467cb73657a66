package removebook

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const failedEventType = "RemovingBookFailed"

// Decide removes a book that has all its copies on the shelf.
//
//	GIVEN: an existing book
//	WHEN: RemoveBook is received
//	THEN: BookRemovedFromCatalog is generated
//	ERROR: NotFound if the book does not exist or was removed
//	ERROR: InvalidState if copies are reserved or lent
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	bookID := command.BookID.String()
	book := core.ProjectBook(history, bookID)

	if !book.Exists {
		return fail(command, core.ErrNotFound, core.ReasonBookNotFound)
	}

	if book.CopiesOnLoan() > 0 {
		return fail(command, core.ErrInvalidState, core.ReasonBookHasCopiesOnLoan)
	}

	return core.SuccessDecision(core.BuildBookRemovedFromCatalog(bookID, book.ISBN, command.OccurredAt))
}

func fail(command Command, kind error, reason string) core.DecisionResult {
	return core.ErrorDecision(
		core.BuildOperationFailed(failedEventType, command.BookID.String(), reason, command.OccurredAt),
		kind,
	)
}

func BuildEventFilter(bookID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookDetailsUpdatedEventType,
			core.BookRemovedFromCatalogEventType,
			core.BookCopiesResizedEventType,
			core.BookCopyReservedEventType,
			core.BookCopyReleasedEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", bookID.String())).
		Finalize()
}
