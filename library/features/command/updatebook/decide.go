package updatebook

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const failedEventType = "UpdatingBookFailed"

// Decide applies the changes to an existing book.
//
//	GIVEN: an existing book
//	WHEN: UpdateBook is received
//	THEN: BookDetailsUpdated if any detail changed, BookCopiesResized if the total changed
//	ERROR: NotFound if the book or the new category does not exist
//	ERROR: Conflict if another book holds the new ISBN
//	ERROR: InvalidArgument if the new ISBN is blank, or the new total is negative or below the copies on loan
//	IDEMPOTENCY: nothing changes, nothing is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	bookID := command.BookID.String()
	book := core.ProjectBook(history, bookID)

	if !book.Exists {
		return fail(command, core.Violate(core.ErrNotFound, core.ReasonBookNotFound))
	}

	details := command.Changes.ApplyTo(book.BookDetails)

	if details.ISBN == "" {
		return fail(command, core.Violate(core.ErrInvalidArgument, core.ReasonISBNRequired))
	}

	if details.ISBN != book.ISBN {
		if owner := core.ISBNOwner(history, details.ISBN); owner != "" && owner != bookID {
			return fail(command, core.Violate(core.ErrConflict, core.ReasonISBNTaken))
		}
	}

	if details.CategoryID != book.CategoryID && details.CategoryID != "" {
		if !core.ProjectCategory(history, details.CategoryID).Exists {
			return fail(command, core.Violate(core.ErrNotFound, core.ReasonCategoryNotFound))
		}
	}

	var events core.DomainEvents

	if command.Changes.TotalCopies != nil && *command.Changes.TotalCopies != book.TotalCopies {
		resized, err := book.Resize(*command.Changes.TotalCopies)
		if err != nil {
			return fail(command, err)
		}

		events = append(events, core.BuildBookCopiesResized(bookID, book.TotalCopies, resized.TotalCopies, command.OccurredAt))
	}

	if details != book.BookDetails {
		events = append(events, core.BuildBookDetailsUpdated(bookID, details, book.ISBN, command.OccurredAt))
	}

	if len(events) == 0 {
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(events[0], events[1:]...)
}

func fail(command Command, err error) core.DecisionResult {
	return core.ErrorDecisionFrom(failedEventType, command.BookID.String(), err, command.OccurredAt)
}

// BuildEventFilter selects the book's catalog and ledger events, and when they change, the new ISBN and category.
func BuildEventFilter(bookID uuid.UUID, changes Changes) eventstore.Filter {
	builder := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookDetailsUpdatedEventType,
			core.BookRemovedFromCatalogEventType,
			core.BookCopiesResizedEventType,
			core.BookCopyReservedEventType,
			core.BookCopyReleasedEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", bookID.String()))

	if isbn := deref(changes.ISBN); isbn != "" {
		builder = builder.
			OrMatching().
			AnyEventTypeOf(
				core.BookAddedToCatalogEventType,
				core.BookDetailsUpdatedEventType,
				core.BookRemovedFromCatalogEventType,
			).
			AndAnyPredicateOf(
				eventstore.P("ISBN", isbn),
				eventstore.P("PreviousISBN", isbn),
			)
	}

	if categoryID := deref(changes.CategoryID); categoryID != "" {
		builder = builder.
			OrMatching().
			AnyEventTypeOf(
				core.CategoryAddedEventType,
				core.CategoryRemovedEventType,
			).
			AndAnyPredicateOf(eventstore.P("CategoryID", categoryID))
	}

	return builder.Finalize()
}
