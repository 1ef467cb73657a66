package addbook

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const failedEventType = "AddingBookFailed"

type state struct {
	bookIDUsed     bool
	addedISBN      core.ISBNString
	isbnOwner      core.BookIDString
	categoryExists bool
}

// Decide adds the book unless its ISBN is taken.
//
//	GIVEN: a book id, its details and a copy count
//	WHEN: AddBook is received
//	THEN: BookAddedToCatalog is generated
//	ERROR: InvalidArgument if the ISBN is blank or the copy count is negative
//	ERROR: Conflict if another book holds the ISBN or the book id was used for another ISBN
//	ERROR: NotFound if the category does not exist
//	IDEMPOTENCY: the book id was already used with the same ISBN, nothing is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if command.Details.ISBN == "" {
		return fail(command, core.ErrInvalidArgument, core.ReasonISBNRequired)
	}

	bookID := command.BookID.String()
	s := project(history, bookID, command.Details)

	if s.bookIDUsed {
		if s.addedISBN != command.Details.ISBN {
			return fail(command, core.ErrConflict, core.ReasonBookIDReused)
		}

		return core.IdempotentDecision()
	}

	if command.TotalCopies < 0 {
		return fail(command, core.ErrInvalidArgument, core.ReasonNegativeTotalCopies)
	}

	if s.isbnOwner != "" {
		return fail(command, core.ErrConflict, core.ReasonISBNTaken)
	}

	if command.Details.CategoryID != "" && !s.categoryExists {
		return fail(command, core.ErrNotFound, core.ReasonCategoryNotFound)
	}

	return core.SuccessDecision(
		core.BuildBookAddedToCatalog(bookID, command.Details, command.TotalCopies, command.OccurredAt),
	)
}

func fail(command Command, kind error, reason string) core.DecisionResult {
	return core.ErrorDecision(
		core.BuildOperationFailed(failedEventType, command.BookID.String(), reason, command.OccurredAt),
		kind,
	)
}

func project(history core.DomainEvents, bookID core.BookIDString, details core.BookDetails) state {
	inventory := core.ProjectBookInventory(history, bookID)

	var addedISBN core.ISBNString

	for _, event := range history {
		if e, ok := event.(core.BookAddedToCatalog); ok && e.BookID == bookID {
			addedISBN = e.ISBN
		}
	}

	return state{
		bookIDUsed:     inventory.Exists || inventory.Removed,
		addedISBN:      addedISBN,
		isbnOwner:      core.ISBNOwner(history, details.ISBN),
		categoryExists: details.CategoryID != "" && core.ProjectCategory(history, details.CategoryID).Exists,
	}
}

// BuildEventFilter selects the events of the book, of everything touching the ISBN and of the category.
func BuildEventFilter(bookID uuid.UUID, isbn core.ISBNString, categoryID core.CategoryIDString) eventstore.Filter {
	builder := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookDetailsUpdatedEventType,
			core.BookRemovedFromCatalogEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("BookID", bookID.String()),
			eventstore.P("ISBN", isbn),
			eventstore.P("PreviousISBN", isbn),
		)

	if categoryID == "" {
		return builder.Finalize()
	}

	return builder.
		OrMatching().
		AnyEventTypeOf(
			core.CategoryAddedEventType,
			core.CategoryRemovedEventType,
		).
		AndAnyPredicateOf(eventstore.P("CategoryID", categoryID)).
		Finalize()
}
