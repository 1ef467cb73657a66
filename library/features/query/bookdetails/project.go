package bookdetails

import (
	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

// Project returns the book or a NotFound error if it was never added or was removed.
func Project(history core.DomainEvents, query Query) (Book, error) {
	bookID := query.BookID.String()
	book := core.ProjectBook(history, bookID)

	if !book.Exists {
		return Book{}, core.Violate(core.ErrNotFound, core.ReasonBookNotFound)
	}

	var categoryName string
	if book.CategoryID != "" {
		if category := core.ProjectCategory(history, book.CategoryID); category.Exists {
			categoryName = category.Name
		}
	}

	return Book{
		BookID:          bookID,
		ISBN:            book.ISBN,
		Title:           book.Title,
		Author:          book.Author,
		Publisher:       book.Publisher,
		PublicationYear: book.PublicationYear,
		CategoryID:      book.CategoryID,
		CategoryName:    categoryName,
		TotalCopies:     book.TotalCopies,
		AvailableCopies: book.AvailableCopies,
		CopiesOnLoan:    book.CopiesOnLoan(),
		AddedAt:         book.AddedAt,
	}, nil
}

// BuildEventFilter selects the book and all category events, the category id is only known after projecting.
func BuildEventFilter(query Query) eventstore.Filter {
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
		AndAnyPredicateOf(eventstore.P("BookID", query.BookID.String())).
		OrMatching().
		AnyEventTypeOf(
			core.CategoryAddedEventType,
			core.CategoryRenamedEventType,
			core.CategoryRemovedEventType,
		).
		Finalize()
}
