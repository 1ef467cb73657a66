package books

import (
	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

// Project lists the books still in the catalog, in the order they were added.
//
//	INCLUDES: books of query.CategoryID, or all books if it is empty
//	EXCLUDES: removed books
//
// A book whose category was deleted keeps its CategoryID but has no CategoryName.
func Project(history core.DomainEvents, query Query, maxSequence eventstore.MaxSequenceNumberUint) Books {
	categoryNames := make(map[string]string)
	for _, category := range core.ProjectCategories(history) {
		categoryNames[category.CategoryID] = category.Name
	}

	views := make([]BookView, 0)

	for _, book := range core.ProjectCatalog(history) {
		if !book.Exists {
			continue
		}

		if query.CategoryID != "" && book.CategoryID != query.CategoryID {
			continue
		}

		views = append(views, BookView{
			BookID:          book.BookInventory.BookID,
			ISBN:            book.ISBN,
			Title:           book.Title,
			Author:          book.Author,
			Publisher:       book.Publisher,
			PublicationYear: book.PublicationYear,
			CategoryID:      book.CategoryID,
			CategoryName:    categoryNames[book.CategoryID],
			TotalCopies:     book.TotalCopies,
			AvailableCopies: book.AvailableCopies,
			AddedAt:         book.AddedAt,
		})
	}

	return Books{Books: views, Count: len(views), SequenceNumber: maxSequence}
}

func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookDetailsUpdatedEventType,
			core.BookRemovedFromCatalogEventType,
			core.BookCopiesResizedEventType,
			core.BookCopyReservedEventType,
			core.BookCopyReleasedEventType,
			core.CategoryAddedEventType,
			core.CategoryRenamedEventType,
			core.CategoryRemovedEventType,
		).
		Finalize()
}
