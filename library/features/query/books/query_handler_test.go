package books_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/school-library-go/library/features/query/books"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/testutil/helper"
)

func Test_QueryHandler_Handle(t *testing.T) {
	// arrange
	now := time.Now()
	scienceID := helper.GivenUniqueID(t).String()
	firstBookID := helper.GivenUniqueID(t).String()
	secondBookID := helper.GivenUniqueID(t).String()
	removedBookID := helper.GivenUniqueID(t).String()
	loanRef := core.LoanRef{LoanID: helper.GivenUniqueID(t).String(), BookID: firstBookID, StudentID: helper.GivenUniqueID(t).String()}

	science := helper.GivenBookAdded(secondBookID, "978-1-4919-4603-6", 2, now)
	science.CategoryID = scienceID

	es := helper.GivenEventStoreWith(t,
		core.BuildCategoryAdded(scienceID, "Science", now),
		helper.GivenBookAdded(firstBookID, "978-0-13-468599-1", 3, now),
		science,
		helper.GivenBookAdded(removedBookID, "978-1-7185-0071-6", 1, now),
		core.BuildBookRemovedFromCatalog(removedBookID, "978-1-7185-0071-6", now),
		core.BuildLoanRequested(loanRef, now),
		core.BuildBookCopyReserved(firstBookID, loanRef.LoanID, now),
	)

	handler := books.NewQueryHandler(es)

	t.Run("all books", func(t *testing.T) {
		// act
		result, err := handler.Handle(context.Background(), books.BuildQuery(""))

		// assert
		require.NoError(t, err)
		require.Equal(t, 2, result.Count)
		assert.Equal(t, firstBookID, result.Books[0].BookID)
		assert.Equal(t, 2, result.Books[0].AvailableCopies)
		assert.Equal(t, "Science", result.Books[1].CategoryName)
		assert.Equal(t, uint(7), result.SequenceNumber)
	})

	t.Run("one category", func(t *testing.T) {
		// act
		result, err := handler.Handle(context.Background(), books.BuildQuery(scienceID))

		// assert
		require.NoError(t, err)
		require.Len(t, result.Books, 1)
		assert.Equal(t, secondBookID, result.Books[0].BookID)
	})
}

func Test_Project_DeletedCategoryHasNoName(t *testing.T) {
	// arrange
	now := time.Now()
	categoryID := helper.GivenUniqueID(t).String()
	book := helper.GivenBookAdded(helper.GivenUniqueID(t).String(), "978-0-13-468599-1", 1, now)
	book.CategoryID = categoryID
	history := core.DomainEvents{
		core.BuildCategoryAdded(categoryID, "Science", now),
		book,
		core.BuildCategoryRemoved(categoryID, "Science", now),
	}

	// act
	result := books.Project(history, books.BuildQuery(""), 3)

	// assert
	require.Len(t, result.Books, 1)
	assert.Equal(t, categoryID, result.Books[0].CategoryID)
	assert.Empty(t, result.Books[0].CategoryName)
}
