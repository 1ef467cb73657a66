package bookdetails_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/school-library-go/library/features/query/bookdetails"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/testutil/helper"
)

func Test_QueryHandler_Handle(t *testing.T) {
	// arrange
	now := time.Now()
	bookID := helper.GivenUniqueID(t)
	otherBookID := helper.GivenUniqueID(t)
	categoryID := helper.GivenUniqueID(t).String()
	ref := core.LoanRef{LoanID: helper.GivenUniqueID(t).String(), BookID: bookID.String(), StudentID: helper.GivenUniqueID(t).String()}

	book := helper.GivenBookAdded(bookID.String(), "978-0-13-468599-1", 3, now)
	book.CategoryID = categoryID

	es := helper.GivenEventStoreWith(t,
		core.BuildCategoryAdded(categoryID, "Software", now),
		book,
		helper.GivenBookAdded(otherBookID.String(), "978-1-4919-4603-6", 1, now),
	)
	helper.GivenEventsAppended(t, es, helper.GivenPendingLoan(ref, now)...)

	handler := bookdetails.NewQueryHandler(es)

	// act
	result, err := handler.Handle(context.Background(), bookdetails.BuildQuery(bookID))

	// assert
	require.NoError(t, err)
	assert.Equal(t, bookID.String(), result.BookID)
	assert.Equal(t, "Software", result.CategoryName)
	assert.Equal(t, 3, result.TotalCopies)
	assert.Equal(t, 2, result.AvailableCopies)
	assert.Equal(t, 1, result.CopiesOnLoan)
}

func Test_QueryHandler_Handle_NotFound(t *testing.T) {
	// arrange
	now := time.Now()
	removedID := helper.GivenUniqueID(t)
	es := helper.GivenEventStoreWith(t,
		helper.GivenBookAdded(removedID.String(), "978-0-13-468599-1", 1, now),
		core.BuildBookRemovedFromCatalog(removedID.String(), "978-0-13-468599-1", now),
	)
	handler := bookdetails.NewQueryHandler(es)

	for name, query := range map[string]bookdetails.Query{
		"never added": bookdetails.BuildQuery(helper.GivenUniqueID(t)),
		"removed":     bookdetails.BuildQuery(removedID),
	} {
		t.Run(name, func(t *testing.T) {
			// act
			_, err := handler.Handle(context.Background(), query)

			// assert
			assert.ErrorIs(t, err, core.ErrNotFound)
			assert.Equal(t, core.ReasonBookNotFound, core.Reason(err))
		})
	}
}
