package removebook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/school-library-go/library/features/command/removebook"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/testutil/helper"
)

const isbn = "978-0-13-468599-1"

func Test_Decide_Success(t *testing.T) {
	// arrange
	bookID := helper.GivenUniqueID(t)
	now := time.Now()
	loan := core.LoanRef{LoanID: "loan", BookID: bookID.String(), StudentID: "student"}

	history := append(core.DomainEvents{helper.GivenBookAdded(bookID.String(), isbn, 1, now)}, helper.GivenPendingLoan(loan, now)...)
	history = append(history, core.BuildLoanRejected(loan, "admin", now), core.BuildBookCopyReleased(loan.BookID, loan.LoanID, now))

	// act
	result := removebook.Decide(history, removebook.BuildCommand(bookID, now))

	// assert
	events := helper.AssertSuccessDecision(t, result, core.BookRemovedFromCatalogEventType)
	assert.Equal(t, isbn, events[0].(core.BookRemovedFromCatalog).ISBN)
}

func Test_Decide_Errors(t *testing.T) {
	bookID := helper.GivenUniqueID(t)
	now := time.Now()
	loan := core.LoanRef{LoanID: "loan", BookID: bookID.String(), StudentID: "student"}
	added := helper.GivenBookAdded(bookID.String(), isbn, 1, now)

	testCases := []struct {
		name           string
		history        core.DomainEvents
		expectedKind   error
		expectedReason string
	}{
		{
			name:           "unknown book",
			expectedKind:   core.ErrNotFound,
			expectedReason: core.ReasonBookNotFound,
		},
		{
			name:           "already removed",
			history:        core.DomainEvents{added, core.BuildBookRemovedFromCatalog(bookID.String(), isbn, now)},
			expectedKind:   core.ErrNotFound,
			expectedReason: core.ReasonBookNotFound,
		},
		{
			name:           "copy reserved by a pending loan",
			history:        append(core.DomainEvents{added}, helper.GivenPendingLoan(loan, now)...),
			expectedKind:   core.ErrInvalidState,
			expectedReason: core.ReasonBookHasCopiesOnLoan,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := removebook.Decide(tc.history, removebook.BuildCommand(bookID, now))

			// assert
			helper.AssertErrorDecision(t, result, "RemovingBookFailed", tc.expectedKind, tc.expectedReason)
		})
	}
}
