package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const bookID = "0199a1b2-0000-7000-8000-000000000001"

func givenBookWithCopies(total int, at time.Time) core.DomainEvent {
	return core.BuildBookAddedToCatalog(bookID, core.BookDetails{ISBN: "978-0-13-468599-1", Title: "The Go Programming Language"}, total, at)
}

func Test_ProjectBookInventory(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name              string
		history           core.DomainEvents
		expectedExists    bool
		expectedTotal     int
		expectedAvailable int
	}{
		{
			name:    "unknown book",
			history: core.DomainEvents{},
		},
		{
			name:              "added book",
			history:           core.DomainEvents{givenBookWithCopies(3, now)},
			expectedExists:    true,
			expectedTotal:     3,
			expectedAvailable: 3,
		},
		{
			name: "reserved and released",
			history: core.DomainEvents{
				givenBookWithCopies(3, now),
				core.BuildBookCopyReserved(bookID, "loan-1", now),
				core.BuildBookCopyReserved(bookID, "loan-2", now),
				core.BuildBookCopyReleased(bookID, "loan-1", now),
			},
			expectedExists:    true,
			expectedTotal:     3,
			expectedAvailable: 2,
		},
		{
			name: "resized with a copy on loan",
			history: core.DomainEvents{
				givenBookWithCopies(3, now),
				core.BuildBookCopyReserved(bookID, "loan-1", now),
				core.BuildBookCopiesResized(bookID, 3, 5, now),
			},
			expectedExists:    true,
			expectedTotal:     5,
			expectedAvailable: 4,
		},
		{
			name: "events of other books are ignored",
			history: core.DomainEvents{
				givenBookWithCopies(1, now),
				core.BuildBookCopyReserved("other-book", "loan-1", now),
			},
			expectedExists:    true,
			expectedTotal:     1,
			expectedAvailable: 1,
		},
		{
			name: "removed book",
			history: core.DomainEvents{
				givenBookWithCopies(1, now),
				core.BuildBookRemovedFromCatalog(bookID, "978-0-13-468599-1", now),
			},
			expectedTotal:     1,
			expectedAvailable: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			inv := core.ProjectBookInventory(tc.history, bookID)

			// assert
			assert.Equal(t, tc.expectedExists, inv.Exists)
			assert.Equal(t, tc.expectedTotal, inv.TotalCopies)
			assert.Equal(t, tc.expectedAvailable, inv.AvailableCopies)
			assert.True(t, inv.Valid())
		})
	}
}

func Test_BookInventory_ReserveCopy(t *testing.T) {
	testCases := []struct {
		name              string
		inventory         core.BookInventory
		expectedKind      error
		expectedAvailable int
	}{
		{
			name:         "missing book",
			inventory:    core.BookInventory{BookID: bookID},
			expectedKind: core.ErrNotFound,
		},
		{
			name:              "no copy left",
			inventory:         core.BookInventory{BookID: bookID, Exists: true, TotalCopies: 1, AvailableCopies: 0},
			expectedKind:      core.ErrUnavailable,
			expectedAvailable: 0,
		},
		{
			name:              "copy available",
			inventory:         core.BookInventory{BookID: bookID, Exists: true, TotalCopies: 2, AvailableCopies: 2},
			expectedAvailable: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			inv, err := tc.inventory.ReserveCopy()

			// assert
			if tc.expectedKind != nil {
				require.ErrorIs(t, err, tc.expectedKind)
				assert.Equal(t, tc.inventory, inv, "a failed reservation must not change the counters")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedAvailable, inv.AvailableCopies)
		})
	}
}

func Test_BookInventory_ReleaseCopy(t *testing.T) {
	// arrange
	full := core.BookInventory{BookID: bookID, Exists: true, TotalCopies: 1, AvailableCopies: 1}
	lent := core.BookInventory{BookID: bookID, Exists: true, TotalCopies: 1, AvailableCopies: 0}
	removed := core.BookInventory{BookID: bookID, Removed: true, TotalCopies: 1, AvailableCopies: 0}

	// act
	_, errFull := full.ReleaseCopy()
	released, errLent := lent.ReleaseCopy()
	releasedRemoved, errRemoved := removed.ReleaseCopy()
	_, errMissing := core.BookInventory{BookID: bookID}.ReleaseCopy()

	// assert
	require.ErrorIs(t, errFull, core.ErrInvariantViolation)
	assert.Equal(t, core.ReasonReleaseExceedsTotal, core.Reason(errFull))
	require.NoError(t, errLent)
	assert.Equal(t, 1, released.AvailableCopies)
	require.NoError(t, errRemoved)
	assert.Equal(t, 1, releasedRemoved.AvailableCopies)
	require.ErrorIs(t, errMissing, core.ErrNotFound)
}

func Test_BookInventory_Resize(t *testing.T) {
	// 3 total, 1 available: 2 on loan
	inventory := core.BookInventory{BookID: bookID, Exists: true, TotalCopies: 3, AvailableCopies: 1}

	testCases := []struct {
		name              string
		newTotal          int
		expectedKind      error
		expectedReason    string
		expectedAvailable int
	}{
		{name: "grow", newTotal: 5, expectedAvailable: 3},
		{name: "shrink to on-loan count", newTotal: 2, expectedAvailable: 0},
		{name: "shrink below on-loan count", newTotal: 1, expectedKind: core.ErrInvalidArgument, expectedReason: core.ReasonResizeBelowOnLoan},
		{name: "negative", newTotal: -1, expectedKind: core.ErrInvalidArgument, expectedReason: core.ReasonNegativeTotalCopies},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			inv, err := inventory.Resize(tc.newTotal)

			// assert
			if tc.expectedKind != nil {
				require.ErrorIs(t, err, tc.expectedKind)
				assert.Equal(t, tc.expectedReason, core.Reason(err))
				assert.Equal(t, inventory, inv)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.newTotal, inv.TotalCopies)
			assert.Equal(t, tc.expectedAvailable, inv.AvailableCopies)
			assert.Equal(t, 2, inv.CopiesOnLoan())
		})
	}
}
