package core

const (
	ReasonBookNotFound        = "book not found"
	ReasonNoCopiesAvailable   = "no copies available"
	ReasonReleaseExceedsTotal = "release would exceed total copies"
	ReasonResizeBelowOnLoan   = "Total copies cannot be less than the number of copies currently loaned out!"
	ReasonNegativeTotalCopies = "total copies must not be negative"
)

// BookInventory holds the copy counters of one book.
// The zero value is a book that does not exist.
type BookInventory struct {
	BookID          BookIDString
	Exists          bool
	Removed         bool
	TotalCopies     int
	AvailableCopies int
}

// ProjectBookInventory folds the catalog and ledger events of bookID into its inventory.
// Events of other books are ignored, so the history may be a wider boundary.
func ProjectBookInventory(history DomainEvents, bookID BookIDString) BookInventory {
	inv := BookInventory{BookID: bookID}

	for _, event := range history {
		switch e := event.(type) {
		case BookAddedToCatalog:
			if e.BookID == bookID {
				inv.Exists = true
				inv.Removed = false
				inv.TotalCopies = e.TotalCopies
				inv.AvailableCopies = e.TotalCopies
			}

		case BookRemovedFromCatalog:
			if e.BookID == bookID {
				inv.Exists = false
				inv.Removed = true
			}

		case BookCopiesResized:
			if e.BookID == bookID {
				inv.AvailableCopies += e.NewTotal - inv.TotalCopies
				inv.TotalCopies = e.NewTotal
			}

		case BookCopyReserved:
			if e.BookID == bookID {
				inv.AvailableCopies--
			}

		case BookCopyReleased:
			if e.BookID == bookID {
				inv.AvailableCopies++
			}
		}
	}

	return inv
}

// CopiesOnLoan is the number of copies held by pending, approved or borrowed loans.
func (inv BookInventory) CopiesOnLoan() int {
	return inv.TotalCopies - inv.AvailableCopies
}

// Valid reports whether 0 <= available <= total holds.
func (inv BookInventory) Valid() bool {
	return inv.AvailableCopies >= 0 && inv.AvailableCopies <= inv.TotalCopies
}

// ReserveCopy takes one available copy.
func (inv BookInventory) ReserveCopy() (BookInventory, error) {
	if !inv.Exists {
		return inv, Violate(ErrNotFound, ReasonBookNotFound)
	}

	if inv.AvailableCopies <= 0 {
		return inv, Violate(ErrUnavailable, ReasonNoCopiesAvailable)
	}

	inv.AvailableCopies--

	return inv, nil
}

// ReleaseCopy gives one copy back. Releasing into a full shelf means the history is broken.
// A removed book can still take its copies back, so returns of old loans don't fail.
func (inv BookInventory) ReleaseCopy() (BookInventory, error) {
	if !inv.Exists && !inv.Removed {
		return inv, Violate(ErrNotFound, ReasonBookNotFound)
	}

	if inv.AvailableCopies >= inv.TotalCopies {
		return inv, Violate(ErrInvariantViolation, ReasonReleaseExceedsTotal)
	}

	inv.AvailableCopies++

	return inv, nil
}

// Resize sets a new total and moves the available count by the same delta.
func (inv BookInventory) Resize(newTotal int) (BookInventory, error) {
	if !inv.Exists {
		return inv, Violate(ErrNotFound, ReasonBookNotFound)
	}

	if newTotal < 0 {
		return inv, Violate(ErrInvalidArgument, ReasonNegativeTotalCopies)
	}

	if newTotal < inv.CopiesOnLoan() {
		return inv, Violate(ErrInvalidArgument, ReasonResizeBelowOnLoan)
	}

	inv.AvailableCopies += newTotal - inv.TotalCopies
	inv.TotalCopies = newTotal

	return inv, nil
}
