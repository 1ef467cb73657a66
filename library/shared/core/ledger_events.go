package core

import (
	"time"
)

const (
	BookCopiesResizedEventType = "BookCopiesResized"
	BookCopyReservedEventType  = "BookCopyReserved"
	BookCopyReleasedEventType  = "BookCopyReleased"
)

type BookCopiesResized struct {
	BookID        BookIDString
	PreviousTotal int
	NewTotal      int
	OccurredAt    OccurredAt
}

func BuildBookCopiesResized(bookID BookIDString, previousTotal int, newTotal int, occurredAt time.Time) BookCopiesResized {
	return BookCopiesResized{
		BookID:        bookID,
		PreviousTotal: previousTotal,
		NewTotal:      newTotal,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

func (e BookCopiesResized) EventType() string {
	return BookCopiesResizedEventType
}

func (e BookCopiesResized) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// BookCopyReserved takes one available copy of a book for a loan.
type BookCopyReserved struct {
	BookID     BookIDString
	LoanID     LoanIDString
	OccurredAt OccurredAt
}

func BuildBookCopyReserved(bookID BookIDString, loanID LoanIDString, occurredAt time.Time) BookCopyReserved {
	return BookCopyReserved{BookID: bookID, LoanID: loanID, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e BookCopyReserved) EventType() string {
	return BookCopyReservedEventType
}

func (e BookCopyReserved) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// BookCopyReleased gives the copy held by a loan back to the shelf.
type BookCopyReleased struct {
	BookID     BookIDString
	LoanID     LoanIDString
	OccurredAt OccurredAt
}

func BuildBookCopyReleased(bookID BookIDString, loanID LoanIDString, occurredAt time.Time) BookCopyReleased {
	return BookCopyReleased{BookID: bookID, LoanID: loanID, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e BookCopyReleased) EventType() string {
	return BookCopyReleasedEventType
}

func (e BookCopyReleased) HasOccurredAt() time.Time {
	return e.OccurredAt
}
