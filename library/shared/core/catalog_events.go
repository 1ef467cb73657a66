package core

import (
	"time"
)

const (
	BookAddedToCatalogEventType     = "BookAddedToCatalog"
	BookDetailsUpdatedEventType     = "BookDetailsUpdated"
	BookRemovedFromCatalogEventType = "BookRemovedFromCatalog"
)

// BookDetails are the descriptive fields of a catalog entry.
type BookDetails struct {
	ISBN            ISBNString
	Title           string
	Author          string
	Publisher       string
	PublicationYear uint
	CategoryID      CategoryIDString
}

type BookAddedToCatalog struct {
	BookID BookIDString
	BookDetails
	TotalCopies int
	OccurredAt  OccurredAt
}

func BuildBookAddedToCatalog(bookID BookIDString, details BookDetails, totalCopies int, occurredAt time.Time) BookAddedToCatalog {
	return BookAddedToCatalog{
		BookID:      bookID,
		BookDetails: details,
		TotalCopies: totalCopies,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e BookAddedToCatalog) EventType() string {
	return BookAddedToCatalogEventType
}

func (e BookAddedToCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// BookDetailsUpdated carries the complete details after the update.
type BookDetailsUpdated struct {
	BookID BookIDString
	BookDetails
	PreviousISBN ISBNString
	OccurredAt   OccurredAt
}

func BuildBookDetailsUpdated(bookID BookIDString, details BookDetails, previousISBN ISBNString, occurredAt time.Time) BookDetailsUpdated {
	return BookDetailsUpdated{
		BookID:       bookID,
		BookDetails:  details,
		PreviousISBN: previousISBN,
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

func (e BookDetailsUpdated) EventType() string {
	return BookDetailsUpdatedEventType
}

func (e BookDetailsUpdated) HasOccurredAt() time.Time {
	return e.OccurredAt
}

type BookRemovedFromCatalog struct {
	BookID     BookIDString
	ISBN       ISBNString
	OccurredAt OccurredAt
}

func BuildBookRemovedFromCatalog(bookID BookIDString, isbn ISBNString, occurredAt time.Time) BookRemovedFromCatalog {
	return BookRemovedFromCatalog{
		BookID:     bookID,
		ISBN:       isbn,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e BookRemovedFromCatalog) EventType() string {
	return BookRemovedFromCatalogEventType
}

func (e BookRemovedFromCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}
