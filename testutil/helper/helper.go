// Package helper holds fixtures shared by the feature and gateway tests.
package helper

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/eventstore/memengine"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/library/shared/shell"
)

// GivenUniqueID returns a fresh UUIDv7.
func GivenUniqueID(t testing.TB) uuid.UUID {
	id, err := uuid.NewV7()
	require.NoError(t, err, "error in arranging test data")

	return id
}

// FakeClock is a settable clock, safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock starts at start, or at the Unix epoch if start is zero.
func NewFakeClock(start time.Time) *FakeClock {
	if start.IsZero() {
		start = time.Unix(0, 0)
	}

	return &FakeClock{now: start.UTC()}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

// Advance moves the clock forward by d and returns the new time.
func (c *FakeClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)

	return c.now
}

// GivenEventStoreWith returns a memory engine holding events, appended without any boundary check.
func GivenEventStoreWith(t testing.TB, events ...core.DomainEvent) *memengine.EventStore {
	t.Helper()

	es := memengine.NewEventStore()
	GivenEventsAppended(t, es, events...)

	return es
}

// GivenEventsAppended appends events to es unconditionally.
func GivenEventsAppended(t testing.TB, es shell.EventStore, events ...core.DomainEvent) {
	t.Helper()

	if len(events) == 0 {
		return
	}

	ctx := context.Background()
	all := eventstore.BuildEventFilter().MatchingAnyEvent()

	_, maxSeq, err := es.Query(ctx, all)
	require.NoError(t, err, "error in arranging test data")

	storable, err := shell.StorableEventsFrom(events, func() shell.EventMetadata { return shell.NewEventMetadataFor(ctx) })
	require.NoError(t, err, "error in arranging test data")

	require.NoError(t, es.Append(ctx, all, maxSeq, storable...), "error in arranging test data")
}

// AllDomainEvents reads the whole store back as domain events.
func AllDomainEvents(t testing.TB, es shell.QueriesEvents) core.DomainEvents {
	t.Helper()

	history, _, err := shell.QueryDomainEvents(context.Background(), es, eventstore.BuildEventFilter().MatchingAnyEvent())
	require.NoError(t, err)

	return history
}

// GivenBookAdded is a book with totalCopies copies and default details for isbn.
func GivenBookAdded(bookID, isbn string, totalCopies int, at time.Time) core.BookAddedToCatalog {
	return core.BuildBookAddedToCatalog(
		bookID,
		core.BookDetails{
			ISBN:            isbn,
			Title:           "Learning Domain-Driven Design",
			Author:          "Vlad Khononov",
			Publisher:       "O'Reilly Media, Inc.",
			PublicationYear: 2021,
		},
		totalCopies,
		at,
	)
}

// GivenStudentRegistered is an active student with email.
func GivenStudentRegistered(studentID, email string, at time.Time) core.StudentRegistered {
	return core.BuildStudentRegistered(
		studentID,
		core.StudentProfile{
			Email:        email,
			PersonName:   core.PersonName{FirstName: "Jane", LastName: "Doe"},
			PasswordHash: "hash",
		},
		at,
	)
}

// GivenPendingLoan is a LoanRequested plus the matching reservation.
func GivenPendingLoan(ref core.LoanRef, at time.Time) core.DomainEvents {
	return core.DomainEvents{
		core.BuildLoanRequested(ref, at),
		core.BuildBookCopyReserved(ref.BookID, ref.LoanID, at),
	}
}
