// Package eventstoretest holds the behaviour every engine must show, so each engine runs the same suite.
package eventstoretest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/school-library-go/eventstore"
)

const (
	eventTypeCopyAdded   = "CopyAdded"
	eventTypeCopyLoaned  = "CopyLoaned"
	eventTypeUnrelated   = "SomethingElse"
	concurrentAppenders  = 8
	conflictFreeAppender = 1
)

// EventStore is what the suite needs from an engine.
type EventStore interface {
	Query(ctx context.Context, filter eventstore.Filter) (eventstore.StorableEvents, eventstore.MaxSequenceNumberUint, error)
	Append(ctx context.Context, filter eventstore.Filter, expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint, events ...eventstore.StorableEvent) error
}

// Run executes the suite. newStore must return an empty store for every call.
//
//nolint:funlen
func Run(t *testing.T, newStore func(t *testing.T) EventStore) {
	t.Run("query_on_empty_stream_returns_nothing", func(t *testing.T) {
		// arrange
		es := newStore(t)

		// act
		events, maxSeq, err := es.Query(context.Background(), bookFilter(uuid.NewString()))

		// assert
		require.NoError(t, err)
		assert.Empty(t, events)
		assert.Equal(t, eventstore.MaxSequenceNumberUint(0), maxSeq)
	})

	t.Run("appended_events_are_queried_in_order", func(t *testing.T) {
		// arrange
		ctx := context.Background()
		es := newStore(t)
		bookID := uuid.NewString()
		filter := bookFilter(bookID)

		// act
		require.NoError(t, es.Append(ctx, filter, 0, event(t, eventTypeCopyAdded, bookID, "s1")))
		require.NoError(t, es.Append(ctx, filter, 1, event(t, eventTypeCopyLoaned, bookID, "s1")))
		events, maxSeq, err := es.Query(ctx, filter)

		// assert
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, eventTypeCopyAdded, events[0].EventType)
		assert.Equal(t, eventTypeCopyLoaned, events[1].EventType)
		assert.Equal(t, eventstore.MaxSequenceNumberUint(2), maxSeq)
		assert.JSONEq(t, string(payload(bookID, "s1")), string(events[0].PayloadJSON))
		assert.WithinDuration(t, fixedTime(), events[0].OccurredAt, time.Second)
	})

	t.Run("stale_sequence_number_is_a_conflict_and_stores_nothing", func(t *testing.T) {
		// arrange
		ctx := context.Background()
		es := newStore(t)
		bookID := uuid.NewString()
		filter := bookFilter(bookID)
		require.NoError(t, es.Append(ctx, filter, 0, event(t, eventTypeCopyAdded, bookID, "s1")))

		// act
		err := es.Append(ctx, filter, 0, event(t, eventTypeCopyLoaned, bookID, "s1"), event(t, eventTypeCopyLoaned, bookID, "s2"))

		// assert
		assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)
		events, _, queryErr := es.Query(ctx, filter)
		require.NoError(t, queryErr)
		assert.Len(t, events, 1, "Should not store any event of a conflicting append")
	})

	t.Run("appends_to_disjoint_streams_do_not_conflict", func(t *testing.T) {
		// arrange
		ctx := context.Background()
		es := newStore(t)
		firstBook, secondBook := uuid.NewString(), uuid.NewString()
		require.NoError(t, es.Append(ctx, bookFilter(firstBook), 0, event(t, eventTypeCopyAdded, firstBook, "s1")))

		// act
		err := es.Append(ctx, bookFilter(secondBook), 0, event(t, eventTypeCopyAdded, secondBook, "s1"))

		// assert
		assert.NoError(t, err)
		_, maxSeq, queryErr := es.Query(ctx, bookFilter(secondBook))
		require.NoError(t, queryErr)
		assert.Equal(t, eventstore.MaxSequenceNumberUint(2), maxSeq, "Sequence numbers should be global")
	})

	t.Run("multiple_events_are_appended_atomically", func(t *testing.T) {
		// arrange
		ctx := context.Background()
		es := newStore(t)
		bookID := uuid.NewString()

		// act
		err := es.Append(ctx, bookFilter(bookID), 0,
			event(t, eventTypeCopyAdded, bookID, "s1"),
			event(t, eventTypeCopyLoaned, bookID, "s1"),
		)

		// assert
		require.NoError(t, err)
		events, maxSeq, queryErr := es.Query(ctx, bookFilter(bookID))
		require.NoError(t, queryErr)
		assert.Len(t, events, 2)
		assert.Equal(t, eventstore.MaxSequenceNumberUint(2), maxSeq)
	})

	t.Run("no_events_is_an_error", func(t *testing.T) {
		// arrange
		es := newStore(t)

		// act
		err := es.Append(context.Background(), bookFilter(uuid.NewString()), 0)

		// assert
		assert.ErrorIs(t, err, eventstore.ErrNoEventsToAppend)
	})

	t.Run("predicates_and_event_types_narrow_the_stream", func(t *testing.T) {
		// arrange
		ctx := context.Background()
		es := newStore(t)
		bookID := uuid.NewString()
		all := eventstore.BuildEventFilter().MatchingAnyEvent()
		require.NoError(t, es.Append(ctx, all, 0,
			event(t, eventTypeCopyAdded, bookID, "s1"),
			event(t, eventTypeCopyLoaned, bookID, "s1"),
			event(t, eventTypeCopyLoaned, bookID, "s2"),
			event(t, eventTypeUnrelated, bookID, "s1"),
		))

		tests := []struct {
			name   string
			filter eventstore.Filter
			want   int
		}{
			{name: "any_event", filter: all, want: 4},
			{name: "event_types_only", filter: eventstore.BuildEventFilter().
				Matching().AnyEventTypeOf(eventTypeCopyLoaned).Finalize(), want: 2},
			{name: "all_predicates", filter: eventstore.BuildEventFilter().
				Matching().AllPredicatesOf(eventstore.P("BookID", bookID), eventstore.P("StudentID", "s2")).Finalize(), want: 1},
			{name: "any_predicate", filter: eventstore.BuildEventFilter().
				Matching().AnyPredicateOf(eventstore.P("StudentID", "s2"), eventstore.P("StudentID", "nobody")).Finalize(), want: 1},
			{name: "types_and_predicates", filter: eventstore.BuildEventFilter().
				Matching().AnyEventTypeOf(eventTypeCopyAdded, eventTypeCopyLoaned).
				AndAnyPredicateOf(eventstore.P("StudentID", "s1")).Finalize(), want: 2},
			{name: "or_matching", filter: eventstore.BuildEventFilter().
				Matching().AnyEventTypeOf(eventTypeCopyAdded).
				OrMatching().AnyEventTypeOf(eventTypeUnrelated).Finalize(), want: 2},
			{name: "unknown_value", filter: bookFilter(uuid.NewString()), want: 0},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				// act
				events, _, err := es.Query(ctx, tc.filter)

				// assert
				require.NoError(t, err)
				assert.Len(t, events, tc.want)
			})
		}
	})

	t.Run("concurrent_appends_with_same_expectation_let_exactly_one_win", func(t *testing.T) {
		// arrange
		ctx := context.Background()
		es := newStore(t)
		bookID := uuid.NewString()
		filter := bookFilter(bookID)

		var wg sync.WaitGroup
		var mu sync.Mutex
		succeeded, conflicted := 0, 0

		// act
		for i := 0; i < concurrentAppenders; i++ {
			wg.Add(1)

			go func() {
				defer wg.Done()

				err := es.Append(ctx, filter, 0, event(t, eventTypeCopyAdded, bookID, "s1"))

				mu.Lock()
				defer mu.Unlock()

				switch {
				case err == nil:
					succeeded++
				case assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict):
					conflicted++
				}
			}()
		}

		wg.Wait()

		// assert
		assert.Equal(t, conflictFreeAppender, succeeded)
		assert.Equal(t, concurrentAppenders-conflictFreeAppender, conflicted)
	})

	t.Run("canceled_context_fails", func(t *testing.T) {
		// arrange
		es := newStore(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// act
		_, _, err := es.Query(ctx, bookFilter(uuid.NewString()))

		// assert
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func bookFilter(bookID string) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(eventTypeCopyAdded, eventTypeCopyLoaned).
		AndAnyPredicateOf(eventstore.P("BookID", bookID)).
		Finalize()
}

func payload(bookID, studentID string) []byte {
	return []byte(`{"BookID":"` + bookID + `","StudentID":"` + studentID + `"}`)
}

func fixedTime() time.Time {
	return time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
}

func event(t *testing.T, eventType, bookID, studentID string) eventstore.StorableEvent {
	e, err := eventstore.BuildStorableEventWithEmptyMetadata(eventType, fixedTime(), payload(bookID, studentID))
	require.NoError(t, err, "error in arranging test data")

	return e
}
