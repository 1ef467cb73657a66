package eventstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/school-library-go/eventstore"
)

//nolint:funlen
func Test_FilterBuilder_ValidCombinations(t *testing.T) {
	tests := []struct {
		name     string
		build    func() eventstore.Filter
		validate func(t *testing.T, filter eventstore.Filter)
	}{
		{
			name: "matching_any_event_creates_empty_filter",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().MatchingAnyEvent()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.True(t, f.IsEmpty())
				assert.Equal(t, "*", f.String())
			},
		},
		{
			name: "event_types_are_sorted_and_deduplicated",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyEventTypeOf("LoanRequested", "BookCopyReserved", "LoanRequested", "").
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				require.Len(t, f.Items(), 1)
				assert.Equal(t, []string{"BookCopyReserved", "LoanRequested"}, f.Items()[0].EventTypes())
				assert.Empty(t, f.Items()[0].Predicates())
			},
		},
		{
			name: "partial_predicates_are_dropped",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyPredicateOf(eventstore.P("BookID", "b1"), eventstore.P("", "x"), eventstore.P("StudentID", "")).
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				require.Len(t, f.Items(), 1)
				assert.Equal(t, []eventstore.FilterPredicate{eventstore.P("BookID", "b1")}, f.Items()[0].Predicates())
				assert.False(t, f.Items()[0].AllPredicatesMustMatch())
			},
		},
		{
			name: "all_predicates_of_sets_the_and_flag",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AllPredicatesOf(eventstore.P("StudentID", "s1"), eventstore.P("BookID", "b1")).
					AndAnyEventTypeOf("LoanRequested").
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				require.Len(t, f.Items(), 1)
				item := f.Items()[0]
				assert.True(t, item.AllPredicatesMustMatch())
				assert.Equal(t, "BookID", item.Predicates()[0].Key(), "Predicates should be sorted by key")
				assert.Equal(t, "(LoanRequested ; BookID=b1&StudentID=s1)", item.String())
			},
		},
		{
			name: "or_matching_adds_items",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyEventTypeOf("BookAddedToCatalog").
					AndAnyPredicateOf(eventstore.P("BookID", "b1")).
					OrMatching().
					AnyEventTypeOf("StudentRegistered").
					AndAnyPredicateOf(eventstore.P("StudentID", "s1"), eventstore.P("Email", "a@b.c")).
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				require.Len(t, f.Items(), 2)
				assert.Equal(t, "(BookAddedToCatalog ; BookID=b1) OR (StudentRegistered ; Email=a@b.c|StudentID=s1)", f.String())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.validate(t, tc.build())
		})
	}
}

func Test_FilterBuilder_IsImmutable(t *testing.T) {
	// arrange
	base := eventstore.BuildEventFilter().Matching().AnyEventTypeOf("A")

	// act
	first := base.AndAnyPredicateOf(eventstore.P("k", "1")).Finalize()
	second := base.AndAnyPredicateOf(eventstore.P("k", "2")).Finalize()

	// assert
	assert.Equal(t, "1", first.Items()[0].Predicates()[0].Val())
	assert.Equal(t, "2", second.Items()[0].Predicates()[0].Val())
	assert.Len(t, first.Items()[0].Predicates(), 1, "Branching a builder should not leak predicates")
}
