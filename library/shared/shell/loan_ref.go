package shell

import (
	"context"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

// LoanRefOf looks up the book and student a loan links. The zero LoanRef is returned for unknown loans.
//
// Commands that release a copy need the book id before they can build their boundary. The link never
// changes once the loan was requested, so it can be read outside the boundary.
func LoanRefOf(ctx context.Context, eventStore QueriesEvents, loanID core.LoanIDString) (core.LoanRef, error) {
	filter := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.LoanRequestedEventType).
		AndAnyPredicateOf(eventstore.P("LoanID", loanID)).
		Finalize()

	history, _, err := QueryDomainEvents(eventstore.WithStrongConsistency(ctx), eventStore, filter)
	if err != nil {
		return core.LoanRef{}, err
	}

	for _, event := range history {
		if e, ok := event.(core.LoanRequested); ok {
			return e.LoanRef, nil
		}
	}

	return core.LoanRef{}, nil
}
