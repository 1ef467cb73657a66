package shell

import (
	"context"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

// DecideFunc is the pure part of a command: history in, decision out.
type DecideFunc func(history core.DomainEvents) core.DecisionResult

// QueryDomainEvents queries filter and maps the result to domain events.
func QueryDomainEvents(
	ctx context.Context,
	eventStore QueriesEvents,
	filter eventstore.Filter,
) (core.DomainEvents, eventstore.MaxSequenceNumberUint, error) {

	storableEvents, maxSequenceNumber, err := eventStore.Query(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	history, err := DomainEventsFrom(storableEvents)
	if err != nil {
		return nil, 0, err
	}

	return history, maxSequenceNumber, nil
}

// ExecuteCommand runs one Query -> Decide -> Append cycle against the boundary described by filter.
//
// The append only succeeds if no event matching filter was appended since the query, otherwise
// eventstore.ErrConcurrencyConflict is returned and the cycle can be retried. For an error decision the
// failure event is appended and the decision error is returned.
func ExecuteCommand(
	ctx context.Context,
	eventStore EventStore,
	filter eventstore.Filter,
	decide DecideFunc,
) (core.DecisionResult, error) {

	ctx = eventstore.WithStrongConsistency(ctx)

	history, maxSequenceNumber, err := QueryDomainEvents(ctx, eventStore, filter)
	if err != nil {
		return core.DecisionResult{}, err
	}

	result := decide(history)

	if !result.HasEventToAppend() {
		return result, nil
	}

	storableEvents, err := StorableEventsFrom(result.Events, func() EventMetadata { return NewEventMetadataFor(ctx) })
	if err != nil {
		return core.DecisionResult{}, err
	}

	if err = eventStore.Append(ctx, filter, maxSequenceNumber, storableEvents...); err != nil {
		return core.DecisionResult{}, err
	}

	return result, result.HasError()
}
