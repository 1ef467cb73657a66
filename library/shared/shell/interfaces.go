package shell

import (
	"context"

	"github.com/AntonStoeckl/school-library-go/eventstore"
)

// QueriesEvents is what query handlers need from the event store.
type QueriesEvents interface {
	Query(ctx context.Context, filter eventstore.Filter) (
		eventstore.StorableEvents,
		eventstore.MaxSequenceNumberUint,
		error,
	)
}

// EventStore is what command handlers need from the event store.
// All engines (postgres, sqlite, memory) satisfy it.
type EventStore interface {
	QueriesEvents
	Append(
		ctx context.Context,
		filter eventstore.Filter,
		expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
		storableEvents ...eventstore.StorableEvent,
	) error
}

// Command is implemented by every command. CommandType must work on the zero value.
type Command interface {
	CommandType() string
}

// CoreCommandHandler is a command handler without observability.
type CoreCommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// Query is implemented by every query. QueryType must work on the zero value.
type Query interface {
	QueryType() string
}

// CoreQueryHandler is a query handler without observability.
type CoreQueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
