package books

import (
	"context"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/shell"
)

type QueryHandler struct {
	eventStore shell.QueriesEvents
}

func NewQueryHandler(eventStore shell.QueriesEvents) QueryHandler {
	return QueryHandler{eventStore: eventStore}
}

// Handle reads with eventual consistency, a slightly stale listing is fine.
func (h QueryHandler) Handle(ctx context.Context, query Query) (Books, error) {
	ctx = eventstore.WithEventualConsistency(ctx)

	history, maxSequence, err := shell.QueryDomainEvents(ctx, h.eventStore, BuildEventFilter())
	if err != nil {
		return Books{}, err
	}

	return Project(history, query, maxSequence), nil
}
