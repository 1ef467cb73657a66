package dashboard

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

func (h QueryHandler) Handle(ctx context.Context, query Query) (Dashboard, error) {
	ctx = eventstore.WithEventualConsistency(ctx)

	history, maxSequence, err := shell.QueryDomainEvents(ctx, h.eventStore, BuildEventFilter())
	if err != nil {
		return Dashboard{}, err
	}

	return Project(history, query, maxSequence), nil
}
