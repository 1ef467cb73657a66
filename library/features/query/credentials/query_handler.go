package credentials

import (
	"context"

	"github.com/AntonStoeckl/school-library-go/library/shared/shell"
)

type QueryHandler struct {
	eventStore shell.QueriesEvents
}

func NewQueryHandler(eventStore shell.QueriesEvents) QueryHandler {
	return QueryHandler{eventStore: eventStore}
}

// Handle inherits the consistency level of ctx. Login right after registration needs strong consistency.
func (h QueryHandler) Handle(ctx context.Context, query Query) (Credentials, error) {
	history, _, err := shell.QueryDomainEvents(ctx, h.eventStore, BuildEventFilter(query))
	if err != nil {
		return Credentials{}, err
	}

	return Project(history, query)
}
