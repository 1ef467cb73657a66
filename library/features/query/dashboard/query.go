package dashboard

import (
	"time"
)

const queryType = "ShowDashboard"

// Query counts loans by their effective status at Now.
type Query struct {
	Now time.Time
}

func BuildQuery(now time.Time) Query {
	return Query{Now: now}
}

func (q Query) QueryType() string {
	return queryType
}
