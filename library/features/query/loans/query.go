package loans

import (
	"time"

	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const queryType = "ListLoans"

// Query lists loans with the effective status at Now. The zero Status lists all loans.
type Query struct {
	Status core.LoanStatus
	Now    time.Time
}

func BuildQuery(status core.LoanStatus, now time.Time) Query {
	return Query{Status: status, Now: now}
}

func (q Query) QueryType() string {
	return queryType
}
