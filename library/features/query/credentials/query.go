package credentials

import (
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const queryType = "FindCredentials"

type AccountKind string

const (
	AccountStudent AccountKind = "student"
	AccountAdmin   AccountKind = "admin"
)

type Query struct {
	Kind  AccountKind
	Email string
}

// BuildQuery normalizes email the way registration stores it.
func BuildQuery(kind AccountKind, email string) Query {
	return Query{Kind: kind, Email: core.NormalizeEmail(email)}
}

func (q Query) QueryType() string {
	return queryType
}
