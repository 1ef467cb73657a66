package studentloans

import (
	"time"

	"github.com/google/uuid"
)

const queryType = "ListStudentLoans"

type Query struct {
	StudentID uuid.UUID
	Now       time.Time
}

func BuildQuery(studentID uuid.UUID, now time.Time) Query {
	return Query{StudentID: studentID, Now: now}
}

func (q Query) QueryType() string {
	return queryType
}
