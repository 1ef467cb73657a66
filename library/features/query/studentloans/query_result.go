package studentloans

import (
	"time"

	"github.com/AntonStoeckl/school-library-go/eventstore"
)

type LoanView struct {
	LoanID      string     `json:"id"`
	BookID      string     `json:"book_id"`
	BookTitle   string     `json:"book_title"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"loan_request_date"`
	ApprovedAt  *time.Time `json:"approved_date,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	ReturnedAt  *time.Time `json:"return_date,omitempty"`
}

type StudentLoans struct {
	StudentID      string                           `json:"student_id"`
	Loans          []LoanView                       `json:"loans"`
	Count          int                              `json:"count"`
	SequenceNumber eventstore.MaxSequenceNumberUint `json:"-"`
}
