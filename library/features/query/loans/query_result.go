package loans

import (
	"time"

	"github.com/AntonStoeckl/school-library-go/eventstore"
)

type LoanView struct {
	LoanID      string     `json:"id"`
	BookID      string     `json:"book_id"`
	BookTitle   string     `json:"book_title"`
	StudentID   string     `json:"student_id"`
	StudentName string     `json:"student_name"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"loan_request_date"`
	ApprovedAt  *time.Time `json:"approved_date,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	ReturnedAt  *time.Time `json:"return_date,omitempty"`
	AdminID     string     `json:"admin_id,omitempty"`
}

type Loans struct {
	Loans          []LoanView                       `json:"loans"`
	Count          int                              `json:"count"`
	SequenceNumber eventstore.MaxSequenceNumberUint `json:"-"`
}
