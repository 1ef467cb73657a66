package core

import (
	"time"
)

// LoanStatus is the lifecycle state of a loan.
type LoanStatus string

const (
	LoanStatusNone     LoanStatus = ""
	LoanStatusPending  LoanStatus = "pending"
	LoanStatusApproved LoanStatus = "approved"
	LoanStatusBorrowed LoanStatus = "borrowed"
	LoanStatusRejected LoanStatus = "rejected"
	LoanStatusReturned LoanStatus = "returned"

	// LoanStatusOverdue is never stored. EffectiveStatus derives it from the due date.
	LoanStatusOverdue LoanStatus = "overdue"
)

const (
	ReasonLoanNotFound = "loan not found"
)

var loanTransitions = map[LoanStatus][]LoanStatus{
	LoanStatusNone:     {LoanStatusPending},
	LoanStatusPending:  {LoanStatusApproved, LoanStatusRejected},
	LoanStatusApproved: {LoanStatusBorrowed, LoanStatusReturned},
	LoanStatusBorrowed: {LoanStatusReturned},
}

// CanTransition reports whether a loan in status from may move to status to.
func CanTransition(from, to LoanStatus) bool {
	for _, allowed := range loanTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// ParseLoanStatus accepts every status including overdue.
func ParseLoanStatus(s string) (LoanStatus, bool) {
	switch status := LoanStatus(s); status {
	case LoanStatusPending, LoanStatusApproved, LoanStatusBorrowed, LoanStatusRejected, LoanStatusReturned, LoanStatusOverdue:
		return status, true
	default:
		return LoanStatusNone, false
	}
}

func (s LoanStatus) IsTerminal() bool {
	return s == LoanStatusRejected || s == LoanStatusReturned
}

// HoldsCopy reports whether a loan in this status keeps a copy of its book off the shelf.
func (s LoanStatus) HoldsCopy() bool {
	return s == LoanStatusPending || s == LoanStatusApproved || s == LoanStatusBorrowed || s == LoanStatusOverdue
}

func (s LoanStatus) String() string {
	if s == LoanStatusNone {
		return "none"
	}

	return string(s)
}

// LoanRecord is the state of one loan folded from its events.
type LoanRecord struct {
	LoanRef
	Status      LoanStatus
	RequestedAt time.Time
	ApprovedAt  time.Time
	DueDate     time.Time
	BorrowedAt  time.Time
	ReturnedAt  time.Time
	RejectedAt  time.Time
	AdminID     AdminIDString
}

func (r LoanRecord) Exists() bool {
	return r.Status != LoanStatusNone
}

// Apply folds one loan event into the record. Events of other loans are ignored.
func (r LoanRecord) Apply(event DomainEvent) LoanRecord {
	switch e := event.(type) {
	case LoanRequested:
		if r.LoanID == e.LoanID {
			r.LoanRef = e.LoanRef
			r.Status = LoanStatusPending
			r.RequestedAt = e.OccurredAt
		}

	case LoanApproved:
		if r.LoanID == e.LoanID {
			r.Status = LoanStatusApproved
			r.ApprovedAt = e.OccurredAt
			r.DueDate = e.DueDate
			r.AdminID = e.AdminID
		}

	case LoanRejected:
		if r.LoanID == e.LoanID {
			r.Status = LoanStatusRejected
			r.RejectedAt = e.OccurredAt
			r.AdminID = e.AdminID
		}

	case BookHandedOver:
		if r.LoanID == e.LoanID {
			r.Status = LoanStatusBorrowed
			r.BorrowedAt = e.OccurredAt
		}

	case LoanReturned:
		if r.LoanID == e.LoanID {
			r.Status = LoanStatusReturned
			r.ReturnedAt = e.OccurredAt
		}
	}

	return r
}

// ProjectLoan folds the history into the record of loanID.
func ProjectLoan(history DomainEvents, loanID LoanIDString) LoanRecord {
	r := LoanRecord{LoanRef: LoanRef{LoanID: loanID}}

	for _, event := range history {
		r = r.Apply(event)
	}

	return r
}

// ProjectLoans folds the history into one record per loan, ordered by request.
func ProjectLoans(history DomainEvents) []LoanRecord {
	index := make(map[LoanIDString]int)
	records := make([]LoanRecord, 0)

	for _, event := range history {
		var loanID LoanIDString

		switch e := event.(type) {
		case LoanRequested:
			if _, ok := index[e.LoanID]; !ok {
				index[e.LoanID] = len(records)
				records = append(records, LoanRecord{LoanRef: LoanRef{LoanID: e.LoanID}})
			}
			loanID = e.LoanID
		case LoanApproved:
			loanID = e.LoanID
		case LoanRejected:
			loanID = e.LoanID
		case BookHandedOver:
			loanID = e.LoanID
		case LoanReturned:
			loanID = e.LoanID
		default:
			continue
		}

		if i, ok := index[loanID]; ok {
			records[i] = records[i].Apply(event)
		}
	}

	return records
}

// Transition checks that the loan may move to status to.
func (r LoanRecord) Transition(to LoanStatus) error {
	if !r.Exists() && to != LoanStatusPending {
		return Violate(ErrNotFound, ReasonLoanNotFound)
	}

	if !CanTransition(r.Status, to) {
		return Violate(ErrInvalidState, "loan is "+r.Status.String()+", cannot become "+to.String())
	}

	return nil
}

// EffectiveStatus is the status shown at now: approved and borrowed loans past their due date are overdue.
func (r LoanRecord) EffectiveStatus(now time.Time) LoanStatus {
	if r.IsOverdue(now) {
		return LoanStatusOverdue
	}

	return r.Status
}

func (r LoanRecord) IsOverdue(now time.Time) bool {
	if r.Status != LoanStatusApproved && r.Status != LoanStatusBorrowed {
		return false
	}

	return !r.DueDate.IsZero() && r.DueDate.Before(now)
}
