package core

import (
	"time"
)

const (
	LoanRequestedEventType  = "LoanRequested"
	LoanApprovedEventType   = "LoanApproved"
	LoanRejectedEventType   = "LoanRejected"
	BookHandedOverEventType = "BookHandedOver"
	LoanReturnedEventType   = "LoanReturned"
)

// LoanRef identifies a loan and what it links. Every loan event carries it.
type LoanRef struct {
	LoanID    LoanIDString
	BookID    BookIDString
	StudentID StudentIDString
}

type LoanRequested struct {
	LoanRef
	OccurredAt OccurredAt
}

func BuildLoanRequested(ref LoanRef, occurredAt time.Time) LoanRequested {
	return LoanRequested{LoanRef: ref, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e LoanRequested) EventType() string {
	return LoanRequestedEventType
}

func (e LoanRequested) HasOccurredAt() time.Time {
	return e.OccurredAt
}

type LoanApproved struct {
	LoanRef
	AdminID    AdminIDString
	DueDate    time.Time
	OccurredAt OccurredAt
}

func BuildLoanApproved(ref LoanRef, adminID AdminIDString, dueDate time.Time, occurredAt time.Time) LoanApproved {
	return LoanApproved{
		LoanRef:    ref,
		AdminID:    adminID,
		DueDate:    ToOccurredAt(dueDate),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e LoanApproved) EventType() string {
	return LoanApprovedEventType
}

func (e LoanApproved) HasOccurredAt() time.Time {
	return e.OccurredAt
}

type LoanRejected struct {
	LoanRef
	AdminID    AdminIDString
	OccurredAt OccurredAt
}

func BuildLoanRejected(ref LoanRef, adminID AdminIDString, occurredAt time.Time) LoanRejected {
	return LoanRejected{LoanRef: ref, AdminID: adminID, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e LoanRejected) EventType() string {
	return LoanRejectedEventType
}

func (e LoanRejected) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// BookHandedOver is the physical hand-off of an approved loan.
type BookHandedOver struct {
	LoanRef
	AdminID    AdminIDString
	OccurredAt OccurredAt
}

func BuildBookHandedOver(ref LoanRef, adminID AdminIDString, occurredAt time.Time) BookHandedOver {
	return BookHandedOver{LoanRef: ref, AdminID: adminID, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e BookHandedOver) EventType() string {
	return BookHandedOverEventType
}

func (e BookHandedOver) HasOccurredAt() time.Time {
	return e.OccurredAt
}

type LoanReturned struct {
	LoanRef
	AdminID    AdminIDString
	OccurredAt OccurredAt
}

func BuildLoanReturned(ref LoanRef, adminID AdminIDString, occurredAt time.Time) LoanReturned {
	return LoanReturned{LoanRef: ref, AdminID: adminID, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e LoanReturned) EventType() string {
	return LoanReturnedEventType
}

func (e LoanReturned) HasOccurredAt() time.Time {
	return e.OccurredAt
}
