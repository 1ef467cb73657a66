package core

import (
	"time"
)

const (
	StudentRegisteredEventType     = "StudentRegistered"
	StudentDetailsUpdatedEventType = "StudentDetailsUpdated"
	StudentRemovedEventType        = "StudentRemoved"
	MembershipActivatedEventType   = "MembershipActivated"
	MembershipDeactivatedEventType = "MembershipDeactivated"
)

// PersonName is shared by students and admins.
type PersonName struct {
	FirstName  string
	MiddleName string
	LastName   string
}

// StudentProfile is the full set of mutable student fields.
type StudentProfile struct {
	Email EmailString
	PersonName
	GradeLevelID GradeLevelIDString
	PasswordHash string
}

// StudentRegistered starts an active library membership.
type StudentRegistered struct {
	StudentID StudentIDString
	StudentProfile
	OccurredAt OccurredAt
}

func BuildStudentRegistered(studentID StudentIDString, profile StudentProfile, occurredAt time.Time) StudentRegistered {
	return StudentRegistered{StudentID: studentID, StudentProfile: profile, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e StudentRegistered) EventType() string {
	return StudentRegisteredEventType
}

func (e StudentRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// StudentDetailsUpdated replaces the whole profile.
type StudentDetailsUpdated struct {
	StudentID StudentIDString
	StudentProfile
	PreviousEmail EmailString
	OccurredAt    OccurredAt
}

func BuildStudentDetailsUpdated(
	studentID StudentIDString,
	profile StudentProfile,
	previousEmail EmailString,
	occurredAt time.Time,
) StudentDetailsUpdated {

	return StudentDetailsUpdated{
		StudentID:      studentID,
		StudentProfile: profile,
		PreviousEmail:  previousEmail,
		OccurredAt:     ToOccurredAt(occurredAt),
	}
}

func (e StudentDetailsUpdated) EventType() string {
	return StudentDetailsUpdatedEventType
}

func (e StudentDetailsUpdated) HasOccurredAt() time.Time {
	return e.OccurredAt
}

type StudentRemoved struct {
	StudentID  StudentIDString
	Email      EmailString
	OccurredAt OccurredAt
}

func BuildStudentRemoved(studentID StudentIDString, email EmailString, occurredAt time.Time) StudentRemoved {
	return StudentRemoved{StudentID: studentID, Email: email, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e StudentRemoved) EventType() string {
	return StudentRemovedEventType
}

func (e StudentRemoved) HasOccurredAt() time.Time {
	return e.OccurredAt
}

type MembershipActivated struct {
	StudentID  StudentIDString
	AdminID    AdminIDString
	OccurredAt OccurredAt
}

func BuildMembershipActivated(studentID StudentIDString, adminID AdminIDString, occurredAt time.Time) MembershipActivated {
	return MembershipActivated{StudentID: studentID, AdminID: adminID, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e MembershipActivated) EventType() string {
	return MembershipActivatedEventType
}

func (e MembershipActivated) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// MembershipDeactivated blocks new loan requests of a student. Open loans are not affected.
type MembershipDeactivated struct {
	StudentID  StudentIDString
	AdminID    AdminIDString
	OccurredAt OccurredAt
}

func BuildMembershipDeactivated(studentID StudentIDString, adminID AdminIDString, occurredAt time.Time) MembershipDeactivated {
	return MembershipDeactivated{StudentID: studentID, AdminID: adminID, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e MembershipDeactivated) EventType() string {
	return MembershipDeactivatedEventType
}

func (e MembershipDeactivated) HasOccurredAt() time.Time {
	return e.OccurredAt
}
