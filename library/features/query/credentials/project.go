package credentials

import (
	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const ReasonAccountNotFound = "account not found"

// Project returns the credentials of the account currently holding query.Email.
//
//	ERROR: NotFound if no account of query.Kind holds the email
func Project(history core.DomainEvents, query Query) (Credentials, error) {
	switch query.Kind {
	case AccountStudent:
		studentID := core.StudentEmailOwner(history, query.Email)
		if studentID == "" {
			break
		}

		profile := latestProfile(history, studentID)

		return Credentials{
			AccountID:    studentID,
			Kind:         AccountStudent,
			Role:         string(AccountStudent),
			Email:        profile.Email,
			PasswordHash: profile.PasswordHash,
		}, nil

	case AccountAdmin:
		for _, event := range history {
			if e, ok := event.(core.AdminRegistered); ok && e.Email == query.Email {
				return Credentials{
					AccountID:    e.AdminID,
					Kind:         AccountAdmin,
					Role:         e.Role,
					Email:        e.Email,
					PasswordHash: e.PasswordHash,
				}, nil
			}
		}
	}

	return Credentials{}, core.Violate(core.ErrNotFound, ReasonAccountNotFound)
}

// latestProfile returns the profile of the last registration or update of studentID. The history may
// start with an update when the email was changed after registering.
func latestProfile(history core.DomainEvents, studentID core.StudentIDString) core.StudentProfile {
	var profile core.StudentProfile

	for _, event := range history {
		switch e := event.(type) {
		case core.StudentRegistered:
			if e.StudentID == studentID {
				profile = e.StudentProfile
			}

		case core.StudentDetailsUpdated:
			if e.StudentID == studentID {
				profile = e.StudentProfile
			}
		}
	}

	return profile
}

// BuildEventFilter selects the events that carry query.Email. A student's profile events always carry
// the email held at that time, so the owner's latest profile is among them.
func BuildEventFilter(query Query) eventstore.Filter {
	if query.Kind == AccountAdmin {
		return eventstore.BuildEventFilter().
			Matching().
			AnyEventTypeOf(core.AdminRegisteredEventType).
			AndAnyPredicateOf(eventstore.P("Email", query.Email)).
			Finalize()
	}

	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.StudentRegisteredEventType,
			core.StudentDetailsUpdatedEventType,
			core.StudentRemovedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("Email", query.Email),
			eventstore.P("PreviousEmail", query.Email),
		).
		Finalize()
}
