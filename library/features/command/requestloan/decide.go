package requestloan

import (
	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const failedEventType = "RequestingLoanFailed"

type state struct {
	loan      core.LoanRecord
	student   core.StudentRecord
	inventory core.BookInventory
}

// Decide creates a pending loan and reserves a copy for it.
//
//	GIVEN: an active student and a book
//	WHEN: RequestLoan is received
//	THEN: LoanRequested and BookCopyReserved are generated
//	ERROR: NotFound if the student or the book does not exist
//	ERROR: InvalidState if the membership is deactivated or the loan id belongs to another loan
//	ERROR: Unavailable if no copy is on the shelf
//	IDEMPOTENCY: the same loan was already requested, nothing is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	ref := command.loanRef()
	s := project(history, ref)

	if s.loan.Exists() {
		if s.loan.LoanRef == ref {
			return core.IdempotentDecision()
		}

		return fail(command, s.loan.Transition(core.LoanStatusPending))
	}

	if !s.student.Exists {
		return fail(command, core.Violate(core.ErrNotFound, core.ReasonStudentNotFound))
	}

	if !s.student.Active {
		return fail(command, core.Violate(core.ErrInvalidState, core.ReasonMembershipInactive))
	}

	if _, err := s.inventory.ReserveCopy(); err != nil {
		return fail(command, err)
	}

	return core.SuccessDecision(
		core.BuildLoanRequested(ref, command.OccurredAt),
		core.BuildBookCopyReserved(ref.BookID, ref.LoanID, command.OccurredAt),
	)
}

func fail(command Command, err error) core.DecisionResult {
	return core.ErrorDecisionFrom(failedEventType, command.LoanID.String(), err, command.OccurredAt)
}

func project(history core.DomainEvents, ref core.LoanRef) state {
	return state{
		loan:      core.ProjectLoan(history, ref.LoanID),
		student:   core.ProjectStudent(history, ref.StudentID),
		inventory: core.ProjectBookInventory(history, ref.BookID),
	}
}

// BuildEventFilter selects the loan itself, the student's membership and the book's inventory.
// The inventory part makes all requests for one book serialize on the same boundary.
func BuildEventFilter(command Command) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.LoanRequestedEventType,
		).
		AndAnyPredicateOf(eventstore.P("LoanID", command.LoanID.String())).
		OrMatching().
		AnyEventTypeOf(
			core.StudentRegisteredEventType,
			core.StudentRemovedEventType,
			core.MembershipActivatedEventType,
			core.MembershipDeactivatedEventType,
		).
		AndAnyPredicateOf(eventstore.P("StudentID", command.StudentID.String())).
		OrMatching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookRemovedFromCatalogEventType,
			core.BookCopiesResizedEventType,
			core.BookCopyReservedEventType,
			core.BookCopyReleasedEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", command.BookID.String())).
		Finalize()
}
