package returnloan

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const failedEventType = "ReturningLoanFailed"

// Decide returns a loan and releases its copy in the same decision.
// Overdue is derived at read time, so an overdue loan is still approved or borrowed here.
//
//	GIVEN: an approved or borrowed loan
//	WHEN: ReturnLoan is received
//	THEN: LoanReturned and BookCopyReleased are generated
//	ERROR: NotFound if the loan does not exist
//	ERROR: InvalidState if the loan is pending, rejected or already returned
//	ERROR: InvariantViolation if the release would exceed the total copies
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	loan := core.ProjectLoan(history, command.LoanID.String())

	if err := loan.Transition(core.LoanStatusReturned); err != nil {
		return fail(command, err)
	}

	if _, err := core.ProjectBookInventory(history, loan.BookID).ReleaseCopy(); err != nil {
		return fail(command, err)
	}

	return core.SuccessDecision(
		core.BuildLoanReturned(loan.LoanRef, command.AdminID.String(), command.OccurredAt),
		core.BuildBookCopyReleased(loan.BookID, loan.LoanID, command.OccurredAt),
	)
}

func fail(command Command, err error) core.DecisionResult {
	return core.ErrorDecisionFrom(failedEventType, command.LoanID.String(), err, command.OccurredAt)
}

// BuildEventFilter selects the loan's lifecycle and, for a known book, the book's inventory.
func BuildEventFilter(loanID uuid.UUID, bookID core.BookIDString) eventstore.Filter {
	builder := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.LoanRequestedEventType,
			core.LoanApprovedEventType,
			core.LoanRejectedEventType,
			core.BookHandedOverEventType,
			core.LoanReturnedEventType,
		).
		AndAnyPredicateOf(eventstore.P("LoanID", loanID.String()))

	if bookID == "" {
		return builder.Finalize()
	}

	return builder.
		OrMatching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookRemovedFromCatalogEventType,
			core.BookCopiesResizedEventType,
			core.BookCopyReservedEventType,
			core.BookCopyReleasedEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", bookID)).
		Finalize()
}
