package handoverbook

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const failedEventType = "HandingOverBookFailed"

// Decide moves an approved loan to borrowed. The copy stays reserved, so the inventory is not involved.
//
//	ERROR: NotFound if the loan does not exist
//	ERROR: InvalidState if the loan is not approved
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	loan := core.ProjectLoan(history, command.LoanID.String())

	if err := loan.Transition(core.LoanStatusBorrowed); err != nil {
		return core.ErrorDecisionFrom(failedEventType, command.LoanID.String(), err, command.OccurredAt)
	}

	return core.SuccessDecision(core.BuildBookHandedOver(loan.LoanRef, command.AdminID.String(), command.OccurredAt))
}

func BuildEventFilter(loanID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.LoanRequestedEventType,
			core.LoanApprovedEventType,
			core.LoanRejectedEventType,
			core.BookHandedOverEventType,
			core.LoanReturnedEventType,
		).
		AndAnyPredicateOf(eventstore.P("LoanID", loanID.String())).
		Finalize()
}
