package approveloan

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const failedEventType = "ApprovingLoanFailed"

// Decide approves a pending loan. The due date is the approval time plus loanPeriod.
//
//	GIVEN: a pending loan
//	WHEN: ApproveLoan is received
//	THEN: LoanApproved is generated
//	ERROR: NotFound if the loan does not exist
//	ERROR: InvalidState if the loan is not pending
func Decide(history core.DomainEvents, command Command, loanPeriod time.Duration) core.DecisionResult {
	loan := core.ProjectLoan(history, command.LoanID.String())

	if err := loan.Transition(core.LoanStatusApproved); err != nil {
		return core.ErrorDecisionFrom(failedEventType, command.LoanID.String(), err, command.OccurredAt)
	}

	return core.SuccessDecision(
		core.BuildLoanApproved(
			loan.LoanRef,
			command.AdminID.String(),
			command.OccurredAt.Add(loanPeriod),
			command.OccurredAt,
		),
	)
}

// BuildEventFilter selects the lifecycle events of the loan.
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
