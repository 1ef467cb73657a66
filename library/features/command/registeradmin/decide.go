package registeradmin

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const failedEventType = "RegisteringAdminFailed"

// Decide registers the admin unless another admin holds the email.
//
//	ERROR: Conflict if the email is taken
//	IDEMPOTENCY: the admin id was already used, nothing is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	adminID := command.AdminID.String()

	for _, event := range history {
		if e, ok := event.(core.AdminRegistered); ok && e.AdminID == adminID {
			return core.IdempotentDecision()
		}
	}

	if core.AdminEmailOwner(history, command.Email) != "" {
		return core.ErrorDecision(
			core.BuildOperationFailed(failedEventType, adminID, core.ReasonEmailTaken, command.OccurredAt),
			core.ErrConflict,
		)
	}

	return core.SuccessDecision(
		core.BuildAdminRegistered(adminID, command.Email, command.Name, command.Role, command.PasswordHash, command.OccurredAt),
	)
}

func BuildEventFilter(adminID uuid.UUID, email core.EmailString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.AdminRegisteredEventType).
		AndAnyPredicateOf(
			eventstore.P("AdminID", adminID.String()),
			eventstore.P("Email", email),
		).
		Finalize()
}
