package core

import "errors"

// DecisionResult is the outcome of a Decide function.
//
// Construct it only with IdempotentDecision, SuccessDecision or ErrorDecision.
type DecisionResult struct {
	Outcome string
	Events  DomainEvents
	Err     error
}

const (
	idempotentOutcome = "idempotent"
	successOutcome    = "success"
	errorOutcome      = "error"
)

// IdempotentDecision means the command is already fulfilled and nothing is appended.
func IdempotentDecision() DecisionResult {
	return DecisionResult{Outcome: idempotentOutcome}
}

// SuccessDecision carries the events to append. They are appended atomically.
func SuccessDecision(event DomainEvent, additionalEvents ...DomainEvent) DecisionResult {
	return DecisionResult{
		Outcome: successOutcome,
		Events:  append(DomainEvents{event}, additionalEvents...),
	}
}

// ErrorDecision carries the failure event to append and the error the command fails with.
// kind must be one of the error kinds of this package.
func ErrorDecision(event OperationFailed, kind error) DecisionResult {
	return DecisionResult{
		Outcome: errorOutcome,
		Events:  DomainEvents{event},
		Err: DecisionError{
			EventType: event.EventType(),
			Violation: Violate(kind, event.FailureInfo),
		},
	}
}

// ErrorDecisionFrom builds the failure from a Violation returned by the ledger or the loan state machine.
// Errors of other types are reported as invariant violations.
func ErrorDecisionFrom(failedEventType string, entityID string, err error, occurredAt OccurredAt) DecisionResult {
	var v Violation
	if !errors.As(err, &v) {
		v = Violate(ErrInvariantViolation, err.Error())
	}

	return ErrorDecision(BuildOperationFailed(failedEventType, entityID, v.Reason, occurredAt), v.Kind)
}

func (r DecisionResult) IsIdempotent() bool {
	return r.Outcome == idempotentOutcome
}

func (r DecisionResult) HasEventToAppend() bool {
	return r.Outcome != idempotentOutcome && len(r.Events) > 0
}

// HasError returns the error of an error decision, otherwise nil.
func (r DecisionResult) HasError() error {
	if r.Outcome == errorOutcome {
		return r.Err
	}

	return nil
}
