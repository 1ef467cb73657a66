package core

import (
	"strings"
	"time"
)

// OperationFailedEventTypeSuffix ends the type of every failure event, for example RequestingLoanFailed.
const OperationFailedEventTypeSuffix = "Failed"

// OperationFailed records a rejected command for auditing. It is never part of a decision boundary.
type OperationFailed struct {
	EntityID         string
	FailureInfo      string
	OccurredAt       OccurredAt
	DynamicEventType string
}

func BuildOperationFailed(eventType string, entityID string, failureInfo string, occurredAt time.Time) OperationFailed {
	return OperationFailed{
		EntityID:         entityID,
		FailureInfo:      failureInfo,
		OccurredAt:       ToOccurredAt(occurredAt),
		DynamicEventType: eventType,
	}
}

func (e OperationFailed) EventType() string {
	return e.DynamicEventType
}

func (e OperationFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func IsOperationFailedEventType(eventType string) bool {
	return strings.HasSuffix(eventType, OperationFailedEventTypeSuffix)
}
