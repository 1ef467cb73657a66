package core

import (
	"time"
)

// DomainEvents is a slice of DomainEvent instances.
type DomainEvents = []DomainEvent

// DomainEvent is something that happened in the library.
type DomainEvent interface {
	EventType() string
	HasOccurredAt() time.Time
}
