package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

var (
	ErrMappingToDomainEventFailed           = errors.New("mapping to domain event failed")
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom maps storable events in order.
func DomainEventsFrom(storableEvents eventstore.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom maps a storable event to its domain event by event type.
func DomainEventFrom(storableEvent eventstore.StorableEvent) (core.DomainEvent, error) {
	payload := storableEvent.PayloadJSON

	switch storableEvent.EventType {
	case core.BookAddedToCatalogEventType:
		return unmarshal[core.BookAddedToCatalog](payload)
	case core.BookDetailsUpdatedEventType:
		return unmarshal[core.BookDetailsUpdated](payload)
	case core.BookRemovedFromCatalogEventType:
		return unmarshal[core.BookRemovedFromCatalog](payload)

	case core.BookCopiesResizedEventType:
		return unmarshal[core.BookCopiesResized](payload)
	case core.BookCopyReservedEventType:
		return unmarshal[core.BookCopyReserved](payload)
	case core.BookCopyReleasedEventType:
		return unmarshal[core.BookCopyReleased](payload)

	case core.LoanRequestedEventType:
		return unmarshal[core.LoanRequested](payload)
	case core.LoanApprovedEventType:
		return unmarshal[core.LoanApproved](payload)
	case core.LoanRejectedEventType:
		return unmarshal[core.LoanRejected](payload)
	case core.BookHandedOverEventType:
		return unmarshal[core.BookHandedOver](payload)
	case core.LoanReturnedEventType:
		return unmarshal[core.LoanReturned](payload)

	case core.StudentRegisteredEventType:
		return unmarshal[core.StudentRegistered](payload)
	case core.StudentDetailsUpdatedEventType:
		return unmarshal[core.StudentDetailsUpdated](payload)
	case core.StudentRemovedEventType:
		return unmarshal[core.StudentRemoved](payload)
	case core.MembershipActivatedEventType:
		return unmarshal[core.MembershipActivated](payload)
	case core.MembershipDeactivatedEventType:
		return unmarshal[core.MembershipDeactivated](payload)

	case core.AdminRegisteredEventType:
		return unmarshal[core.AdminRegistered](payload)
	case core.CategoryAddedEventType:
		return unmarshal[core.CategoryAdded](payload)
	case core.CategoryRenamedEventType:
		return unmarshal[core.CategoryRenamed](payload)
	case core.CategoryRemovedEventType:
		return unmarshal[core.CategoryRemoved](payload)
	case core.GradeLevelAddedEventType:
		return unmarshal[core.GradeLevelAdded](payload)
	}

	if core.IsOperationFailedEventType(storableEvent.EventType) {
		return unmarshalOperationFailed(storableEvent)
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
}

func unmarshal[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	var event E

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &event); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return event, nil
}

func unmarshalOperationFailed(storableEvent eventstore.StorableEvent) (core.DomainEvent, error) {
	var event core.OperationFailed

	if err := jsoniter.ConfigFastest.Unmarshal(storableEvent.PayloadJSON, &event); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	event.DynamicEventType = storableEvent.EventType

	return event, nil
}
