package shell

import (
	"context"
	"errors"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/school-library-go/eventstore"
)

var ErrMappingToEventMetadataFailed = errors.New("mapping to event metadata failed")

type MessageID = string
type CausationID = string
type CorrelationID = string

// EventMetadata is stored next to every event payload.
type EventMetadata struct {
	MessageID     MessageID
	CausationID   CausationID
	CorrelationID CorrelationID
}

func BuildEventMetadata(messageID uuid.UUID, causationID uuid.UUID, correlationID uuid.UUID) EventMetadata {
	return EventMetadata{
		MessageID:     messageID.String(),
		CausationID:   causationID.String(),
		CorrelationID: correlationID.String(),
	}
}

func EventMetadataFrom(storableEvent eventstore.StorableEvent) (EventMetadata, error) {
	metadata := new(EventMetadata)

	if err := jsoniter.ConfigFastest.Unmarshal(storableEvent.MetadataJSON, metadata); err != nil {
		return EventMetadata{}, errors.Join(ErrMappingToEventMetadataFailed, err)
	}

	return *metadata, nil
}

type correlationKey struct{}

// WithCorrelationID stores the id of the request that caused the events appended under ctx.
func WithCorrelationID(ctx context.Context, correlationID uuid.UUID) context.Context {
	return context.WithValue(ctx, correlationKey{}, correlationID)
}

// NewEventMetadataFor builds the metadata for an event appended under ctx.
// Without a correlation id on ctx the event correlates with itself.
func NewEventMetadataFor(ctx context.Context) EventMetadata {
	messageID := uuid.New()

	correlationID, ok := ctx.Value(correlationKey{}).(uuid.UUID)
	if !ok {
		return BuildEventMetadata(messageID, messageID, messageID)
	}

	return BuildEventMetadata(messageID, correlationID, correlationID)
}
