// Package memengine keeps events in process memory. It evaluates filters exactly like the SQL engines
// and is meant for tests and for running the server without a database.
package memengine

import (
	"context"
	"slices"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/eventstore/internal/instrument"
)

const engineName = "memory"

type storedEvent struct {
	event          eventstore.StorableEvent
	payload        map[string]any
	sequenceNumber eventstore.MaxSequenceNumberUint
}

// EventStore is safe for concurrent use. Appends are serialized by a mutex.
type EventStore struct {
	mu       sync.RWMutex
	events   []storedEvent
	observer *instrument.Observer
}

// Option configures an EventStore.
type Option func(*EventStore)

func WithLogger(logger eventstore.Logger) Option {
	return func(es *EventStore) { es.observer.Logger = logger }
}

func WithContextualLogger(logger eventstore.ContextualLogger) Option {
	return func(es *EventStore) { es.observer.ContextualLogger = logger }
}

func WithMetrics(collector eventstore.MetricsCollector) Option {
	return func(es *EventStore) { es.observer.Metrics = collector }
}

func WithTracing(collector eventstore.TracingCollector) Option {
	return func(es *EventStore) { es.observer.Tracing = collector }
}

func NewEventStore(options ...Option) *EventStore {
	es := &EventStore{observer: &instrument.Observer{Engine: engineName}}

	for _, option := range options {
		option(es)
	}

	return es
}

func (es *EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	ctx, op := es.observer.StartQuery(ctx, filter)

	if err := ctx.Err(); err != nil {
		op.Failed("query aborted", instrument.ErrorTypeDatabase, err)
		return nil, 0, err
	}

	es.mu.RLock()
	defer es.mu.RUnlock()

	result := make(eventstore.StorableEvents, 0)
	maxSequenceNumber := eventstore.MaxSequenceNumberUint(0)

	for _, stored := range es.events {
		if matches(filter, stored) {
			result = append(result, stored.event)
			maxSequenceNumber = stored.sequenceNumber
		}
	}

	op.QuerySucceeded(len(result), maxSequenceNumber)

	return result, maxSequenceNumber, nil
}

func (es *EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	events ...eventstore.StorableEvent,
) error {

	ctx, op := es.observer.StartAppend(ctx, events, expectedMaxSequenceNumber)

	if len(events) == 0 {
		op.Failed("nothing to append", instrument.ErrorTypeBuildQuery, eventstore.ErrNoEventsToAppend)
		return eventstore.ErrNoEventsToAppend
	}

	if err := ctx.Err(); err != nil {
		op.Failed("append aborted", instrument.ErrorTypeExec, err)
		return err
	}

	decoded := make([]map[string]any, 0, len(events))

	for _, event := range events {
		payload := make(map[string]any)
		if err := jsoniter.ConfigFastest.Unmarshal(event.PayloadJSON, &payload); err != nil {
			op.Failed("decoding payload failed", instrument.ErrorTypeBuildEvent, err, instrument.AttrEventType, event.EventType)
			return err
		}

		decoded = append(decoded, payload)
	}

	es.mu.Lock()
	defer es.mu.Unlock()

	if current := es.maxSequenceNumberLocked(filter); current != expectedMaxSequenceNumber {
		op.Conflicted(len(events), 0, expectedMaxSequenceNumber)
		return eventstore.ErrConcurrencyConflict
	}

	next := eventstore.MaxSequenceNumberUint(len(es.events))

	for i, event := range events {
		next++
		es.events = append(es.events, storedEvent{
			event: eventstore.StorableEvent{
				EventType:    event.EventType,
				OccurredAt:   event.OccurredAt,
				PayloadJSON:  slices.Clone(event.PayloadJSON),
				MetadataJSON: slices.Clone(event.MetadataJSON),
			},
			payload:        decoded[i],
			sequenceNumber: next,
		})
	}

	op.AppendSucceeded(len(events))

	return nil
}

// Len returns the number of stored events.
func (es *EventStore) Len() int {
	es.mu.RLock()
	defer es.mu.RUnlock()

	return len(es.events)
}

func (es *EventStore) maxSequenceNumberLocked(filter eventstore.Filter) eventstore.MaxSequenceNumberUint {
	for i := len(es.events) - 1; i >= 0; i-- {
		if matches(filter, es.events[i]) {
			return es.events[i].sequenceNumber
		}
	}

	return 0
}

func matches(filter eventstore.Filter, stored storedEvent) bool {
	if filter.IsEmpty() {
		return true
	}

	for _, item := range filter.Items() {
		if matchesItem(item, stored) {
			return true
		}
	}

	return false
}

func matchesItem(item eventstore.FilterItem, stored storedEvent) bool {
	if len(item.EventTypes()) > 0 && !slices.Contains(item.EventTypes(), stored.event.EventType) {
		return false
	}

	if len(item.Predicates()) == 0 {
		return true
	}

	for _, p := range item.Predicates() {
		matched := matchesPredicate(p, stored.payload)

		if item.AllPredicatesMustMatch() && !matched {
			return false
		}

		if !item.AllPredicatesMustMatch() && matched {
			return true
		}
	}

	return item.AllPredicatesMustMatch()
}

func matchesPredicate(p eventstore.FilterPredicate, payload map[string]any) bool {
	val, ok := payload[p.Key()].(string)

	return ok && val == p.Val()
}
