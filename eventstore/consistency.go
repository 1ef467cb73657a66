package eventstore

import "context"

// ConsistencyLevel tells an engine which database it may read from.
type ConsistencyLevel int

const (
	// StrongConsistency reads from the primary. Command handlers need it to see their own writes
	// before deciding, and it is the default when nothing is set on the context.
	StrongConsistency ConsistencyLevel = iota

	// EventualConsistency allows reads from a replica. Query handlers use it for listings.
	EventualConsistency
)

type contextKey string

// ConsistencyLevelKey is the context key under which the consistency level is stored.
const ConsistencyLevelKey contextKey = "eventstore.consistency_level"

// WithStrongConsistency marks ctx so that Query reads from the primary.
//
//	ctx = eventstore.WithStrongConsistency(ctx)
//	events, maxSeq, err := es.Query(ctx, filter)
func WithStrongConsistency(ctx context.Context) context.Context {
	return context.WithValue(ctx, ConsistencyLevelKey, StrongConsistency)
}

// WithEventualConsistency marks ctx so that Query may read from a replica.
func WithEventualConsistency(ctx context.Context) context.Context {
	return context.WithValue(ctx, ConsistencyLevelKey, EventualConsistency)
}

// GetConsistencyLevel returns the level stored in ctx, StrongConsistency if there is none.
func GetConsistencyLevel(ctx context.Context) ConsistencyLevel {
	if level, ok := ctx.Value(ConsistencyLevelKey).(ConsistencyLevel); ok {
		return level
	}

	return StrongConsistency
}

func (c ConsistencyLevel) String() string {
	switch c {
	case StrongConsistency:
		return "strong"
	case EventualConsistency:
		return "eventual"
	default:
		return "unknown"
	}
}
