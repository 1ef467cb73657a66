package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/eventstore/internal/adapters"
	"github.com/AntonStoeckl/school-library-go/eventstore/internal/instrument"
	"github.com/AntonStoeckl/school-library-go/eventstore/internal/sqlbuilder"
	"github.com/AntonStoeckl/school-library-go/eventstore/internal/sqlengine"
)

const (
	engineName            = "postgres"
	dialectPostgres       = "postgres"
	defaultEventTableName = "events"
)

// EventStore is the PostgreSQL implementation of a dynamic event stream store.
type EventStore struct {
	db             adapters.DBAdapter
	eventTableName string
	observer       *instrument.Observer
	engine         sqlengine.Engine
}

// NewEventStoreFromPGXPool creates an EventStore on a pgx pool.
func NewEventStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (*EventStore, error) {
	if db == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewPGXAdapter(db), options...)
}

// NewEventStoreFromPGXPoolAndReplica creates an EventStore that sends eventually consistent reads to replica.
func NewEventStoreFromPGXPoolAndReplica(db *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (*EventStore, error) {
	if db == nil || replica == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewPGXAdapterWithReplica(db, replica), options...)
}

// NewEventStoreFromSQLDB creates an EventStore on a database/sql pool, typically opened with lib/pq.
func NewEventStoreFromSQLDB(db *sql.DB, options ...Option) (*EventStore, error) {
	if db == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewSQLAdapter(db), options...)
}

// NewEventStoreFromSQLX creates an EventStore on a sqlx pool.
func NewEventStoreFromSQLX(db *sqlx.DB, options ...Option) (*EventStore, error) {
	if db == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewSQLXAdapter(db), options...)
}

func newEventStore(db adapters.DBAdapter, options ...Option) (*EventStore, error) {
	es := &EventStore{
		db:             db,
		eventTableName: defaultEventTableName,
		observer:       &instrument.Observer{Engine: engineName},
	}

	for _, option := range options {
		if err := option(es); err != nil {
			return nil, err
		}
	}

	builder := sqlbuilder.New(dialectPostgres, es.eventTableName, containsPredicate, sqlbuilder.Casts{
		Text:      "?::text",
		Timestamp: "?::timestamptz",
		JSON:      "?::jsonb",
	})

	es.engine = sqlengine.New(db, builder, sqlengine.Dialect{
		LockStatement:  fmt.Sprintf("LOCK TABLE %s IN SHARE ROW EXCLUSIVE MODE", pgx.Identifier{es.eventTableName}.Sanitize()),
		IsTableMissing: isUndefinedTable,
	}, es.observer)

	return es, nil
}

// Query returns all events matching filter in sequence order, together with the highest sequence number among them.
func (es *EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	return es.engine.Query(ctx, filter)
}

// Append stores events atomically, but only if no event matching filter was appended after expectedMaxSequenceNumber.
// Otherwise, it returns eventstore.ErrConcurrencyConflict and stores nothing.
//
// The filter must be the one used for the Query that the decision was based on.
// Concurrent appends are serialized with a table lock, so two writers cannot both pass the check.
func (es *EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	events ...eventstore.StorableEvent,
) error {

	return es.engine.Append(ctx, filter, expectedMaxSequenceNumber, events...)
}

// CreateSchema creates the events table and its indexes if they do not exist.
func (es *EventStore) CreateSchema(ctx context.Context) error {
	table := pgx.Identifier{es.eventTableName}.Sanitize()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS ` + table + ` (
			sequence_number BIGSERIAL PRIMARY KEY,
			occurred_at TIMESTAMPTZ NOT NULL,
			event_type TEXT NOT NULL,
			payload JSONB NOT NULL,
			metadata JSONB NOT NULL,
			append_timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS ` + pgx.Identifier{"idx_" + es.eventTableName + "_event_type"}.Sanitize() +
			` ON ` + table + ` (event_type)`,
		`CREATE INDEX IF NOT EXISTS ` + pgx.Identifier{"idx_" + es.eventTableName + "_occurred_at"}.Sanitize() +
			` ON ` + table + ` (occurred_at)`,
		`CREATE INDEX IF NOT EXISTS ` + pgx.Identifier{"idx_" + es.eventTableName + "_payload_gin"}.Sanitize() +
			` ON ` + table + ` USING gin (payload jsonb_path_ops)`,
	}

	for _, statement := range statements {
		if _, err := es.db.Exec(ctx, statement); err != nil {
			return errors.Join(eventstore.ErrCreatingSchemaFailed, err)
		}
	}

	return nil
}

// containsPredicate renders payload @> '{"key": "val"}' with the document bound as an argument.
func containsPredicate(predicate eventstore.FilterPredicate) (goqu.Expression, error) {
	document, err := jsoniter.ConfigFastest.Marshal(map[string]string{predicate.Key(): predicate.Val()})
	if err != nil {
		return nil, err
	}

	return goqu.L(sqlbuilder.ColPayload+" @> ?::jsonb", string(document)), nil
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UndefinedTable
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgerrcode.UndefinedTable
	}

	return false
}
