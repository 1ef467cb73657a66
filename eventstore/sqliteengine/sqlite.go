// Package sqliteengine stores events in a SQLite table. It suits single node deployments and local development.
//
// Payload predicates are evaluated with json_extract. SQLite allows one writer at a time, so the
// connection pool is limited to one connection and appends need no explicit lock.
package sqliteengine

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3" // dialect registration
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // driver registration

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/eventstore/internal/adapters"
	"github.com/AntonStoeckl/school-library-go/eventstore/internal/instrument"
	"github.com/AntonStoeckl/school-library-go/eventstore/internal/sqlbuilder"
	"github.com/AntonStoeckl/school-library-go/eventstore/internal/sqlengine"
)

const (
	engineName            = "sqlite"
	dialectSQLite         = "sqlite3"
	driverName            = "sqlite3"
	defaultEventTableName = "events"
)

type EventStore struct {
	db             adapters.DBAdapter
	eventTableName string
	observer       *instrument.Observer
	engine         sqlengine.Engine
}

// Option configures an EventStore.
type Option func(*EventStore) error

func WithTableName(tableName string) Option {
	return func(es *EventStore) error {
		if tableName == "" {
			return eventstore.ErrEmptyEventsTableName
		}

		es.eventTableName = tableName

		return nil
	}
}

func WithLogger(logger eventstore.Logger) Option {
	return func(es *EventStore) error {
		es.observer.Logger = logger
		return nil
	}
}

func WithContextualLogger(logger eventstore.ContextualLogger) Option {
	return func(es *EventStore) error {
		es.observer.ContextualLogger = logger
		return nil
	}
}

func WithMetrics(collector eventstore.MetricsCollector) Option {
	return func(es *EventStore) error {
		es.observer.Metrics = collector
		return nil
	}
}

func WithTracing(collector eventstore.TracingCollector) Option {
	return func(es *EventStore) error {
		es.observer.Tracing = collector
		return nil
	}
}

// Open opens the database file at path with go-sqlite3. Use ":memory:" for a throwaway database.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverName, path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	return db, nil
}

// NewEventStoreFromSQLDB creates an EventStore on a database/sql pool opened with the sqlite3 driver.
func NewEventStoreFromSQLDB(db *sql.DB, options ...Option) (*EventStore, error) {
	if db == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	db.SetMaxOpenConns(1)

	return newEventStore(adapters.NewSQLAdapter(db), options...)
}

// NewEventStoreFromSQLX creates an EventStore on a sqlx pool opened with the sqlite3 driver.
func NewEventStoreFromSQLX(db *sqlx.DB, options ...Option) (*EventStore, error) {
	if db == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	db.SetMaxOpenConns(1)

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

	builder := sqlbuilder.New(dialectSQLite, es.eventTableName, jsonExtractPredicate, sqlbuilder.Casts{
		Text:      "?",
		Timestamp: "?",
		JSON:      "?",
	})

	es.engine = sqlengine.New(db, builder, sqlengine.Dialect{IsTableMissing: isNoSuchTable}, es.observer)

	return es, nil
}

func (es *EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	return es.engine.Query(ctx, filter)
}

// Append stores events atomically if no event matching filter was appended after expectedMaxSequenceNumber.
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
	table := quoteIdentifier(es.eventTableName)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS ` + table + ` (
			sequence_number INTEGER PRIMARY KEY AUTOINCREMENT,
			occurred_at TIMESTAMP NOT NULL,
			event_type TEXT NOT NULL,
			payload TEXT NOT NULL,
			metadata TEXT NOT NULL,
			append_timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS ` + quoteIdentifier("idx_"+es.eventTableName+"_event_type") +
			` ON ` + table + ` (event_type)`,
	}

	for _, statement := range statements {
		if _, err := es.db.Exec(ctx, statement); err != nil {
			return errors.Join(eventstore.ErrCreatingSchemaFailed, err)
		}
	}

	return nil
}

func jsonExtractPredicate(predicate eventstore.FilterPredicate) (goqu.Expression, error) {
	return goqu.L("json_extract("+sqlbuilder.ColPayload+", ?) = ?", `$."`+predicate.Key()+`"`, predicate.Val()), nil
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func isNoSuchTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}
