// Package sqlengine runs Query and Append for the SQL backed engines.
// The dialect specific parts are supplied by postgresengine and sqliteengine.
package sqlengine

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/eventstore/internal/adapters"
	"github.com/AntonStoeckl/school-library-go/eventstore/internal/instrument"
	"github.com/AntonStoeckl/school-library-go/eventstore/internal/sqlbuilder"
)

const (
	logMsgBuildSelectQueryFailed   = "failed to build select query"
	logMsgDBQueryFailed            = "database query execution failed"
	logMsgCloseRowsFailed          = "failed to close database rows"
	logMsgScanRowFailed            = "failed to scan database row"
	logMsgBuildStorableEventFailed = "failed to build storable event from database row"
	logMsgBuildInsertQueryFailed   = "failed to build insert query"
	logMsgDBExecFailed             = "database execution failed during event append"
	logMsgRowsAffectedFailed       = "failed to get rows affected count"
)

// Dialect holds what differs between the SQL databases.
type Dialect struct {
	// LockStatement serializes concurrent appends inside the append transaction. Empty means no lock is taken.
	LockStatement string

	// IsTableMissing reports whether err says that the events table does not exist.
	IsTableMissing func(err error) bool
}

type Engine struct {
	db       adapters.DBAdapter
	builder  sqlbuilder.Builder
	dialect  Dialect
	observer *instrument.Observer
}

func New(db adapters.DBAdapter, builder sqlbuilder.Builder, dialect Dialect, observer *instrument.Observer) Engine {
	return Engine{db: db, builder: builder, dialect: dialect, observer: observer}
}

type queryResultRow struct {
	eventType      string
	occurredAt     time.Time
	payload        []byte
	metadata       []byte
	sequenceNumber int64
}

func (e Engine) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	ctx, op := e.observer.StartQuery(ctx, filter)

	sqlQuery, args, buildErr := e.builder.Select(filter)
	if buildErr != nil {
		op.Failed(logMsgBuildSelectQueryFailed, instrument.ErrorTypeBuildQuery, buildErr)
		return nil, 0, buildErr
	}

	rows, queryErr := e.db.Query(ctx, sqlQuery, args...)
	op.SQL(sqlQuery)

	if queryErr != nil {
		return nil, 0, e.failed(op, logMsgDBQueryFailed, instrument.ErrorTypeDatabase, eventstore.ErrQueryingEventsFailed, queryErr)
	}

	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			op.Warn(logMsgCloseRowsFailed, closeErr)
		}
	}()

	events := make(eventstore.StorableEvents, 0)
	maxSequenceNumber := eventstore.MaxSequenceNumberUint(0)
	row := queryResultRow{}

	for rows.Next() {
		if err := rows.Scan(&row.eventType, &row.occurredAt, &row.payload, &row.metadata, &row.sequenceNumber); err != nil {
			op.Failed(logMsgScanRowFailed, instrument.ErrorTypeScan, err)
			return nil, 0, errors.Join(eventstore.ErrScanningDBRowFailed, err)
		}

		event, buildEventErr := eventstore.BuildStorableEvent(row.eventType, row.occurredAt, row.payload, row.metadata)
		if buildEventErr != nil {
			op.Failed(logMsgBuildStorableEventFailed, instrument.ErrorTypeBuildEvent, buildEventErr, instrument.AttrEventType, row.eventType)
			return nil, 0, errors.Join(eventstore.ErrBuildingStorableEventFailed, buildEventErr)
		}

		events = append(events, event)
		maxSequenceNumber = eventstore.MaxSequenceNumberUint(row.sequenceNumber)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, e.failed(op, logMsgDBQueryFailed, instrument.ErrorTypeDatabase, eventstore.ErrQueryingEventsFailed, err)
	}

	op.QuerySucceeded(len(events), maxSequenceNumber)

	return events, maxSequenceNumber, nil
}

func (e Engine) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	events ...eventstore.StorableEvent,
) error {

	ctx, op := e.observer.StartAppend(ctx, events, expectedMaxSequenceNumber)

	sqlQuery, args, buildErr := e.builder.ConditionalInsert(events, filter, expectedMaxSequenceNumber)
	if buildErr != nil {
		op.Failed(logMsgBuildInsertQueryFailed, instrument.ErrorTypeBuildQuery, buildErr, instrument.AttrEventCount, len(events))
		return buildErr
	}

	var rowsAffected int64

	txErr := e.db.InTx(ctx, func(tx adapters.DBExecer) error {
		if e.dialect.LockStatement != "" {
			if _, err := tx.Exec(ctx, e.dialect.LockStatement); err != nil {
				return err
			}
		}

		result, execErr := tx.Exec(ctx, sqlQuery, args...)
		if execErr != nil {
			return execErr
		}

		affected, affectedErr := result.RowsAffected()
		if affectedErr != nil {
			return errors.Join(eventstore.ErrGettingRowsAffectedFailed, affectedErr)
		}

		rowsAffected = affected

		return nil
	})

	op.SQL(sqlQuery)

	if txErr != nil {
		if errors.Is(txErr, eventstore.ErrGettingRowsAffectedFailed) {
			op.Failed(logMsgRowsAffectedFailed, instrument.ErrorTypeRowsAffected, txErr)
			return txErr
		}

		return e.failed(op, logMsgDBExecFailed, instrument.ErrorTypeExec, eventstore.ErrAppendingEventFailed, txErr)
	}

	if rowsAffected < int64(len(events)) {
		op.Conflicted(len(events), rowsAffected, expectedMaxSequenceNumber)
		return eventstore.ErrConcurrencyConflict
	}

	op.AppendSucceeded(len(events))

	return nil
}

// failed classifies a database error, records it on op and wraps it with sentinel.
func (e Engine) failed(op *instrument.Operation, message, errorType string, sentinel error, err error) error {
	if e.dialect.IsTableMissing != nil && e.dialect.IsTableMissing(err) {
		op.Failed(message, instrument.ErrorTypeTableMissing, err)
		return errors.Join(sentinel, eventstore.ErrEventTableMissing, err)
	}

	op.Failed(message, errorType, err)

	return errors.Join(sentinel, err)
}
