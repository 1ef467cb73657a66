package eventstore

import (
	"errors"
)

var (
	ErrEmptyEventsTableName        = errors.New("empty events table name supplied")
	ErrNilDatabaseConnection       = errors.New("database connection must not be nil")
	ErrNoEventsToAppend            = errors.New("at least one event must be supplied to append")
	ErrConcurrencyConflict         = errors.New("concurrency error, no rows were affected")
	ErrEventTableMissing           = errors.New("events table does not exist")
	ErrQueryingEventsFailed        = errors.New("querying events failed")
	ErrScanningDBRowFailed         = errors.New("scanning db row failed")
	ErrBuildingStorableEventFailed = errors.New("building storable event failed")
	ErrAppendingEventFailed        = errors.New("appending the event failed")
	ErrGettingRowsAffectedFailed   = errors.New("getting rows affected failed")
	ErrBuildingQueryFailed         = errors.New("building the query failed")
	ErrCreatingSchemaFailed        = errors.New("creating the events schema failed")
)

// MaxSequenceNumberUint is the highest sequence number of a "dynamic event stream" at the time it was queried.
// Zero means the stream is empty.
type MaxSequenceNumberUint = uint
