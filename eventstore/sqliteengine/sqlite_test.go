package sqliteengine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/eventstore/sqliteengine"
	"github.com/AntonStoeckl/school-library-go/testutil/eventstoretest"
	"github.com/AntonStoeckl/school-library-go/testutil/observability/testdoubles"
)

func newStore(t *testing.T, options ...sqliteengine.Option) *sqliteengine.EventStore {
	db, err := sqliteengine.Open(":memory:")
	require.NoError(t, err, "error in arranging test data")
	t.Cleanup(func() { _ = db.Close() })

	es, err := sqliteengine.NewEventStoreFromSQLX(db, options...)
	require.NoError(t, err, "error in arranging test data")
	require.NoError(t, es.CreateSchema(context.Background()), "error in arranging test data")

	return es
}

func Test_SQLiteEngine_Conformance(t *testing.T) {
	eventstoretest.Run(t, func(t *testing.T) eventstoretest.EventStore {
		return newStore(t)
	})
}

func Test_SQLiteEngine_CreateSchema_IsIdempotent(t *testing.T) {
	// arrange
	es := newStore(t)

	// act
	err := es.CreateSchema(context.Background())

	// assert
	assert.NoError(t, err)
}

func Test_SQLiteEngine_ShouldFail_WithEmptyTableName(t *testing.T) {
	// arrange
	db, err := sqliteengine.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	// act
	_, err = sqliteengine.NewEventStoreFromSQLX(db, sqliteengine.WithTableName(""))

	// assert
	assert.ErrorIs(t, err, eventstore.ErrEmptyEventsTableName)
}

func Test_SQLiteEngine_ShouldFail_WithNilDatabaseConnection(t *testing.T) {
	// act
	_, err := sqliteengine.NewEventStoreFromSQLDB(nil)

	// assert
	assert.ErrorIs(t, err, eventstore.ErrNilDatabaseConnection)
}

func Test_SQLiteEngine_ShouldFail_WithMissingTable(t *testing.T) {
	// arrange
	db, err := sqliteengine.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	logger := testdoubles.NewLoggerSpy()
	es, err := sqliteengine.NewEventStoreFromSQLDB(db.DB, sqliteengine.WithLogger(logger))
	require.NoError(t, err)

	// act
	_, _, err = es.Query(context.Background(), eventstore.BuildEventFilter().MatchingAnyEvent())

	// assert
	assert.ErrorIs(t, err, eventstore.ErrEventTableMissing)
	assert.ErrorIs(t, err, eventstore.ErrQueryingEventsFailed)
	assert.True(t, logger.HasMessage("ERROR", "database query execution failed"))
}

func Test_SQLiteEngine_WithLogger_LogsSQLAndOperations(t *testing.T) {
	// arrange
	ctx := context.Background()
	logger := testdoubles.NewLoggerSpy()
	es := newStore(t, sqliteengine.WithLogger(logger))
	filter := eventstore.BuildEventFilter().Matching().AnyEventTypeOf("Something").Finalize()
	event, err := eventstore.BuildStorableEventWithEmptyMetadata("Something", testdoubles.FixedTime(), []byte(`{"ID":"1"}`))
	require.NoError(t, err)

	// act
	require.NoError(t, es.Append(ctx, filter, 0, event))
	_, _, err = es.Query(ctx, filter)

	// assert
	require.NoError(t, err)
	assert.True(t, logger.HasMessage("DEBUG", "executed sql for: append"))
	assert.True(t, logger.HasMessage("DEBUG", "executed sql for: query"))
	assert.True(t, logger.HasMessage("INFO", "eventstore operation: events appended"))
	assert.True(t, logger.HasMessage("INFO", "eventstore operation: query completed"))
}
