// Package postgresengine stores events in a PostgreSQL table and implements dynamic event streams on it.
//
// It runs on a pgx pool, a database/sql pool (lib/pq) or a sqlx pool. Payload predicates are evaluated
// with JSONB containment, so a GIN index on the payload column keeps stream queries fast.
//
//	pool, _ := pgxpool.New(ctx, dsn)
//	es, _ := postgresengine.NewEventStoreFromPGXPool(pool, postgresengine.WithLogger(logger))
//	_ = es.CreateSchema(ctx)
//
//	events, maxSeq, _ := es.Query(ctx, filter)
//	err := es.Append(ctx, filter, maxSeq, newEvent)
package postgresengine
