package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/AntonStoeckl/school-library-go/eventstore/memengine"
	"github.com/AntonStoeckl/school-library-go/eventstore/postgresengine"
	"github.com/AntonStoeckl/school-library-go/eventstore/sqliteengine"
	"github.com/AntonStoeckl/school-library-go/library/shared/shell"
	"github.com/AntonStoeckl/school-library-go/library/shared/shell/config"
)

// openEventStore opens the configured engine and creates its schema. The returned func releases the connections.
func openEventStore(ctx context.Context, cfg config.Storage, o *shell.Observability) (shell.EventStore, func(), error) {
	switch cfg.Engine {
	case config.EngineMemory:
		return memengine.NewEventStore(memoryOptions(o)...), func() {}, nil
	case config.EngineSQLite:
		return openSQLite(ctx, cfg, o)
	default:
		return openPostgres(ctx, cfg, o)
	}
}

func openSQLite(ctx context.Context, cfg config.Storage, o *shell.Observability) (shell.EventStore, func(), error) {
	if dir := filepath.Dir(cfg.SQLite.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, nil, err
		}
	}

	db, err := sqliteengine.Open(cfg.SQLite.Path)
	if err != nil {
		return nil, nil, err
	}

	closeDB := func() { _ = db.Close() }

	options := append([]sqliteengine.Option{sqliteengine.WithTableName(cfg.TableName)}, sqliteOptions(o)...)

	es, err := sqliteengine.NewEventStoreFromSQLX(db, options...)
	if err != nil {
		closeDB()
		return nil, nil, err
	}

	if err = es.CreateSchema(ctx); err != nil {
		closeDB()
		return nil, nil, err
	}

	return es, closeDB, nil
}

func openPostgres(ctx context.Context, cfg config.Storage, o *shell.Observability) (shell.EventStore, func(), error) {
	options := append([]postgresengine.Option{postgresengine.WithTableName(cfg.TableName)}, postgresOptions(o)...)

	var (
		es      *postgresengine.EventStore
		closers []func()
		err     error
	)

	closeAll := func() {
		for _, closeFn := range closers {
			closeFn()
		}
	}

	switch cfg.Postgres.Adapter {
	case config.AdapterSQL:
		db, openErr := config.NewSQLDB(ctx, cfg.Postgres.DSN)
		if openErr != nil {
			return nil, nil, openErr
		}

		closers = append(closers, func() { _ = db.Close() })
		es, err = postgresengine.NewEventStoreFromSQLDB(db, options...)

	case config.AdapterSQLX:
		db, openErr := config.NewSQLX(ctx, cfg.Postgres.DSN)
		if openErr != nil {
			return nil, nil, openErr
		}

		closers = append(closers, func() { _ = db.Close() })
		es, err = postgresengine.NewEventStoreFromSQLX(db, options...)

	default:
		pool, openErr := config.NewPGXPool(ctx, cfg.Postgres.DSN)
		if openErr != nil {
			return nil, nil, openErr
		}

		closers = append(closers, pool.Close)

		if cfg.Postgres.ReplicaDSN == "" {
			es, err = postgresengine.NewEventStoreFromPGXPool(pool, options...)
			break
		}

		replica, replicaErr := config.NewPGXPool(ctx, cfg.Postgres.ReplicaDSN)
		if replicaErr != nil {
			closeAll()
			return nil, nil, replicaErr
		}

		closers = append(closers, replica.Close)
		es, err = postgresengine.NewEventStoreFromPGXPoolAndReplica(pool, replica, options...)
	}

	if err != nil {
		closeAll()
		return nil, nil, err
	}

	if err = es.CreateSchema(ctx); err != nil {
		closeAll()
		return nil, nil, err
	}

	return es, closeAll, nil
}

func memoryOptions(o *shell.Observability) []memengine.Option {
	if o == nil {
		return nil
	}

	return []memengine.Option{
		memengine.WithContextualLogger(o.ContextualLogger),
		memengine.WithMetrics(o.Metrics),
		memengine.WithTracing(o.Tracing),
	}
}

func sqliteOptions(o *shell.Observability) []sqliteengine.Option {
	if o == nil {
		return nil
	}

	return []sqliteengine.Option{
		sqliteengine.WithContextualLogger(o.ContextualLogger),
		sqliteengine.WithMetrics(o.Metrics),
		sqliteengine.WithTracing(o.Tracing),
	}
}

func postgresOptions(o *shell.Observability) []postgresengine.Option {
	if o == nil {
		return nil
	}

	return []postgresengine.Option{
		postgresengine.WithContextualLogger(o.ContextualLogger),
		postgresengine.WithMetrics(o.Metrics),
		postgresengine.WithTracing(o.Tracing),
	}
}
