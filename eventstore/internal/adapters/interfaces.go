package adapters

import "context"

// DBAdapter is the subset of database access the SQL engines need.
// Query honors the consistency level on ctx where the adapter has a replica.
type DBAdapter interface {
	Query(ctx context.Context, query string, args ...any) (DBRows, error)
	Exec(ctx context.Context, query string, args ...any) (DBResult, error)
	InTx(ctx context.Context, fn func(tx DBExecer) error) error
}

// DBExecer executes statements inside a transaction opened by InTx.
type DBExecer interface {
	Exec(ctx context.Context, query string, args ...any) (DBResult, error)
}

type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DBResult interface {
	RowsAffected() (int64, error)
}
