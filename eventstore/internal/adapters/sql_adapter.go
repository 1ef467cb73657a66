package adapters

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// SQLAdapter runs on a database/sql pool, for example lib/pq or go-sqlite3.
type SQLAdapter struct {
	db *sql.DB
}

func NewSQLAdapter(db *sql.DB) *SQLAdapter {
	return &SQLAdapter{db: db}
}

func (s *SQLAdapter) Query(ctx context.Context, query string, args ...any) (DBRows, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return &stdRows{rows: rows}, nil
}

func (s *SQLAdapter) Exec(ctx context.Context, query string, args ...any) (DBResult, error) {
	return s.db.ExecContext(ctx, query, args...)
}

func (s *SQLAdapter) InTx(ctx context.Context, fn func(tx DBExecer) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	return commitOrRollback(tx, fn(stdTx{tx: tx}))
}

// SQLXAdapter runs on a sqlx pool.
type SQLXAdapter struct {
	db *sqlx.DB
}

func NewSQLXAdapter(db *sqlx.DB) *SQLXAdapter {
	return &SQLXAdapter{db: db}
}

func (s *SQLXAdapter) Query(ctx context.Context, query string, args ...any) (DBRows, error) {
	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return &stdRows{rows: rows.Rows}, nil
}

func (s *SQLXAdapter) Exec(ctx context.Context, query string, args ...any) (DBResult, error) {
	return s.db.ExecContext(ctx, query, args...)
}

func (s *SQLXAdapter) InTx(ctx context.Context, fn func(tx DBExecer) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	return commitOrRollback(tx.Tx, fn(stdTx{tx: tx.Tx}))
}

func commitOrRollback(tx *sql.Tx, fnErr error) error {
	if fnErr != nil {
		rollbackErr := tx.Rollback()
		if errors.Is(rollbackErr, sql.ErrTxDone) {
			rollbackErr = nil
		}

		return errors.Join(fnErr, rollbackErr)
	}

	return tx.Commit()
}

type stdTx struct {
	tx *sql.Tx
}

func (t stdTx) Exec(ctx context.Context, query string, args ...any) (DBResult, error) {
	return t.tx.ExecContext(ctx, query, args...)
}

type stdRows struct {
	rows *sql.Rows
}

func (s *stdRows) Next() bool {
	return s.rows.Next()
}

func (s *stdRows) Scan(dest ...any) error {
	return s.rows.Scan(dest...)
}

func (s *stdRows) Err() error {
	return s.rows.Err()
}

func (s *stdRows) Close() error {
	return s.rows.Close()
}
