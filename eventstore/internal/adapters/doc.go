// Package adapters lets the SQL engines run against pgx pools, database/sql and sqlx with one code path.
package adapters
