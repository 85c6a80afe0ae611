package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"duke/internal/errors"
)

// HandleDatabaseError converts database errors to structured app errors
func HandleDatabaseError(operation string, err error) error {
	return errors.NewStorageError(operation, err)
}

// QueryMultiple executes a query that returns multiple rows and scans them
func QueryMultiple[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Rows) ([]*T, error), entityType string, args ...interface{}) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, HandleDatabaseError("load "+entityType, err)
	}
	defer rows.Close()

	results, err := scanFunc(rows)
	if err != nil {
		return nil, HandleDatabaseError("load "+entityType, fmt.Errorf("scan: %w", err))
	}

	return results, nil
}

// QueryInt executes a query that returns a single integer
func QueryInt(ctx context.Context, db *sql.DB, query string, args ...interface{}) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, HandleDatabaseError("count tasks", err)
	}
	return n, nil
}

// ExecuteInTransaction runs fn in a transaction, rolling back if it fails
func ExecuteInTransaction(ctx context.Context, db *sql.DB, operation string, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError(operation, fmt.Errorf("begin: %w", err))
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return HandleDatabaseError(operation, err)
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError(operation, fmt.Errorf("commit: %w", err))
	}
	return nil
}
