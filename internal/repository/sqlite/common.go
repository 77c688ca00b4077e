package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"task-tracker/internal/errors"
)

// HandleDatabaseError classifies a driver error as a task error
func HandleDatabaseError(operation string, err error) error {
	return errors.FromStoreError(operation, err)
}

// ValidateRowsAffected turns a write that matched no row into a not found error
func ValidateRowsAffected(result sql.Result, operation string, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return HandleDatabaseError(operation, err)
	}
	if rows == 0 {
		return errors.TaskNotFound(operation, id)
	}
	return nil
}

// Execute runs a statement and ignores how many rows it touched
func Execute(ctx context.Context, db sqlx.ExecerContext, operation string, query string, args ...interface{}) (sql.Result, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, HandleDatabaseError(operation, err)
	}
	return result, nil
}

// ExecuteWithRowsAffected executes a query and validates that rows were affected
func ExecuteWithRowsAffected(ctx context.Context, db sqlx.ExecerContext, operation string, query string, id string, args ...interface{}) error {
	result, err := Execute(ctx, db, operation, query, args...)
	if err != nil {
		return err
	}
	return ValidateRowsAffected(result, operation, id)
}

// QuerySingle fetches one row into T. A missing row yields (nil, nil).
func QuerySingle[T any](ctx context.Context, db sqlx.QueryerContext, operation string, query string, args ...interface{}) (*T, error) {
	var result T
	if err := sqlx.GetContext(ctx, db, &result, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, HandleDatabaseError(operation, err)
	}
	return &result, nil
}

// QueryMultiple fetches every row of a query into a slice of T
func QueryMultiple[T any](ctx context.Context, db sqlx.QueryerContext, operation string, query string, args ...interface{}) ([]*T, error) {
	results := []*T{}
	if err := sqlx.SelectContext(ctx, db, &results, query, args...); err != nil {
		return nil, HandleDatabaseError(operation, err)
	}
	return results, nil
}

// withTimeout bounds ctx by d; a non-positive d leaves ctx unbounded
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
