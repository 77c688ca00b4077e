package errors

import (
	"context"
	"errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// FromStoreError classifies an error returned through database/sql by the
// SQLite driver. Task errors pass through unchanged and nil stays nil.
func FromStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return Timeout(op, err)
	case errors.Is(err, context.Canceled):
		return Canceled(op, err)
	}

	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return Storage(op, err)
	}
	return &Error{Kind: kindForCode(sqliteErr.Code()), Op: op, Err: err}
}

// kindForCode maps an extended SQLite result code. The driver enables
// extended codes, so constraint failures arrive with their subtype.
func kindForCode(code int) Kind {
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		// name is the only UNIQUE column of the task table
		return KindDuplicateName
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return KindDuplicateID
	case sqlite3.SQLITE_INTERRUPT:
		return KindCanceled
	}
	if code&0xff == sqlite3.SQLITE_CONSTRAINT {
		return KindRejectedRow
	}
	return KindStorage
}
