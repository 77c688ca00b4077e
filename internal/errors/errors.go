package errors

import (
	"errors"
	"fmt"
)

// Error is a failed task operation. TaskID and Name are filled in when the
// failing call knew which task it was working on.
type Error struct {
	Kind   Kind
	Op     string
	TaskID string
	Name   string
	// Detail replaces the kind's default summary
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Summary()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Summary is the one-line account of the failure, without the cause
func (e *Error) Summary() string {
	if e.Detail != "" {
		return e.Detail
	}
	switch e.Kind {
	case KindInvalidName:
		return fmt.Sprintf("invalid task name %q", e.Name)
	case KindInvalidID:
		return fmt.Sprintf("invalid task id %q: want 8 characters from 0-9 and a-f", e.TaskID)
	case KindUsage:
		return "invalid usage"
	case KindTaskNotFound:
		return "no task with id " + e.TaskID
	case KindDuplicateName:
		if e.Name == "" {
			return "a task with that name already exists"
		}
		return fmt.Sprintf("a task named %q already exists", e.Name)
	case KindDuplicateID:
		return "a task with id " + e.TaskID + " already exists"
	case KindRejectedRow:
		return "the task table rejected the row"
	case KindTimeout:
		return "timed out waiting for the task database"
	case KindCanceled:
		return "canceled"
	default:
		return "task database error"
	}
}

// Storage wraps a SQLite fault
func Storage(op string, err error) *Error {
	return &Error{Kind: KindStorage, Op: op, Err: err}
}

// InvalidName rejects a task name; detail says which rule it broke
func InvalidName(name, detail string, err error) *Error {
	return &Error{Kind: KindInvalidName, Name: name, Detail: detail, Err: err}
}

// InvalidID rejects an id that cannot have been generated
func InvalidID(id string) *Error {
	return &Error{Kind: KindInvalidID, TaskID: id}
}

// Usage reports a wrong command or wrong arguments
func Usage(detail string) *Error {
	return &Error{Kind: KindUsage, Detail: detail}
}

// TaskNotFound reports an id that matched no row
func TaskNotFound(op, id string) *Error {
	return &Error{Kind: KindTaskNotFound, Op: op, TaskID: id}
}

// Timeout reports a statement cut off by its deadline
func Timeout(op string, err error) *Error {
	return &Error{Kind: KindTimeout, Op: op, Err: err}
}

// Canceled reports a statement abandoned because the command was interrupted
func Canceled(op string, err error) *Error {
	return &Error{Kind: KindCanceled, Op: op, Err: err}
}

// As finds the task error in err's chain
func As(err error) (*Error, bool) {
	var taskErr *Error
	if errors.As(err, &taskErr) {
		return taskErr, true
	}
	return nil, false
}

// HasKind reports whether err's chain holds a task error of kind k
func HasKind(err error, k Kind) bool {
	taskErr, ok := As(err)
	return ok && taskErr.Kind == k
}

// UserMessage returns what the command line prints for err. Storage faults
// keep their cause; everything else is the summary alone.
func UserMessage(err error) string {
	taskErr, ok := As(err)
	if !ok {
		return err.Error()
	}
	if taskErr.Kind == KindStorage && taskErr.Err != nil {
		return taskErr.Summary() + ": " + taskErr.Err.Error()
	}
	return taskErr.Summary()
}

// ShouldLog reports whether err deserves a log line. Errors from outside
// this package always do.
func ShouldLog(err error) bool {
	if err == nil {
		return false
	}
	taskErr, ok := As(err)
	if !ok {
		return true
	}
	return taskErr.Kind.Loggable()
}

// WithTask records which task a failed write was for. Fields already set are
// kept, and errors from outside this package are returned unchanged.
func WithTask(err error, id, name string) error {
	if taskErr, ok := As(err); ok {
		if taskErr.TaskID == "" {
			taskErr.TaskID = id
		}
		if taskErr.Name == "" {
			taskErr.Name = name
		}
	}
	return err
}
