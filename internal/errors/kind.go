package errors

import "fmt"

// Kind says what went wrong with a task operation
type Kind uint8

const (
	// KindStorage is a SQLite fault that is not the user's doing: I/O, a
	// broken schema, a closed database.
	KindStorage Kind = iota
	KindInvalidName
	KindInvalidID
	KindUsage
	KindTaskNotFound
	// KindDuplicateName is the UNIQUE constraint on task.name.
	KindDuplicateName
	// KindDuplicateID is the PRIMARY KEY on task.id. The upsert in Save
	// never raises it; a plain INSERT of an existing id does.
	KindDuplicateID
	// KindRejectedRow is a CHECK or NOT NULL constraint on the task table.
	KindRejectedRow
	KindTimeout
	// KindCanceled is a command interrupted before its statement finished.
	KindCanceled
)

var kindNames = map[Kind]string{
	KindStorage:       "storage",
	KindInvalidName:   "invalid_name",
	KindInvalidID:     "invalid_id",
	KindUsage:         "usage",
	KindTaskNotFound:  "task_not_found",
	KindDuplicateName: "duplicate_name",
	KindDuplicateID:   "duplicate_id",
	KindRejectedRow:   "rejected_row",
	KindTimeout:       "timeout",
	KindCanceled:      "canceled",
}

// String returns the name used in log fields
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Loggable reports whether a failure of this kind points at the program or
// its environment rather than at what the user typed or did.
func (k Kind) Loggable() bool {
	switch k {
	case KindStorage, KindRejectedRow, KindTimeout:
		return true
	default:
		return false
	}
}
