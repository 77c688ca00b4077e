package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	cause := errors.New("disk I/O error")

	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{"storage with cause", Storage("list tasks", cause), "list tasks: task database error: disk I/O error"},
		{"not found", TaskNotFound("complete task", "a1b2c3d4"), "complete task: no task with id a1b2c3d4"},
		{"invalid id", InvalidID("nope"), `invalid task id "nope": want 8 characters from 0-9 and a-f`},
		{"usage", Usage("usage: task add NAME"), "usage: task add NAME"},
		{"invalid name", InvalidName("", "task_name is required", nil), "task_name is required"},
		{"canceled", Canceled("save task", nil), "save task: canceled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestError_Summary(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{"duplicate name with name", &Error{Kind: KindDuplicateName, Name: "Buy milk"}, `a task named "Buy milk" already exists`},
		{"duplicate name without name", &Error{Kind: KindDuplicateName}, "a task with that name already exists"},
		{"duplicate id", &Error{Kind: KindDuplicateID, TaskID: "a1b2c3d4"}, "a task with id a1b2c3d4 already exists"},
		{"invalid name default", &Error{Kind: KindInvalidName, Name: "x"}, `invalid task name "x"`},
		{"rejected row", &Error{Kind: KindRejectedRow}, "the task table rejected the row"},
		{"timeout", Timeout("list tasks", nil), "timed out waiting for the task database"},
		{"detail wins", &Error{Kind: KindTaskNotFound, TaskID: "a1b2c3d4", Detail: "gone"}, "gone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Summary())
		})
	}
}

func TestAs(t *testing.T) {
	notFound := TaskNotFound("complete task", "a1b2c3d4")
	wrapped := fmt.Errorf("do: %w", notFound)

	result, ok := As(wrapped)
	assert.True(t, ok)
	assert.Same(t, notFound, result)
	assert.True(t, HasKind(wrapped, KindTaskNotFound))
	assert.False(t, HasKind(wrapped, KindStorage))

	result, ok = As(errors.New("plain"))
	assert.False(t, ok)
	assert.Nil(t, result)
	assert.False(t, HasKind(nil, KindStorage))
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("disk I/O error")
	assert.ErrorIs(t, Storage("list tasks", cause), cause)
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"storage keeps cause", Storage("list tasks", errors.New("unable to open database file")), "task database error: unable to open database file"},
		{"not found drops op", TaskNotFound("complete task", "a1b2c3d4"), "no task with id a1b2c3d4"},
		{"duplicate hides driver text", &Error{Kind: KindDuplicateName, Name: "Buy milk", Err: errors.New("UNIQUE constraint failed: task.name")}, `a task named "Buy milk" already exists`},
		{"wrapped", fmt.Errorf("do: %w", InvalidID("x")), `invalid task id "x": want 8 characters from 0-9 and a-f`},
		{"plain", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserMessage(tt.err))
		})
	}
}

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{"invalid name", InvalidName("", "task_name is required", nil), false},
		{"invalid id", InvalidID("x"), false},
		{"usage", Usage("usage: task list"), false},
		{"not found", TaskNotFound("undo task", "a1b2c3d4"), false},
		{"duplicate name", &Error{Kind: KindDuplicateName}, false},
		{"canceled", Canceled("save task", nil), false},
		{"storage", Storage("list tasks", errors.New("disk")), true},
		{"timeout", Timeout("list tasks", nil), true},
		{"plain", errors.New("plain"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShouldLog(tt.err))
		})
	}
}

func TestWithTask(t *testing.T) {
	dup := &Error{Kind: KindDuplicateName, Op: "save task"}
	err := WithTask(fmt.Errorf("wrapped: %w", dup), "a1b2c3d4", "Buy milk")

	assert.Equal(t, "a1b2c3d4", dup.TaskID)
	assert.Equal(t, "Buy milk", dup.Name)
	assert.True(t, HasKind(err, KindDuplicateName))

	kept := &Error{Kind: KindDuplicateID, TaskID: "ffffffff"}
	WithTask(kept, "a1b2c3d4", "Buy milk")
	assert.Equal(t, "ffffffff", kept.TaskID, "fields already set are kept")

	plain := errors.New("plain")
	assert.Same(t, plain, WithTask(plain, "a1b2c3d4", "Buy milk"))
	assert.Nil(t, WithTask(nil, "a1b2c3d4", "Buy milk"))
}
