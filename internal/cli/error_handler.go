package cli

import (
	"go.uber.org/zap"

	"task-tracker/internal/errors"
)

// CommandError is what a command returns when its task operation failed.
// The message is meant for stderr; the cause stays reachable for errors.As.
type CommandError struct {
	Operation string
	Err       error
}

func (e *CommandError) Error() string {
	return "failed to " + e.Operation + ": " + errors.UserMessage(e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ErrorHandler turns operation failures into command errors and logs the
// ones that are not the user's fault
type ErrorHandler struct {
	logger *zap.Logger
}

// NewErrorHandler creates a new error handler. System errors are logged to logger.
func NewErrorHandler(logger *zap.Logger) *ErrorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorHandler{logger: logger}
}

// Handle wraps err for the named operation. A nil err stays nil.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	eh.log(operation, err)
	return &CommandError{Operation: operation, Err: err}
}

func (eh *ErrorHandler) log(operation string, err error) {
	if !errors.ShouldLog(err) {
		return
	}
	fields := []zap.Field{zap.String("operation", operation)}
	if taskErr, ok := errors.As(err); ok {
		fields = append(fields, zap.Stringer("kind", taskErr.Kind))
		if taskErr.TaskID != "" {
			fields = append(fields, zap.String("id", taskErr.TaskID))
		}
	}
	fields = append(fields, zap.Error(err))
	eh.logger.Error("command failed", fields...)
}
