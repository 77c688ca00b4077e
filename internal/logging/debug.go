package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugEnv is the environment variable that switches on debug logging.
const DebugEnv = "TASK_DEBUG"

// DebugEnabled returns true if debug mode is enabled via TASK_DEBUG
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

// Level picks the minimum log level: warn by default, info when verbose,
// debug when TASK_DEBUG is set.
func Level(verbose bool) zapcore.Level {
	switch {
	case DebugEnabled():
		return zapcore.DebugLevel
	case verbose:
		return zapcore.InfoLevel
	default:
		return zapcore.WarnLevel
	}
}

// New builds a console logger on stderr. Stdout is reserved for command output.
func New(verbose bool) (*zap.Logger, error) {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""

	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(Level(verbose)),
		Development:       false,
		DisableStacktrace: true,
		Encoding:          "console",
		EncoderConfig:     encoderConfig,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
	return cfg.Build()
}

// Init builds the logger and installs it as the zap global so packages can
// log through zap.L() and zap.S(). The returned func restores the previous
// globals.
func Init(verbose bool) (*zap.Logger, func(), error) {
	logger, err := New(verbose)
	if err != nil {
		return nil, nil, err
	}
	restore := zap.ReplaceGlobals(logger)
	return logger, restore, nil
}

// Debugf logs a formatted debug message through the global logger
func Debugf(format string, args ...interface{}) {
	zap.S().Debugf(format, args...)
}
