// Package applog constructs the process-wide zap logger used for every
// recoverable-warning and fatal-error message the pipeline emits.
package applog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewApplicationLogger builds a console-encoded zap logger with every key
// except the message itself stripped, so a warning reads as a single bare
// line on stderr rather than a structured log record.
func NewApplicationLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig = zapcore.EncoderConfig{
		MessageKey: "message",
		LineEnding: zapcore.DefaultLineEnding,
	}
	return config.Build()
}

// WarnPath is the shared one-line shape for a recoverable per-entry
// warning: "<path>: <error>".
func WarnPath(logger *zap.Logger, path string, err error) {
	logger.Warn(path + ": " + err.Error())
}
