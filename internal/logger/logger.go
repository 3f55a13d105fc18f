// Package logger provides structured file logging for patch operations.
package logger

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap logger with patch-specific helpers.
type Logger struct {
	zap *zap.Logger
}

// New creates a Logger that appends JSON entries to logPath.
// If logPath is empty, logging is disabled.
func New(logPath string) (*Logger, error) {
	if logPath == "" {
		return &Logger{zap: zap.NewNop()}, nil
	}

	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(logFile),
		zapcore.InfoLevel,
	)

	return &Logger{zap: zap.New(core)}, nil
}

// Close syncs the logger (should be called on shutdown).
func (l *Logger) Close() error {
	return l.zap.Sync()
}

// PatchApplied logs a completed patch application.
func (l *Logger) PatchApplied(file string, hunkCount int, duration time.Duration) {
	l.zap.Info("patch applied",
		zap.String("file", file),
		zap.Int("hunks", hunkCount),
		zap.Duration("duration", duration),
	)
}

// PatchFailed logs a patch that could not be applied.
func (l *Logger) PatchFailed(file string, err error) {
	l.zap.Info("patch failed",
		zap.String("file", file),
		zap.Error(err),
	)
}

// GenerateCall logs an AI generation call.
func (l *Logger) GenerateCall(model, task string, duration time.Duration, err error) {
	if err != nil {
		l.zap.Info("generate call",
			zap.String("model", model),
			zap.String("task", task),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
	} else {
		l.zap.Info("generate call",
			zap.String("model", model),
			zap.String("task", task),
			zap.Duration("duration", duration),
		)
	}
}

// FileSaved logs a successful save.
func (l *Logger) FileSaved(path string, bytes int) {
	l.zap.Info("file saved",
		zap.String("path", path),
		zap.Int("bytes", bytes),
	)
}

// Error logs an error.
func (l *Logger) Error(msg string, err error) {
	l.zap.Error(msg, zap.Error(err))
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.zap.Info(msg, fields...)
}
