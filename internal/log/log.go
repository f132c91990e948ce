// Package log provides centralized logging for the tile command.
//
// Logging is disabled until Init or SetOutput is called. The layout and plan
// packages never log; only the command and its renderers do.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger = zap.NewNop().Sugar()
	file   *os.File
	mu     sync.Mutex
)

// Init sets up logging at the given level ("debug", "info", "warn", "error").
// An empty path writes human-readable lines to stderr; otherwise JSON lines
// are appended to the file at path.
func Init(level, path string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	if path == "" {
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		replace(zapcore.NewCore(enc, zapcore.Lock(os.Stderr), lvl), nil)
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	replace(zapcore.NewCore(enc, zapcore.AddSync(f), lvl), f)
	return nil
}

// SetOutput sends JSON log lines at level and above to w. Pass nil to disable logging.
func SetOutput(w io.Writer, level zapcore.Level) {
	if w == nil {
		replace(nil, nil)
		return
	}
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	replace(zapcore.NewCore(enc, zapcore.AddSync(w), level), nil)
}

func replace(core zapcore.Core, f *os.File) {
	mu.Lock()
	defer mu.Unlock()
	_ = logger.Sync()
	if file != nil {
		file.Close()
	}
	file = f
	if core == nil {
		logger = zap.NewNop().Sugar()
		return
	}
	logger = zap.New(core).Sugar()
}

func current() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Debug logs a message with alternating key/value pairs.
func Debug(msg string, keysAndValues ...any) {
	current().Debugw(msg, keysAndValues...)
}

// Info logs a message with alternating key/value pairs.
func Info(msg string, keysAndValues ...any) {
	current().Infow(msg, keysAndValues...)
}

// Warn logs a message with alternating key/value pairs.
func Warn(msg string, keysAndValues ...any) {
	current().Warnw(msg, keysAndValues...)
}

// Error logs a message with alternating key/value pairs.
func Error(msg string, keysAndValues ...any) {
	current().Errorw(msg, keysAndValues...)
}

// Close flushes buffered entries and closes the log file, if any.
// Logging is disabled afterwards.
func Close() {
	replace(nil, nil)
}
