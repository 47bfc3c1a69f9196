// Package logger configures slog for attcm. The terminal is owned by the
// prompts, so records are written to a rotating file instead of stderr.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

type contextKey struct{}

var loggerKey = contextKey{}

// DefaultPath returns the log file location under the user cache directory
func DefaultPath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "attcm.log")
	}
	return filepath.Join(cacheDir, "attcm", "attcm.log")
}

// Init installs a file-backed default logger. The returned closer releases
// the log file.
func Init(path string, debug bool) (*slog.Logger, io.Closer) {
	if path == "" {
		path = DefaultPath()
	}

	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	return install(file, debug), file
}

func install(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

// WithContext stores a logger in ctx
func WithContext(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext returns the logger stored in ctx, or the default logger
func FromContext(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
