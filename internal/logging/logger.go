package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// maxLogSize is the maximum log file size before rotation (5 MB).
	maxLogSize = 5 * 1024 * 1024
	// maxLogBackups is the number of rotated log files to keep.
	maxLogBackups = 3
)

// Options configures InitLogger.
type Options struct {
	AppName string
	Debug   bool

	// Console, when set, also receives human-readable text logs.
	// The CLI points this at stderr; the GUI leaves it nil.
	Console io.Writer
}

// InitLogger initializes a structured logger with platform-specific log file paths.
// The logger writes JSON-formatted logs to a file in the appropriate platform location:
//   - macOS:   ~/Library/Logs/<app>/<app>.log
//   - Linux:   ~/.local/state/<app>/<app>.log
//   - Windows: %LOCALAPPDATA%\<app>\Logs\<app>.log
//
// When Debug is true, the logger uses DEBUG level and includes source locations.
// The returned closer releases the log file.
func InitLogger(opts Options) (*slog.Logger, io.Closer, error) {
	logPath, err := logFilePath(opts.AppName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get log file path: %w", err)
	}

	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory %s: %w", logDir, err)
	}

	if err := rotateIfNeeded(logPath); err != nil {
		return nil, nil, fmt.Errorf("failed to rotate log file: %w", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	var handler slog.Handler = slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level:     level,
		AddSource: opts.Debug,
	})
	if opts.Console != nil {
		handler = fanout{handler, slog.NewTextHandler(opts.Console, &slog.HandlerOptions{Level: level})}
	}

	return slog.New(handler).With(slog.String("app", opts.AppName)), logFile, nil
}

// Component returns a child logger tagged with the component name.
func Component(logger *slog.Logger, name string) *slog.Logger {
	return logger.With(slog.String("component", name))
}

// fanout sends each record to every handler that accepts its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// rotateIfNeeded checks the log file size and rotates if it exceeds maxLogSize.
// Rotation renames current.log → current.log.1, .1 → .2, etc., keeping maxLogBackups.
func rotateIfNeeded(logPath string) error {
	info, err := os.Stat(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Nothing to rotate
		}
		return err
	}

	if info.Size() < maxLogSize {
		return nil
	}

	for i := maxLogBackups; i >= 1; i-- {
		src := fmt.Sprintf("%s.%d", logPath, i)
		dst := fmt.Sprintf("%s.%d", logPath, i+1)
		if i == maxLogBackups {
			os.Remove(src)
		} else {
			os.Rename(src, dst)
		}
	}

	if err := os.Rename(logPath, logPath+".1"); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}

	return nil
}

// logFilePath returns the platform-specific log file path.
func logFilePath(appName string) (string, error) {
	if appName == "" {
		return "", fmt.Errorf("app name must not be empty")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", appName, appName+".log"), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		if state := os.Getenv("XDG_STATE_HOME"); state != "" {
			return filepath.Join(state, appName, appName+".log"), nil
		}
		return filepath.Join(homeDir, ".local", "state", appName, appName+".log"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, appName, "Logs", appName+".log"), nil
	default:
		return "", fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// NewNopLogger returns a logger that discards everything. Used by tests.
func NewNopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}
