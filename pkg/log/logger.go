package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu sync.Mutex
	// closer is the log file opened by the last Init, if any.
	closer io.Closer
)

// Init initializes the global logger.
// It configures the default slog logger to write to the specified path (or stderr)
// at the specified level. Stdout is reserved for generated output.
//
// path: Log file path. If empty, logs to stderr.
// level: Log level ("debug", "info", "warn", "error"). Defaults to "info".
func Init(path string, level string) error {
	var w io.Writer = os.Stderr
	var f *os.File
	if path != "" {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}

		var err error
		f, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		w = f
	}

	mu.Lock()
	defer mu.Unlock()
	setDefault(w, level)
	if closer != nil {
		closer.Close()
		closer = nil
	}
	if f != nil {
		closer = f
	}
	return nil
}

// Close reverts the default logger to stderr at info level and releases the
// log file opened by Init, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	setDefault(os.Stderr, "info")
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

func setDefault(w io.Writer, level string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, opts)))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Default returns the logger installed by Init.
func Default() *slog.Logger {
	return slog.Default()
}
