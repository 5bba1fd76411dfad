// Package logger writes songbook's debug log. The TUI owns the terminal, so
// everything goes to a file rather than stderr.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// DefaultLogPath is where the log goes when Init is never called.
const DefaultLogPath = "/tmp/songbook-debug.log"

var (
	mu       sync.Mutex
	once     sync.Once
	level    = new(slog.LevelVar)
	base     *slog.Logger
	logFile  *os.File
	logPath  string
	initDone bool
)

// SetDebug switches between debug and info level output. It may be called
// before or after Init.
func SetDebug(enabled bool) {
	if enabled {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(slog.LevelInfo)
}

// Init opens the log file at path. Calling it again after a successful
// Init is a no-op until Reset.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if initDone {
		return nil
	}
	return open(path)
}

// open must be called with mu held.
func open(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logPath = path
	logFile = f
	base = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	initDone = true

	base.Info("Logger initialized", "path", path)
	return nil
}

func ensureInit() {
	if initDone {
		return
	}
	once.Do(func() {
		if err := open(DefaultLogPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	})
}

// Path returns the file currently receiving log output.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	base = nil
}

// Reset drops all logger state so Init can open a different file. Tests use
// it between cases.
func Reset() {
	Close()

	mu.Lock()
	defer mu.Unlock()
	initDone = false
	once = sync.Once{}
	logPath = ""
	level.Set(slog.LevelInfo)
}

func with(attr slog.Attr) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if base == nil {
		return slog.Default()
	}
	return base.With(attr)
}

// WithComponent returns a slog.Logger with the component attribute pre-attached.
//
//	log := logger.WithComponent("nav")
//	log.Info("song selected", "songID", id)
func WithComponent(component string) *slog.Logger {
	return with(slog.String("component", component))
}

// WithSession returns a slog.Logger tagged with a reading-session id.
func WithSession(sessionID string) *slog.Logger {
	return with(slog.String("sessionID", sessionID))
}
