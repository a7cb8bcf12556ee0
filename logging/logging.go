package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	current   atomic.Pointer[slog.Logger]
	debugMode atomic.Bool
)

func init() {
	current.Store(discard())
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetupLogging configures logging.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, structured logs go to that file and Bubble Tea logs are enabled too.
func SetupLogging(filename string) (cleanup func(), err error) {
	if filename == "" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.SetOutput(io.Discard)
		current.Store(discard())
		debugMode.Store(false)
		return func() {}, nil
	}

	// routes the stdlib logger (and Bubble Tea's own logging) to the file
	f, err := tea.LogToFile(filename, "sfsheet")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	SetOutput(f, slog.LevelDebug)
	debugMode.Store(true)

	return func() { f.Close() }, nil
}

// SetOutput points the structured logger at w.
func SetOutput(w io.Writer, level slog.Level) {
	current.Store(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// Logger returns the active structured logger.
func Logger() *slog.Logger { return current.Load() }

// IsDebugMode reports whether a debug log file is active.
func IsDebugMode() bool { return debugMode.Load() }

// Debug logs msg with slog key/value pairs.
func Debug(msg string, args ...any) { current.Load().Debug(msg, args...) }

func Debugf(format string, args ...any) { current.Load().Debug(fmt.Sprintf(format, args...)) }
func Infof(format string, args ...any)  { current.Load().Info(fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any)  { current.Load().Warn(fmt.Sprintf(format, args...)) }
func Errorf(format string, args ...any) { current.Load().Error(fmt.Sprintf(format, args...)) }
