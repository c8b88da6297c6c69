package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SlogLevel maps the level onto log/slog.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogEntry is the structured log entry passed to the TUI.
type LogEntry struct {
	Timestamp  time.Time
	Level      LogLevel
	Subsystem  string
	Message    string
	Err        error
	Attributes []slog.Attr
}

const tuiChannelBufferSize = 2048

var (
	mu            sync.Mutex
	defaultLogger *slog.Logger
	tuiLogChannel chan LogEntry
	filterLevel   = atomic.NewInt32(int32(LevelInfo))
	isTuiMode     = atomic.NewBool(false)
	dropped       = atomic.NewUint64(0)
)

func initCommon(mode string, level LogLevel, output io.Writer, channelBufferSize int) <-chan LogEntry {
	mu.Lock()
	defer mu.Unlock()

	filterLevel.Store(int32(level))
	dropped.Store(0)
	opts := &slog.HandlerOptions{Level: level.SlogLevel()}

	if mode == "tui" {
		if channelBufferSize <= 0 {
			channelBufferSize = tuiChannelBufferSize
		}
		tuiLogChannel = make(chan LogEntry, channelBufferSize)
		isTuiMode.Store(true)
		// stderr is hidden behind the alt screen; it only matters before the program starts
		defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, opts))
		return tuiLogChannel
	}

	isTuiMode.Store(false)
	defaultLogger = slog.New(slog.NewTextHandler(output, opts))
	slog.SetDefault(defaultLogger)
	return nil
}

// InitForTUI initializes the logging system for TUI mode.
// It sets up a channel that the TUI will listen to for log entries.
func InitForTUI(level LogLevel) <-chan LogEntry {
	return initCommon("tui", level, os.Stderr, tuiChannelBufferSize)
}

// InitForCLI initializes the logging system for CLI mode, writing text records to output.
func InitForCLI(level LogLevel, output io.Writer) {
	initCommon("cli", level, output, 0)
}

// Dropped returns how many TUI entries were discarded because the channel was full.
func Dropped() uint64 {
	return dropped.Load()
}

func logInternal(level LogLevel, subsystem string, err error, messageFmt string, args ...interface{}) {
	if level < LogLevel(filterLevel.Load()) {
		return
	}

	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}
	now := time.Now()

	mu.Lock()
	// CloseTUIChannel takes mu too, so the channel cannot close under this send.
	if isTuiMode.Load() && tuiLogChannel != nil {
		entry := LogEntry{
			Timestamp: now,
			Level:     level,
			Subsystem: subsystem,
			Message:   msg,
			Err:       err,
		}
		// The UI goroutine may itself be the caller, so never block on a full buffer.
		select {
		case tuiLogChannel <- entry:
		default:
			dropped.Inc()
		}
		mu.Unlock()
		return
	}
	logger := defaultLogger
	mu.Unlock()
	if logger == nil {
		fmt.Fprintf(os.Stderr, "[LOGGING_ERROR] Logger not initialized. Log: %s [%s] %s\n", now.Format(time.RFC3339), level, msg)
		return
	}

	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	logger.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...interface{}) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}

// CloseTUIChannel closes the TUI log channel and returns logging to stderr.
// Should be called on application shutdown.
func CloseTUIChannel() {
	mu.Lock()
	defer mu.Unlock()
	if tuiLogChannel != nil {
		isTuiMode.Store(false)
		close(tuiLogChannel)
		tuiLogChannel = nil
	}
}

// FormatEntry renders an entry as a single activity log line.
func FormatEntry(e LogEntry) string {
	line := fmt.Sprintf("%s [%s] [%s] %s", e.Timestamp.Format("15:04:05"), e.Level, e.Subsystem, e.Message)
	if e.Err != nil {
		line += fmt.Sprintf(": %v", e.Err)
	}
	return line
}
