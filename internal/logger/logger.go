package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
)

// Initialize sets up the global logger with the specified level and format
func Initialize(level, format string) {
	InitializeWithWriter(os.Stdout, level, format)
}

// InitializeWithWriter is Initialize with an explicit destination.
// format is "json" or anything else for text.
func InitializeWithWriter(w io.Writer, level, format string) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	}

	l := slog.New(handler).With("app", "rentwheels")
	mu.Lock()
	defaultLogger = l
	mu.Unlock()
	slog.SetDefault(l)
}

// ParseLevel maps a config level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Get returns the default logger, initializing an info/text logger on first use.
func Get() *slog.Logger {
	mu.RLock()
	l := defaultLogger
	mu.RUnlock()
	if l != nil {
		return l
	}
	Initialize("info", "text")
	return Get()
}

func Debug(msg string, args ...any) { Get().Debug(msg, args...) }
func Info(msg string, args ...any) { Get().Info(msg, args...) }
func Warn(msg string, args ...any) { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// fields prepends fixed key/value pairs to caller-supplied args.
func fields(fixed []any, args []any) []any {
	return append(fixed, args...)
}

// outcome logs success at debug and failure at error with the error attached.
func outcome(ok, failed string, err error, attrs []any) {
	if err != nil {
		Get().Error(failed, append(attrs, "error", err)...)
		return
	}
	Get().Debug(ok, attrs...)
}

// Method tracing. Entry and exit are debug; an exit with error is logged at
// error so failures show up at the default level.

func EnterMethod(methodName string, args ...any) {
	Get().Debug("→ Method entered", fields([]any{"method", methodName, "event", "enter"}, args)...)
}

func ExitMethod(methodName string, args ...any) {
	Get().Debug("← Method exited", fields([]any{"method", methodName, "event", "exit"}, args)...)
}

func ExitMethodWithError(methodName string, err error, args ...any) {
	outcome("← Method exited", "← Method exited with error", err,
		fields([]any{"method", methodName, "event", "exit"}, args))
}

// External resources: database and third-party calls.

func DatabaseCall(operation, query string, args ...any) {
	Get().Debug("→ Database call", fields([]any{"operation", operation, "query", query}, args)...)
}

func DatabaseResult(operation string, rowsAffected int64, err error, args ...any) {
	outcome("← Database call succeeded", "← Database call failed", err,
		fields([]any{"operation", operation, "rows_affected", rowsAffected}, args))
}

func ExternalServiceCall(service, operation string, args ...any) {
	Get().Debug("→ External service call", fields([]any{"service", service, "operation", operation}, args)...)
}

func ExternalServiceResult(service, operation string, err error, args ...any) {
	outcome("← External service call succeeded", "← External service call failed", err,
		fields([]any{"service", service, "operation", operation}, args))
}
