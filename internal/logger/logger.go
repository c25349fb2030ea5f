package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

// Log is the global logger instance
var Log *slog.Logger

// Init builds the process logger and installs it as the slog default.
// Development uses the text format, production JSON. When sentryDSN is set,
// records at error level are also forwarded to Sentry.
func Init(isDev bool, level string, sentryDSN string) *slog.Logger {
	handlers := []slog.Handler{newBaseHandler(os.Stdout, isDev, ParseLevel(level))}

	if sentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              sentryDSN,
			TracesSampleRate: 1.0,
		})
		if err == nil {
			handlers = append(handlers, slogsentry.Option{
				Level: slog.LevelError,
			}.NewSentryHandler())
		}
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}

	Log = slog.New(handler)
	slog.SetDefault(Log)
	return Log
}

func newBaseHandler(w io.Writer, isDev bool, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if isDev {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// ParseLevel accepts debug, info, warn or error (case-insensitive) and
// falls back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// Flush waits for buffered Sentry events; it is a no-op without Sentry.
func Flush() {
	sentry.Flush(2 * time.Second)
}
