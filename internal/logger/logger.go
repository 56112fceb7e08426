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

type Options struct {
	Development bool
	Level       string // debug, info, warn or error; empty picks by environment
	SentryDSN   string
	Environment string
	Output      io.Writer // defaults to stdout
}

// Init initializes the global logger
// Development: Text format, Debug level by default
// Production: JSON format, Info level by default
// Errors additionally go to Sentry when a DSN is set
func Init(opts Options) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: parseLevel(opts.Level, opts.Development)}

	var handlers []slog.Handler
	if opts.Development {
		handlers = append(handlers, slog.NewTextHandler(out, handlerOpts))
	} else {
		handlers = append(handlers, slog.NewJSONHandler(out, handlerOpts))
	}

	if opts.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         opts.SentryDSN,
			Environment: opts.Environment,
		})
		if err != nil {
			slog.New(handlers[0]).Warn("sentry init failed, errors stay local", "error", err)
		} else {
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
}

// Flush waits for buffered Sentry events before shutdown
func Flush() {
	sentry.Flush(2 * time.Second)
}

func parseLevel(s string, development bool) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if development {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
