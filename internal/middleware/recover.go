package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/thrivelog/thrivelog/internal/ctxkeys"
	"github.com/thrivelog/thrivelog/internal/render"
)

// Recover turns a panicking handler into a 500 response. Panics are reported
// to Sentry first when a client is configured.
func Recover(next http.Handler) http.Handler {
	reporter := sentryhttp.New(sentryhttp.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         2 * time.Second,
	})
	reported := reporter.Handle(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			slog.Error("panic recovered",
				"panic", rec,
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", ctxkeys.RequestID(r.Context()),
				"stack", string(debug.Stack()),
			)
			render.ErrorMessage(w, http.StatusInternalServerError, render.CodeInternal, "internal server error")
		}()

		reported.ServeHTTP(w, r)
	})
}
