// Package render writes JSON responses and maps errors to HTTP statuses.
package render

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/thrivelog/thrivelog/internal/apperr"
	"github.com/thrivelog/thrivelog/internal/ctxkeys"
)

const (
	CodeInvalidArgument = "invalid_argument"
	CodeNotFound        = "not_found"
	CodeQuotaExceeded   = "quota_exceeded"
	CodeUnauthenticated = "unauthenticated"
	CodeConflict        = "conflict"
	CodeForbidden       = "forbidden"
	CodeRateLimited     = "rate_limited"
	CodeUnavailable     = "unavailable"
	CodeInternal        = "internal"
)

type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("render failed", "error", err)
	}
}

// Error writes err as an error body. Errors without a known kind are logged and
// reported as a generic internal error.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status, code := Status(err)
	if status == http.StatusInternalServerError {
		attrs := []any{"error", err, "method", r.Method, "path", r.URL.Path, "request_id", ctxkeys.RequestID(r.Context())}
		if user := ctxkeys.User(r.Context()); user != nil {
			attrs = append(attrs, "user_id", user.ID)
		}
		slog.Error("request failed", attrs...)
	}

	ErrorMessage(w, status, code, apperr.Message(err))
}

func ErrorMessage(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, ErrorBody{Error: ErrorDetail{Code: code, Message: message}})
}

// Status maps err to its HTTP status and error code.
func Status(err error) (int, string) {
	switch kind := apperr.Kind(err); {
	case errors.Is(kind, apperr.ErrInvalidArgument):
		return http.StatusBadRequest, CodeInvalidArgument
	case errors.Is(kind, apperr.ErrQuotaExceeded):
		return http.StatusBadRequest, CodeQuotaExceeded
	case errors.Is(kind, apperr.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(kind, apperr.ErrUnauthenticated):
		return http.StatusUnauthorized, CodeUnauthenticated
	case errors.Is(kind, apperr.ErrConflict):
		return http.StatusConflict, CodeConflict
	}
	return http.StatusInternalServerError, CodeInternal
}
