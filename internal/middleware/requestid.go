package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/thrivelog/thrivelog/internal/ctxkeys"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags each request with an ID, reusing a well-formed one from the
// caller, and echoes it in the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, id)
		ctx := ctxkeys.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
