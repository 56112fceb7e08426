package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/thrivelog/thrivelog/internal/ctxkeys"
	"github.com/thrivelog/thrivelog/internal/render"
	"github.com/thrivelog/thrivelog/internal/service"
)

// AuthMiddleware resolves the user from a bearer token or the auth cookie and
// adds it to the context. Requests without valid credentials continue anonymously.
func AuthMiddleware(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, fromCookie := credentials(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := authService.UserFromJWT(token)
			if err != nil {
				if !errors.Is(err, service.ErrInvalidToken) {
					slog.Error("failed to load user from token", "error", err, "path", r.URL.Path)
				}
				if fromCookie {
					authService.ClearJWTCookie(w)
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxkeys.WithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// credentials returns the bearer token if present, otherwise the auth cookie.
func credentials(r *http.Request) (token string, fromCookie bool) {
	if token, ok := bearerToken(r); ok {
		return token, false
	}

	cookie, err := r.Cookie(service.AuthCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// RequireAuth rejects anonymous requests with 401
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.User(r.Context()) == nil {
			render.ErrorMessage(w, http.StatusUnauthorized, render.CodeUnauthenticated, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	}
}
