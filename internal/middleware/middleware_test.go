package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrivelog/thrivelog/internal/ctxkeys"
	"github.com/thrivelog/thrivelog/internal/db/dbtest"
	"github.com/thrivelog/thrivelog/internal/model"
	"github.com/thrivelog/thrivelog/internal/repository"
	"github.com/thrivelog/thrivelog/internal/service"
)

func newAuthService(t *testing.T) (*service.AuthService, *model.User) {
	t.Helper()
	users := repository.NewUserRepository(dbtest.New(t))
	user, err := users.Upsert(&model.User{Subject: "auth0|mw", Email: "mw@example.com"})
	require.NoError(t, err)
	return service.NewAuthService(users, "test-secret", false, time.Hour), user
}

// whoami responds with the user ID from the context, or 204 when anonymous.
func whoami(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	if user == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	_, _ = w.Write([]byte(user.ID))
}

func TestAuthMiddlewareBearer(t *testing.T) {
	auth, user := newAuthService(t)
	token, err := auth.GenerateJWT(user)
	require.NoError(t, err)

	h := AuthMiddleware(auth)(http.HandlerFunc(whoami))
	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.ID, rec.Body.String())
}

func TestAuthMiddlewareCookie(t *testing.T) {
	auth, user := newAuthService(t)
	token, err := auth.GenerateJWT(user)
	require.NoError(t, err)

	h := AuthMiddleware(auth)(http.HandlerFunc(whoami))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: service.AuthCookieName, Value: token})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, user.ID, rec.Body.String())
}

func TestAuthMiddlewareInvalidCookieIsCleared(t *testing.T) {
	auth, _ := newAuthService(t)

	h := AuthMiddleware(auth)(http.HandlerFunc(whoami))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: service.AuthCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, service.AuthCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
}

func TestAuthMiddlewareInvalidBearerStaysAnonymous(t *testing.T) {
	auth, _ := newAuthService(t)

	h := AuthMiddleware(auth)(http.HandlerFunc(whoami))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer nope")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestRequireAuth(t *testing.T) {
	h := RequireAuth(whoami)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/habits", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"unauthenticated","message":"authentication required"}}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/api/habits", nil)
	req = req.WithContext(ctxkeys.WithUser(req.Context(), &model.User{ID: "u1"}))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "u1", rec.Body.String())
}

func TestCSRFProtection(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, ctxkeys.CSRFToken(r.Context()))
		w.WriteHeader(http.StatusOK)
	})
	h := CSRFProtection(ok)

	// Safe request issues a token
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/habits", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	token := rec.Header().Get(csrfHeader)
	require.NotEmpty(t, token)

	// Cookie-authenticated POST without header is rejected
	req := httptest.NewRequest(http.MethodPost, "/api/habits", nil)
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: token})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Matching header passes
	req = httptest.NewRequest(http.MethodPost, "/api/habits", nil)
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: token})
	req.Header.Set(csrfHeader, token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Bearer clients skip the check
	req = httptest.NewRequest(http.MethodPost, "/api/habits", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiterWindow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"))

	now = now.Add(61 * time.Second)
	assert.True(t, rl.Allow("a"))

	now = now.Add(10 * time.Minute)
	rl.cleanup()
	assert.Empty(t, rl.requests)
}

func TestRateLimitUserKeysByUser(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()
	h := RateLimitUser(rl)(whoami)

	call := func(userID string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/recommendations", nil)
		req = req.WithContext(ctxkeys.WithUser(req.Context(), &model.User{ID: userID}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("u1"))
	assert.Equal(t, http.StatusTooManyRequests, call("u1"))
	assert.Equal(t, http.StatusOK, call("u2"))
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", getClientIP(req))

	req.Header.Set("X-Real-IP", "10.0.0.2")
	assert.Equal(t, "10.0.0.2", getClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.3")
	assert.Equal(t, "203.0.113.9", getClientIP(req))
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxkeys.RequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
}

func TestRecover(t *testing.T) {
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}), RequestID, Recover, SecurityHeaders)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.JSONEq(t, `{"error":{"code":"internal","message":"internal server error"}}`, rec.Body.String())
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}), mw("a"), mw("b"), mw("c"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"a", "b", "c"}, order)
}
