package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrivelog/thrivelog/internal/config"
	"github.com/thrivelog/thrivelog/internal/db/dbtest"
	"github.com/thrivelog/thrivelog/internal/repository"
	"github.com/thrivelog/thrivelog/internal/service"
)

// fakeAuth0 serves the token and userinfo endpoints of an Auth0 tenant.
func fakeAuth0(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("code") != "good-code" {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access-123","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("GET /userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sub":"auth0|42","email":"Grace@Example.com","name":"Grace","picture":"https://example.com/g.png"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newAuthHandler(t *testing.T, domain string) (*AuthHandler, repository.UserRepository) {
	t.Helper()

	users := repository.NewUserRepository(dbtest.New(t))
	cfg := &config.Config{
		AppURL:            "http://localhost:8090",
		Auth0Domain:       domain,
		Auth0ClientID:     "client-id",
		Auth0ClientSecret: "client-secret",
		Auth0Audience:     "https://api.thrivelog.test",
	}
	authService := service.NewAuthService(users, "test-secret", false, time.Hour)
	return NewAuthHandler(authService, cfg), users
}

func TestAuth0Issuer(t *testing.T) {
	assert.Equal(t, "https://tenant.eu.auth0.com", auth0Issuer("tenant.eu.auth0.com"))
	assert.Equal(t, "https://tenant.eu.auth0.com", auth0Issuer("https://tenant.eu.auth0.com/"))
	assert.Equal(t, "http://127.0.0.1:9999", auth0Issuer("http://127.0.0.1:9999"))
}

func TestLoginRedirectsWithState(t *testing.T) {
	h, _ := newAuthHandler(t, "tenant.auth0.com")

	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodGet, "/auth/login", nil))

	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "tenant.auth0.com", loc.Host)
	assert.Equal(t, "/authorize", loc.Path)
	assert.Equal(t, "client-id", loc.Query().Get("client_id"))
	assert.Equal(t, "http://localhost:8090/auth/callback", loc.Query().Get("redirect_uri"))
	assert.Equal(t, "https://api.thrivelog.test", loc.Query().Get("audience"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, oauthStateCookie, cookies[0].Name)
	assert.Equal(t, cookies[0].Value, loc.Query().Get("state"))
}

func TestLoginDisabledWithoutAuth0(t *testing.T) {
	h, _ := newAuthHandler(t, "")

	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodGet, "/auth/login", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func callback(h *AuthHandler, state, cookieState, code string) *httptest.ResponseRecorder {
	q := url.Values{"state": {state}, "code": {code}}
	req := httptest.NewRequest(http.MethodGet, "/auth/callback?"+q.Encode(), nil)
	if cookieState != "" {
		req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: cookieState})
	}
	rec := httptest.NewRecorder()
	h.Callback(rec, req)
	return rec
}

func TestCallbackCreatesUserAndSession(t *testing.T) {
	srv := fakeAuth0(t)
	h, users := newAuthHandler(t, srv.URL)

	rec := callback(h, "state-1", "state-1", "good-code")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "grace@example.com", body.User.Email)
	assert.Equal(t, "Grace", body.User.Name)

	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == service.AuthCookieName {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.Equal(t, body.Token, session.Value)

	stored, err := users.BySubject("auth0|42")
	require.NoError(t, err)
	assert.Equal(t, body.User.ID, stored.ID)

	// a second login reuses the same user
	rec = callback(h, "state-2", "state-2", "good-code")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, stored.ID, body.User.ID)
}

func TestCallbackRejectsBadState(t *testing.T) {
	srv := fakeAuth0(t)
	h, _ := newAuthHandler(t, srv.URL)

	assert.Equal(t, http.StatusUnauthorized, callback(h, "state-1", "other", "good-code").Code)
	assert.Equal(t, http.StatusUnauthorized, callback(h, "state-1", "", "good-code").Code)
	assert.Equal(t, http.StatusUnauthorized, callback(h, "", "", "good-code").Code)
}

func TestCallbackRejectsBadCode(t *testing.T) {
	srv := fakeAuth0(t)
	h, _ := newAuthHandler(t, srv.URL)

	assert.Equal(t, http.StatusUnauthorized, callback(h, "s", "s", "bad-code").Code)
	assert.Equal(t, http.StatusUnauthorized, callback(h, "s", "s", "").Code)
}

func TestLogout(t *testing.T) {
	h, _ := newAuthHandler(t, "tenant.auth0.com")

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, strings.HasPrefix(body["logout_url"], "https://tenant.auth0.com/v2/logout?"))
	assert.Contains(t, body["logout_url"], "client_id=client-id")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, service.AuthCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
}
