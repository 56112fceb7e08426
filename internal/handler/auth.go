package handler

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/thrivelog/thrivelog/internal/config"
	"github.com/thrivelog/thrivelog/internal/ctxkeys"
	"github.com/thrivelog/thrivelog/internal/model"
	"github.com/thrivelog/thrivelog/internal/render"
	"github.com/thrivelog/thrivelog/internal/service"
	"golang.org/x/oauth2"
)

const oauthStateCookie = "oauth_state"

type AuthHandler struct {
	authService *service.AuthService
	oauthConfig *oauth2.Config
	issuer      string
	appURL      string
	audience    string
	enabled     bool
}

func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *AuthHandler {
	issuer := auth0Issuer(cfg.Auth0Domain)
	return &AuthHandler{
		authService: authService,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.Auth0ClientID,
			ClientSecret: cfg.Auth0ClientSecret,
			RedirectURL:  strings.TrimRight(cfg.AppURL, "/") + "/auth/callback",
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  issuer + "/authorize",
				TokenURL: issuer + "/oauth/token",
			},
		},
		issuer:   issuer,
		appURL:   cfg.AppURL,
		audience: cfg.Auth0Audience,
		enabled:  cfg.Auth0Enabled(),
	}
}

// auth0Issuer turns a tenant domain into a base URL. Full URLs pass through.
func auth0Issuer(domain string) string {
	domain = strings.TrimRight(domain, "/")
	if strings.HasPrefix(domain, "http://") || strings.HasPrefix(domain, "https://") {
		return domain
	}
	return "https://" + domain
}

type loginResponse struct {
	User      *model.User `json:"user"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Login redirects to the Auth0 universal login page
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.enabled {
		render.ErrorMessage(w, http.StatusServiceUnavailable, render.CodeUnavailable, "login is not configured")
		return
	}

	state := generateOAuthState()

	cfg := ctxkeys.Config(r.Context())
	isProduction := cfg != nil && cfg.IsProduction()

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   600, // 10 minutes
	})

	var opts []oauth2.AuthCodeOption
	if h.audience != "" {
		opts = append(opts, oauth2.SetAuthURLParam("audience", h.audience))
	}

	http.Redirect(w, r, h.oauthConfig.AuthCodeURL(state, opts...), http.StatusTemporaryRedirect)
}

// Callback completes the authorization code flow, stores the user and issues
// a session JWT both as cookie and in the response body.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	if !h.enabled {
		render.ErrorMessage(w, http.StatusServiceUnavailable, render.CodeUnavailable, "login is not configured")
		return
	}

	state := r.URL.Query().Get("state")
	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || state == "" || subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(state)) != 1 {
		slog.Warn("oauth state validation failed", "error", err)
		render.ErrorMessage(w, http.StatusUnauthorized, render.CodeUnauthenticated, "OAuth authentication failed. Please try again.")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:   oauthStateCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	if errCode := r.URL.Query().Get("error"); errCode != "" {
		slog.Warn("oauth provider returned error", "error", errCode, "description", r.URL.Query().Get("error_description"))
		render.ErrorMessage(w, http.StatusUnauthorized, render.CodeUnauthenticated, "OAuth authentication failed. Please try again.")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		slog.Warn("oauth callback missing code")
		render.ErrorMessage(w, http.StatusUnauthorized, render.CodeUnauthenticated, "OAuth authentication failed. Please try again.")
		return
	}

	token, err := h.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		slog.Error("oauth token exchange failed", "error", err)
		render.ErrorMessage(w, http.StatusUnauthorized, render.CodeUnauthenticated, "OAuth authentication failed. Please try again.")
		return
	}

	identity, err := h.userInfo(r, token)
	if err != nil {
		slog.Error("failed to get oauth user info", "error", err)
		render.ErrorMessage(w, http.StatusUnauthorized, render.CodeUnauthenticated, "OAuth authentication failed. Please try again.")
		return
	}

	user, err := h.authService.AuthenticateOAuth(identity)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	jwtToken, err := h.authService.GenerateJWT(user)
	if err != nil {
		render.Error(w, r, fmt.Errorf("failed to generate jwt: %w", err))
		return
	}

	expiresAt := h.authService.TokenExpiry()
	h.authService.SetJWTCookie(w, jwtToken, expiresAt)

	slog.Info("user logged in with oauth", "user_id", user.ID, "email", user.Email)
	render.JSON(w, http.StatusOK, loginResponse{User: user, Token: jwtToken, ExpiresAt: expiresAt})
}

func (h *AuthHandler) userInfo(r *http.Request, token *oauth2.Token) (service.Identity, error) {
	var identity service.Identity

	client := h.oauthConfig.Client(r.Context(), token)
	resp, err := client.Get(h.issuer + "/userinfo")
	if err != nil {
		return identity, err
	}
	defer func() {
		closeErr := resp.Body.Close()
		if closeErr != nil {
			slog.Error("failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return identity, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	err = json.NewDecoder(resp.Body).Decode(&identity)
	if err != nil {
		return identity, fmt.Errorf("failed to decode userinfo: %w", err)
	}
	return identity, nil
}

// Logout clears the session cookie and returns the provider logout URL
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)

	body := map[string]string{"status": "logged_out"}
	if h.enabled {
		q := url.Values{}
		q.Set("client_id", h.oauthConfig.ClientID)
		q.Set("returnTo", h.appURL)
		body["logout_url"] = h.issuer + "/v2/logout?" + q.Encode()
	}

	render.JSON(w, http.StatusOK, body)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, http.StatusOK, ctxkeys.User(r.Context()))
}

func generateOAuthState() string {
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	if err != nil {
		panic("failed to generate oauth state: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(bytes)
}
