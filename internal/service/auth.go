package service

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thrivelog/thrivelog/internal/apperr"
	"github.com/thrivelog/thrivelog/internal/model"
	"github.com/thrivelog/thrivelog/internal/repository"
	"github.com/thrivelog/thrivelog/internal/validation"
)

var (
	ErrInvalidToken   = apperr.New(apperr.ErrUnauthenticated, "invalid or expired token")
	ErrMissingSubject = apperr.New(apperr.ErrInvalidArgument, "identity provider returned no subject")
)

const AuthCookieName = "auth_token"

type AuthService struct {
	userRepository repository.UserRepository
	jwtSecret      string
	isProduction   bool
	jwtExpiry      time.Duration
}

func NewAuthService(
	userRepository repository.UserRepository,
	jwtSecret string,
	isProduction bool,
	jwtExpiry time.Duration,
) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		jwtSecret:      jwtSecret,
		isProduction:   isProduction,
		jwtExpiry:      jwtExpiry,
	}
}

// Identity is what the identity provider tells us about a user after login.
type Identity struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// AuthenticateOAuth creates the user on first login and refreshes the stored
// email, name and picture on every later one.
func (s *AuthService) AuthenticateOAuth(identity Identity) (*model.User, error) {
	subject := strings.TrimSpace(identity.Subject)
	if subject == "" {
		return nil, ErrMissingSubject
	}

	email := strings.TrimSpace(strings.ToLower(identity.Email))
	if email != "" {
		if err := validation.ValidateEmail(email); err != nil {
			return nil, err
		}
	}

	user, err := s.userRepository.Upsert(&model.User{
		Subject: subject,
		Email:   email,
		Name:    strings.TrimSpace(identity.Name),
		Picture: strings.TrimSpace(identity.Picture),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	slog.Info("user authenticated via oauth", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// UserForToken resolves a local user by email for minting development tokens.
func (s *AuthService) UserForToken(email string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}

	user, err := s.userRepository.ByEmail(email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to lookup user: %w", err)
	}

	return s.userRepository.Upsert(&model.User{Subject: "local|" + email, Email: email})
}

func (s *AuthService) GenerateJWT(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.jwtExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (s *AuthService) VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// UserFromJWT verifies tokenString and loads the user it names.
func (s *AuthService) UserFromJWT(tokenString string) (*model.User, error) {
	claims, err := s.VerifyJWT(tokenString)
	if err != nil {
		return nil, err
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepository.ByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return user, nil
}

func (s *AuthService) TokenExpiry() time.Time {
	return time.Now().Add(s.jwtExpiry)
}

func (s *AuthService) SetJWTCookie(w http.ResponseWriter, token string, expiry time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Expires:  expiry,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *AuthService) ClearJWTCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}
