package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iffertmedia/dashboard-backend/internal/config"
)

// ErrInvalidCredentials is returned on a failed login; the HTTP layer turns
// it into the user-facing error message.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Service is the admin authentication boundary. Credentials are static and
// configured through the environment; a successful login yields a signed
// bearer token.
type Service struct {
	cfg config.Auth
}

func NewService(cfg config.Auth) *Service {
	return &Service{cfg: cfg}
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Login checks the credentials and issues an admin token.
func (s *Service) Login(username, password string) (string, error) {
	if username != s.cfg.AdminUsername || password != s.cfg.AdminPassword {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	})
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// IsAdmin reports whether a bearer token is a valid, unexpired admin token.
func (s *Service) IsAdmin(tokenString string) bool {
	if tokenString == "" {
		return false
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return false
	}

	c, ok := parsed.Claims.(*claims)
	return ok && c.Role == "admin"
}

// RequireAdmin guards admin routes with a bearer-token check.
func (s *Service) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == header || !s.IsAdmin(token) {
			http.Error(w, "admin access required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
