package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iffertmedia/dashboard-backend/internal/auth"
	"github.com/iffertmedia/dashboard-backend/internal/config"
)

func testService() *auth.Service {
	return auth.NewService(config.Auth{
		AdminUsername: "admin",
		AdminPassword: "iffert2024",
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
	})
}

func TestLoginIssuesAdminToken(t *testing.T) {
	svc := testService()

	token, err := svc.Login("admin", "iffert2024")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, svc.IsAdmin(token))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := testService()

	_, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login("root", "iffert2024")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestIsAdminRejectsForgedAndExpiredTokens(t *testing.T) {
	svc := testService()

	assert.False(t, svc.IsAdmin(""))
	assert.False(t, svc.IsAdmin("not-a-token"))

	// Token signed with a different secret.
	other := auth.NewService(config.Auth{
		AdminUsername: "admin",
		AdminPassword: "iffert2024",
		JWTSecret:     "other-secret",
		TokenTTL:      time.Hour,
	})
	forged, err := other.Login("admin", "iffert2024")
	require.NoError(t, err)
	assert.False(t, svc.IsAdmin(forged))

	// Expired token.
	expiring := auth.NewService(config.Auth{
		AdminUsername: "admin",
		AdminPassword: "iffert2024",
		JWTSecret:     "test-secret",
		TokenTTL:      -time.Minute,
	})
	expired, err := expiring.Login("admin", "iffert2024")
	require.NoError(t, err)
	assert.False(t, svc.IsAdmin(expired))
}

func TestRequireAdminMiddleware(t *testing.T) {
	svc := testService()
	handler := svc.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	// Missing header.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/export", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Header without the Bearer scheme.
	token, err := svc.Login("admin", "iffert2024")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/admin/export", nil)
	req.Header.Set("Authorization", token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid bearer token.
	req = httptest.NewRequest(http.MethodGet, "/admin/export", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
