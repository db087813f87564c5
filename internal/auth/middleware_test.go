package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func protectedEcho(t *testing.T) (http.Handler, *int, *int) {
	var gotClinic, gotUser int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClinic = ClinicIDFromContext(r.Context())
		gotUser = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return Middleware(next), &gotClinic, &gotUser
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	handler, gotClinic, gotUser := protectedEcho(t)

	token := signToken(t, jwt.MapClaims{
		"clinic_id": 42,
		"user_id":   7,
		"email":     "staff@example.com",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 42, *gotClinic)
	assert.Equal(t, 7, *gotUser)
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	handler, _, _ := protectedEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	handler, _, _ := protectedEcho(t)

	token := signToken(t, jwt.MapClaims{
		"clinic_id": 42,
		"user_id":   7,
		"exp":       time.Now().Add(-time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "another-secret")
	handler, _, _ := protectedEcho(t)

	token := signToken(t, jwt.MapClaims{
		"clinic_id": 42,
		"user_id":   7,
		"exp":       time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsTokenWithoutTenantClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	handler, _, _ := protectedEcho(t)

	token := signToken(t, jwt.MapClaims{
		"email": "staff@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
