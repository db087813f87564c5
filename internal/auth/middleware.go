package auth

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	clinicIDKey contextKey = "clinic_id"
	userIDKey   contextKey = "user_id"
)

// Middleware validates the bearer token and stores the clinic and user IDs
// in the request context. Every tenant-scoped route goes through it.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			http.Error(w, "Server misconfigured", http.StatusInternalServerError)
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		clinicID, okClinic := claims["clinic_id"].(float64)
		userID, okUser := claims["user_id"].(float64)
		if !okClinic || !okUser {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), clinicIDKey, int(clinicID))
		ctx = context.WithValue(ctx, userIDKey, int(userID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClinicIDFromContext returns the authenticated clinic ID, or 0 when the
// request did not pass through the middleware.
func ClinicIDFromContext(ctx context.Context) int {
	id, _ := ctx.Value(clinicIDKey).(int)
	return id
}

func UserIDFromContext(ctx context.Context) int {
	id, _ := ctx.Value(userIDKey).(int)
	return id
}
