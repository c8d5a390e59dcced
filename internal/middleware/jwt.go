package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const AdminKey contextKey = "admin"

const tokenTTL = 12 * time.Hour

// IssueToken signs a console token for the given admin login.
func IssueToken(secretKey, login string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   login,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
	})
	return token.SignedString([]byte(secretKey))
}

// JWTMiddleware requires a valid bearer token. With an empty secret key the console runs unauthenticated.
func JWTMiddleware(secretKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secretKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, "authorization header missing", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeError(w, "authorization header format must be Bearer {token}", http.StatusUnauthorized)
				return
			}

			claims := &jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method")
				}
				return []byte(secretKey), nil
			})

			if err != nil || !token.Valid {
				writeError(w, "invalid token", http.StatusUnauthorized)
				return
			}

			if claims.Subject == "" {
				writeError(w, "subject missing in token claims", http.StatusUnauthorized)
				return
			}

			ctx := WithAdmin(r.Context(), claims.Subject)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithAdmin(ctx context.Context, login string) context.Context {
	return context.WithValue(ctx, AdminKey, login)
}

func GetAdmin(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(AdminKey).(string)
	return login, ok
}
