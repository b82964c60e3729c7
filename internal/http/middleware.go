package http

import (
	"net/http"
	"strings"

	"github.com/tiendafacil/pos-backend/internal/auth"
	"github.com/tiendafacil/pos-backend/internal/http/handlers"
	rl "github.com/tiendafacil/pos-backend/internal/http/rate_limiter"
)

// AuthMiddleware verifies the bearer token and attaches its claims to the
// request context. Claims are self-contained; no database round-trip.
func AuthMiddleware(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				handlers.WriteError(w, http.StatusUnauthorized, "Acceso denegado, token faltante")
				return
			}

			claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				handlers.WriteError(w, http.StatusUnauthorized, "Token inválido")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.NewContext(r.Context(), claims)))
		})
	}
}

// LoginRateLimit applies a per-IP token bucket. A nil limiter disables the
// check (used by the test suites).
func LoginRateLimit(limiter *rl.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter != nil && !limiter.Visitor(handlers.ClientIP(r)).Allow() {
				handlers.WriteError(w, http.StatusTooManyRequests, "Demasiadas peticiones, intenta más tarde")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
