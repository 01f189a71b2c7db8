// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/crewforge/backoffice/internal/auth"
	"github.com/crewforge/backoffice/internal/domain"
	"github.com/crewforge/backoffice/internal/roles"
)

type contextKey string

// ActorKey is the request-context key holding the authenticated domain.Actor.
const ActorKey contextKey = "backoffice_actor"

// AuthMiddleware validates the bearer token and installs the actor context.
func AuthMiddleware(tokenManager *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, "No authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondWithError(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			claims, err := tokenManager.Validate(parts[1])
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			actor := domain.Actor{Role: roles.Role(claims.Role)}
			if actor.UserID, err = uuid.Parse(claims.UserID); err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token subject")
				return
			}
			if claims.OrgID != "" {
				if actor.OrgID, err = uuid.Parse(claims.OrgID); err != nil {
					respondWithError(w, http.StatusUnauthorized, "Invalid token organization")
					return
				}
			}

			ctx := context.WithValue(r.Context(), ActorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorFromContext returns the actor installed by AuthMiddleware.
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(ActorKey).(domain.Actor)
	return actor, ok
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
