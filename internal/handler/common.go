// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/crewforge/backoffice/internal/domain"
	"github.com/crewforge/backoffice/internal/middleware"
)

type ErrorResponse struct {
	BaseResponse
	Error string `json:"error"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// handleError maps domain error kinds to HTTP status codes, surfacing the
// message verbatim so callers see which entity or rule was violated.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		respondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrBadRequest), errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrConflict):
		respondWithError(w, http.StatusConflict, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// requireActor pulls the authenticated actor from the request context.
func requireActor(w http.ResponseWriter, r *http.Request) (domain.Actor, bool) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Missing actor context")
	}
	return actor, ok
}

// resolveOrgID picks the target organization: privileged actors may override
// via ?orgId=, everyone else is pinned to their own organization. Missing org
// context is Forbidden.
func resolveOrgID(r *http.Request, actor domain.Actor) (uuid.UUID, error) {
	if raw := r.URL.Query().Get("orgId"); raw != "" {
		orgID, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, domain.BadRequestf("invalid orgId %q", raw)
		}
		if orgID != actor.OrgID && !actor.Privileged() {
			return uuid.Nil, domain.Forbiddenf("actor is not a member of organization %s", orgID)
		}
		return orgID, nil
	}
	if actor.OrgID == uuid.Nil {
		return uuid.Nil, domain.Forbiddenf("missing organization context")
	}
	return actor.OrgID, nil
}

func queryInt(r *http.Request, key string) int {
	if raw := r.URL.Query().Get(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	}
	return 0
}

func queryBool(r *http.Request, key string) bool {
	raw := r.URL.Query().Get(key)
	return raw == "true" || raw == "1"
}

func queryUUID(r *http.Request, key string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domain.BadRequestf("invalid %s %q", key, raw)
	}
	return &id, nil
}
