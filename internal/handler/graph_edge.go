// internal/handler/graph_edge.go
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/crewforge/backoffice/internal/domain"
	"github.com/crewforge/backoffice/internal/model"
	"github.com/crewforge/backoffice/internal/service"
)

type GraphEdgeHandler struct {
	service *service.GraphEdgeService
}

func NewGraphEdgeHandler(service *service.GraphEdgeService) *GraphEdgeHandler {
	return &GraphEdgeHandler{service: service}
}

// Create validates and persists a new edge.
func (h *GraphEdgeHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, err := resolveOrgID(r, actor)
	if err != nil {
		handleError(w, err)
		return
	}

	var input service.CreateEdgeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	edge, err := h.service.Create(r.Context(), actor, orgID, input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, edge)
}

// List returns scoped edges with optional filters and pagination.
func (h *GraphEdgeHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, err := resolveOrgID(r, actor)
	if err != nil {
		handleError(w, err)
		return
	}

	fromNodeID, err := queryUUID(r, "fromNodeId")
	if err != nil {
		handleError(w, err)
		return
	}
	toNodeID, err := queryUUID(r, "toNodeId")
	if err != nil {
		handleError(w, err)
		return
	}

	input := service.ListEdgesInput{
		EdgeTypeKey:     r.URL.Query().Get("edgeTypeKey"),
		FromNodeType:    r.URL.Query().Get("fromNodeType"),
		FromNodeID:      fromNodeID,
		ToNodeType:      r.URL.Query().Get("toNodeType"),
		ToNodeID:        toNodeID,
		IncludeArchived: queryBool(r, "includeArchived"),
		Page:            queryInt(r, "page"),
		Limit:           queryInt(r, "limit"),
	}

	page, err := h.service.List(r.Context(), actor, orgID, input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// Get returns one edge by id.
func (h *GraphEdgeHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, err := resolveOrgID(r, actor)
	if err != nil {
		handleError(w, err)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid edge ID")
		return
	}

	edge, err := h.service.GetByID(r.Context(), actor, orgID, id, queryBool(r, "includeArchived"))
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, edge)
}

// Archive soft-deletes an edge.
func (h *GraphEdgeHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Archive)
}

// Unarchive restores an edge if no active identity collision results.
func (h *GraphEdgeHandler) Unarchive(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Unarchive)
}

func (h *GraphEdgeHandler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, actor domain.Actor, orgID, id uuid.UUID) (*model.GraphEdge, error)) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, err := resolveOrgID(r, actor)
	if err != nil {
		handleError(w, err)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid edge ID")
		return
	}

	edge, err := op(r.Context(), actor, orgID, id)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, edge)
}
