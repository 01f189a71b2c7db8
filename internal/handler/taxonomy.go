// internal/handler/taxonomy.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crewforge/backoffice/internal/service"
)

type TaxonomyHandler struct {
	service *service.TaxonomyService
}

func NewTaxonomyHandler(service *service.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{service: service}
}

// Get returns the taxonomy document for a namespace, creating it on first
// read.
func (h *TaxonomyHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, err := resolveOrgID(r, actor)
	if err != nil {
		handleError(w, err)
		return
	}

	doc, err := h.service.Get(r.Context(), actor, orgID, chi.URLParam(r, "namespace"))
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, doc)
}

// Put reconciles the namespace to the desired value list.
func (h *TaxonomyHandler) Put(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, err := resolveOrgID(r, actor)
	if err != nil {
		handleError(w, err)
		return
	}

	var input service.PutTaxonomyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	doc, err := h.service.Put(r.Context(), actor, orgID, chi.URLParam(r, "namespace"), input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, doc)
}
