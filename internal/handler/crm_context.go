// internal/handler/crm_context.go
package handler

import (
	"net/http"

	"github.com/crewforge/backoffice/internal/service"
)

type CrmContextHandler struct {
	service *service.CrmContextService
}

func NewCrmContextHandler(service *service.CrmContextService) *CrmContextHandler {
	return &CrmContextHandler{service: service}
}

// ListDocuments exports CRM entities as uniform context documents.
func (h *CrmContextHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, err := resolveOrgID(r, actor)
	if err != nil {
		handleError(w, err)
		return
	}

	input := service.ListDocumentsInput{
		EntityType:      r.URL.Query().Get("entityType"),
		IncludeArchived: queryBool(r, "includeArchived"),
		Page:            queryInt(r, "page"),
		Limit:           queryInt(r, "limit"),
	}

	page, err := h.service.ListDocuments(r.Context(), actor, orgID, input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}
