// internal/handler/event_log.go
package handler

import (
	"net/http"

	"github.com/crewforge/backoffice/internal/service"
)

type EventLogHandler struct {
	service *service.EventLogService
}

func NewEventLogHandler(service *service.EventLogService) *EventLogHandler {
	return &EventLogHandler{service: service}
}

// List returns org-scoped audit events.
func (h *EventLogHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, err := resolveOrgID(r, actor)
	if err != nil {
		handleError(w, err)
		return
	}

	entityID, err := queryUUID(r, "entityId")
	if err != nil {
		handleError(w, err)
		return
	}

	input := service.ListEventsInput{
		EventType:  r.URL.Query().Get("eventType"),
		EntityType: r.URL.Query().Get("entityType"),
		EntityID:   entityID,
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
	}

	page, err := h.service.List(r.Context(), actor, orgID, input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}
