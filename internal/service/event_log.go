// internal/service/event_log.go
package service

import (
	"context"
	"log/slog"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/crewforge/backoffice/internal/domain"
	"github.com/crewforge/backoffice/internal/model"
	"github.com/crewforge/backoffice/internal/repository"
)

// EventLogService persists audit events. Recording is best-effort: a failed
// write is logged and never fails the operation that produced the event.
type EventLogService struct {
	repo repository.EventLogRepositoryIface
}

func NewEventLogService(repo repository.EventLogRepositoryIface) *EventLogService {
	return &EventLogService{repo: repo}
}

// EventInput describes one audit event.
type EventInput struct {
	EventType  string
	Action     string
	EntityType string
	EntityID   *uuid.UUID
	Actor      *domain.Actor
	OrgID      *uuid.UUID
	Metadata   model.JSONMap
}

// Record persists an audit event. Safe to call on a nil service.
func (s *EventLogService) Record(ctx context.Context, in EventInput) {
	if s == nil || s.repo == nil {
		return
	}

	entry := &model.EventLog{
		EventType:  in.EventType,
		Action:     in.Action,
		EntityType: in.EntityType,
		EntityID:   in.EntityID,
		OrgID:      in.OrgID,
		Metadata:   in.Metadata,
	}
	if entry.Metadata == nil {
		entry.Metadata = model.JSONMap{}
	}
	if in.Actor != nil {
		userID := in.Actor.UserID
		entry.ActorUserID = &userID
	}
	if reqID := chimw.GetReqID(ctx); reqID != "" {
		entry.RequestID = &reqID
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		slog.Error("recording audit event",
			"eventType", in.EventType,
			"entityType", in.EntityType,
			"error", err)
	}
}

type ListEventsInput struct {
	EventType  string
	EntityType string
	EntityID   *uuid.UUID
	Page       int
	Limit      int
}

type EventPage struct {
	Data  []*model.EventLog `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// List returns org-scoped audit events, newest first.
func (s *EventLogService) List(ctx context.Context, actor domain.Actor, orgID uuid.UUID, in ListEventsInput) (*EventPage, error) {
	if err := requireCoreAccess(actor, orgID); err != nil {
		return nil, err
	}

	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 {
		limit = 25
	}
	if limit > 100 {
		limit = 100
	}

	filter := repository.EventFilter{
		EventType:  in.EventType,
		EntityType: in.EntityType,
		EntityID:   in.EntityID,
		OrgID:      &orgID,
	}
	rows, total, err := s.repo.ListPage(ctx, filter, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*model.EventLog{}
	}
	return &EventPage{Data: rows, Total: total, Page: page, Limit: limit}, nil
}
