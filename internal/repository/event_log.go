// internal/repository/event_log.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crewforge/backoffice/internal/model"
)

// EventFilter narrows event listings. Zero-valued fields are ignored.
type EventFilter struct {
	EventType  string
	EntityType string
	EntityID   *uuid.UUID
	OrgID      *uuid.UUID
	Since      *time.Time
	Until      *time.Time
}

// EventLogRepositoryIface defines the interface for the event log repository.
// Events live in the shared control-plane database only.
type EventLogRepositoryIface interface {
	Create(ctx context.Context, event *model.EventLog) error
	ListPage(ctx context.Context, filter EventFilter, offset, limit int) ([]*model.EventLog, int64, error)
}

// EventLogRepository implements EventLogRepositoryIface.
type EventLogRepository struct {
	db *gorm.DB
}

func NewEventLogRepository(db *gorm.DB) *EventLogRepository {
	return &EventLogRepository{db: db}
}

func (r *EventLogRepository) Create(ctx context.Context, event *model.EventLog) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("creating event log entry: %w", err)
	}
	return nil
}

// ListPage returns a page of events plus the total match count, newest first.
func (r *EventLogRepository) ListPage(ctx context.Context, filter EventFilter, offset, limit int) ([]*model.EventLog, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.EventLog{}).Where("archived_at IS NULL")
	if filter.EventType != "" {
		q = q.Where("event_type = ?", filter.EventType)
	}
	if filter.EntityType != "" {
		q = q.Where("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != nil {
		q = q.Where("entity_id = ?", *filter.EntityID)
	}
	if filter.OrgID != nil {
		q = q.Where("org_id = ?", *filter.OrgID)
	}
	if filter.Since != nil {
		q = q.Where("created_at >= ?", *filter.Since)
	}
	if filter.Until != nil {
		q = q.Where("created_at < ?", *filter.Until)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting event log entries: %w", err)
	}

	var events []*model.EventLog
	err := q.Order("created_at DESC, id ASC").Offset(offset).Limit(limit).Find(&events).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing event log entries: %w", err)
	}
	return events, count, nil
}
