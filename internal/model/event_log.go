// internal/model/event_log.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// EventLog is an append-only audit record kept in the shared control-plane
// database regardless of tenant routing.
type EventLog struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EventType   string     `gorm:"type:text;not null;index" json:"event_type"`
	Action      string     `gorm:"type:text;index" json:"action,omitempty"`
	EntityType  string     `gorm:"type:text;index" json:"entity_type,omitempty"`
	EntityID    *uuid.UUID `gorm:"type:uuid;index" json:"entity_id,omitempty"`
	ActorUserID *uuid.UUID `gorm:"type:uuid;index" json:"actor_user_id,omitempty"`
	OrgID       *uuid.UUID `gorm:"type:uuid;index" json:"org_id,omitempty"`
	Metadata    JSONMap    `gorm:"type:jsonb;not null;default:'{}'" json:"metadata"`
	RequestID   *string    `gorm:"type:text" json:"request_id,omitempty"`
	ArchivedAt  *time.Time `gorm:"index" json:"archived_at,omitempty"`
	PIIStripped bool       `gorm:"not null;default:false" json:"pii_stripped"`
	LegalHold   bool       `gorm:"not null;default:false" json:"legal_hold"`
	CreatedAt   time.Time  `gorm:"index" json:"created_at"`
}
