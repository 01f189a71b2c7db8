// internal/model/office.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Office is an organization-internal location ("org_location" node type),
// tenant-routed. Offices may form a tree via ParentOrgLocationID.
type Office struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrgID               uuid.UUID  `gorm:"type:uuid;not null;index" json:"org_id"`
	Name                string     `gorm:"type:text;not null" json:"name"`
	NormalizedName      string     `gorm:"type:text;not null;index" json:"normalized_name"`
	Description         *string    `gorm:"type:text" json:"description,omitempty"`
	Address             *string    `gorm:"type:text" json:"address,omitempty"`
	Timezone            *string    `gorm:"type:text" json:"timezone,omitempty"`
	OrgLocationTypeKey  *string    `gorm:"type:text" json:"org_location_type_key,omitempty"`
	TagKeys             StringList `gorm:"type:jsonb;not null;default:'[]'" json:"tag_keys"`
	ParentOrgLocationID *uuid.UUID `gorm:"type:uuid;index" json:"parent_org_location_id,omitempty"`
	SortOrder           *int       `json:"sort_order,omitempty"`
	ArchivedAt          *time.Time `gorm:"index" json:"archived_at,omitempty"`
	PIIStripped         bool       `gorm:"not null;default:false" json:"pii_stripped"`
	LegalHold           bool       `gorm:"not null;default:false" json:"legal_hold"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
