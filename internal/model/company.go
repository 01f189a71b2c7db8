// internal/model/company.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Company is a CRM company node, tenant-routed. NormalizedName backs the
// active-uniqueness constraint per organization.
type Company struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrgID           uuid.UUID  `gorm:"type:uuid;not null;index" json:"org_id"`
	Name            string     `gorm:"type:text;not null" json:"name"`
	NormalizedName  string     `gorm:"type:text;not null;index" json:"normalized_name"`
	ExternalID      *string    `gorm:"type:text" json:"external_id,omitempty"`
	Website         *string    `gorm:"type:text" json:"website,omitempty"`
	MainEmail       *string    `gorm:"type:text" json:"main_email,omitempty"`
	MainPhone       *string    `gorm:"type:text" json:"main_phone,omitempty"`
	CompanyTypeKeys StringList `gorm:"type:jsonb;not null;default:'[]'" json:"company_type_keys"`
	TagKeys         StringList `gorm:"type:jsonb;not null;default:'[]'" json:"tag_keys"`
	Rating          *float64   `json:"rating,omitempty"`
	Notes           *string    `gorm:"type:text" json:"notes,omitempty"`
	ArchivedAt      *time.Time `gorm:"index" json:"archived_at,omitempty"`
	PIIStripped     bool       `gorm:"not null;default:false" json:"pii_stripped"`
	LegalHold       bool       `gorm:"not null;default:false" json:"legal_hold"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
