// internal/model/company_location.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CompanyLocation is a site belonging to a CRM company, tenant-routed.
type CompanyLocation struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrgID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"org_id"`
	CompanyID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"company_id"`
	Name           string     `gorm:"type:text;not null" json:"name"`
	NormalizedName string     `gorm:"type:text;not null;index" json:"normalized_name"`
	ExternalID     *string    `gorm:"type:text" json:"external_id,omitempty"`
	Timezone       *string    `gorm:"type:text" json:"timezone,omitempty"`
	Email          *string    `gorm:"type:text" json:"email,omitempty"`
	Phone          *string    `gorm:"type:text" json:"phone,omitempty"`
	AddressLine1   *string    `gorm:"type:text" json:"address_line1,omitempty"`
	AddressLine2   *string    `gorm:"type:text" json:"address_line2,omitempty"`
	City           *string    `gorm:"type:text" json:"city,omitempty"`
	Region         *string    `gorm:"type:text" json:"region,omitempty"`
	Postal         *string    `gorm:"type:text" json:"postal,omitempty"`
	Country        *string    `gorm:"type:text" json:"country,omitempty"`
	TagKeys        StringList `gorm:"type:jsonb;not null;default:'[]'" json:"tag_keys"`
	Notes          *string    `gorm:"type:text" json:"notes,omitempty"`
	ArchivedAt     *time.Time `gorm:"index" json:"archived_at,omitempty"`
	PIIStripped    bool       `gorm:"not null;default:false" json:"pii_stripped"`
	LegalHold      bool       `gorm:"not null;default:false" json:"legal_hold"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
