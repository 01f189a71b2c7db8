// internal/model/organization.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type DatastoreType string

const (
	DatastoreShared    DatastoreType = "shared"
	DatastoreDedicated DatastoreType = "dedicated"
)

// Organization is the tenant record. It lives in the shared control-plane
// database and carries the routing fields the tenant resolver reads.
type Organization struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name            string           `gorm:"type:text;uniqueIndex;not null" json:"name"`
	PrimaryDomain   *string          `gorm:"type:citext;uniqueIndex" json:"primary_domain,omitempty"`
	OwnerUserID     *uuid.UUID       `gorm:"type:uuid" json:"owner_user_id,omitempty"`
	OwnerEmail      *string          `gorm:"type:citext" json:"owner_email,omitempty"`
	CreatedByUserID *uuid.UUID       `gorm:"type:uuid" json:"created_by_user_id,omitempty"`
	Metadata        JSONMap          `gorm:"type:jsonb;not null;default:'{}'" json:"metadata"`
	UseDedicatedDB  bool             `gorm:"not null;default:false" json:"use_dedicated_db"`
	DatastoreType   DatastoreType    `gorm:"type:text;not null;default:'shared'" json:"datastore_type"`
	DatabaseURI     *string          `gorm:"type:text" json:"-"`
	DatabaseName    *string          `gorm:"type:text" json:"database_name,omitempty"`
	LastMigratedAt  *time.Time       `json:"last_migrated_at,omitempty"`
	DatastoreLog    DatastoreHistory `gorm:"type:jsonb;not null;default:'[]'" json:"datastore_log"`
	ArchivedAt      *time.Time       `gorm:"index" json:"archived_at,omitempty"`
	PIIStripped     bool             `gorm:"not null;default:false" json:"pii_stripped"`
	LegalHold       bool             `gorm:"not null;default:false" json:"legal_hold"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// DatastoreSwitch records one shared/dedicated transition.
type DatastoreSwitch struct {
	FromType   DatastoreType `json:"from_type"`
	ToType     DatastoreType `json:"to_type"`
	FromURI    *string       `json:"from_uri,omitempty"`
	ToURI      *string       `json:"to_uri,omitempty"`
	ActorID    *uuid.UUID    `json:"actor_id,omitempty"`
	SwitchedAt time.Time     `json:"switched_at"`
}

// DatastoreHistory is a jsonb-backed list of datastore switches.
type DatastoreHistory []DatastoreSwitch

// Scan implements the sql.Scanner interface
func (h *DatastoreHistory) Scan(value interface{}) error {
	if value == nil {
		*h = DatastoreHistory{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, h)
	case string:
		return json.Unmarshal([]byte(v), h)
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, h)
	}
}

// Value implements the driver.Valuer interface
func (h DatastoreHistory) Value() (driver.Value, error) {
	if h == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(h)
}
