// internal/model/taxonomy.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrgTaxonomy holds one controlled-vocabulary namespace for one organization.
// The value list is a single jsonb document; writes are last-write-wins at the
// row level.
type OrgTaxonomy struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrgID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_org_taxonomies_org_namespace,priority:1" json:"org_id"`
	Namespace string         `gorm:"type:text;not null;uniqueIndex:idx_org_taxonomies_org_namespace,priority:2" json:"namespace"`
	Values    TaxonomyValues `gorm:"type:jsonb;not null;default:'[]'" json:"values"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TaxonomyValue is one key in a namespace. Key is immutable lowercase
// snake_case; ArchivedAt nil means active.
type TaxonomyValue struct {
	Key        string     `json:"key"`
	Label      string     `json:"label"`
	SortOrder  *int       `json:"sort_order,omitempty"`
	Color      *string    `json:"color,omitempty"`
	Metadata   JSONMap    `json:"metadata,omitempty"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
}

// Active reports whether the value has not been archived.
func (v TaxonomyValue) Active() bool { return v.ArchivedAt == nil }

// TaxonomyValues is the jsonb-backed ordered value list.
type TaxonomyValues []TaxonomyValue

// Scan implements the sql.Scanner interface
func (t *TaxonomyValues) Scan(value interface{}) error {
	if value == nil {
		*t = TaxonomyValues{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, t)
	}
}

// Value implements the driver.Valuer interface
func (t TaxonomyValues) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t)
}

// ActiveKeys returns the keys of all non-archived values, in document order.
func (t TaxonomyValues) ActiveKeys() []string {
	var keys []string
	for _, v := range t {
		if v.Active() {
			keys = append(keys, v.Key)
		}
	}
	return keys
}

// Find returns the value with the given key, or nil.
func (t TaxonomyValues) Find(key string) *TaxonomyValue {
	for i := range t {
		if t[i].Key == key {
			return &t[i]
		}
	}
	return nil
}
