// internal/model/person.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/crewforge/backoffice/internal/normalize"
)

type PersonType string

const (
	PersonInternalStaff PersonType = "internal_staff"
	PersonInternalUnion PersonType = "internal_union"
	PersonExternal      PersonType = "external_person"
)

// PersonEmail keeps both the raw and canonical forms of an address.
type PersonEmail struct {
	Value      string     `json:"value"`
	Normalized string     `json:"normalized"`
	Label      *string    `json:"label,omitempty"`
	IsPrimary  bool       `json:"is_primary"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
}

// PersonPhone keeps both the raw and E.164 forms of a number.
type PersonPhone struct {
	Value     string  `json:"value"`
	E164      string  `json:"e164"`
	Label     *string `json:"label,omitempty"`
	IsPrimary bool    `json:"is_primary"`
}

type PersonEmails []PersonEmail

func (e *PersonEmails) Scan(value interface{}) error {
	if value == nil {
		*e = PersonEmails{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, e)
	case string:
		return json.Unmarshal([]byte(v), e)
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, e)
	}
}

func (e PersonEmails) Value() (driver.Value, error) {
	if e == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(e)
}

type PersonPhones []PersonPhone

func (p *PersonPhones) Scan(value interface{}) error {
	if value == nil {
		*p = PersonPhones{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, p)
	}
}

func (p PersonPhones) Value() (driver.Value, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p)
}

// Person is a CRM person node, tenant-routed.
type Person struct {
	ID                uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrgID             uuid.UUID    `gorm:"type:uuid;not null;index" json:"org_id"`
	ExternalID        *string      `gorm:"type:text" json:"external_id,omitempty"`
	PersonType        PersonType   `gorm:"type:text;not null;index" json:"person_type"`
	FirstName         *string      `gorm:"type:text" json:"first_name,omitempty"`
	LastName          *string      `gorm:"type:text" json:"last_name,omitempty"`
	DisplayName       string       `gorm:"type:text;not null;index" json:"display_name"`
	Emails            PersonEmails `gorm:"type:jsonb;not null;default:'[]'" json:"emails"`
	Phones            PersonPhones `gorm:"type:jsonb;not null;default:'[]'" json:"phones"`
	PrimaryEmail      *string      `gorm:"type:text;index" json:"primary_email,omitempty"`
	PrimaryPhoneE164  *string      `gorm:"type:text;index" json:"primary_phone_e164,omitempty"`
	TagKeys           StringList   `gorm:"type:jsonb;not null;default:'[]'" json:"tag_keys"`
	SkillKeys         StringList   `gorm:"type:jsonb;not null;default:'[]'" json:"skill_keys"`
	DepartmentKey     *string      `gorm:"type:text" json:"department_key,omitempty"`
	OrgLocationID     *uuid.UUID   `gorm:"type:uuid;index" json:"org_location_id,omitempty"`
	ReportsToPersonID *uuid.UUID   `gorm:"type:uuid;index" json:"reports_to_person_id,omitempty"`
	IronworkerNumber  *string      `gorm:"type:text;index" json:"ironworker_number,omitempty"`
	UnionLocal        *string      `gorm:"type:text" json:"union_local,omitempty"`
	Rating            *float64     `json:"rating,omitempty"`
	Notes             *string      `gorm:"type:text" json:"notes,omitempty"`
	CompanyID         *uuid.UUID   `gorm:"type:uuid;index" json:"company_id,omitempty"`
	CompanyLocationID *uuid.UUID   `gorm:"type:uuid;index" json:"company_location_id,omitempty"`
	Title             *string      `gorm:"type:text" json:"title,omitempty"`
	UserID            *uuid.UUID   `gorm:"type:uuid;index" json:"user_id,omitempty"`
	ArchivedAt        *time.Time   `gorm:"index" json:"archived_at,omitempty"`
	PIIStripped       bool         `gorm:"not null;default:false" json:"pii_stripped"`
	LegalHold         bool         `gorm:"not null;default:false" json:"legal_hold"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// DerivePrimaries backfills normalized forms and elects exactly one primary
// email and phone, mirroring what the CRM import path expects.
func (p *Person) DerivePrimaries() {
	primaryEmail := ""
	primarySeen := false
	for i := range p.Emails {
		e := &p.Emails[i]
		if e.Normalized == "" {
			e.Normalized = normalize.Email(e.Value)
		}
		if e.Normalized == "" {
			continue
		}
		if e.IsPrimary && !primarySeen {
			primaryEmail = e.Normalized
			primarySeen = true
		} else {
			e.IsPrimary = false
		}
		if primaryEmail == "" {
			primaryEmail = e.Normalized
		}
	}
	if primaryEmail != "" && !primarySeen {
		for i := range p.Emails {
			if p.Emails[i].Normalized == primaryEmail {
				p.Emails[i].IsPrimary = true
				break
			}
		}
	}
	if primaryEmail != "" {
		p.PrimaryEmail = &primaryEmail
	} else {
		p.PrimaryEmail = nil
	}

	primaryPhone := ""
	primarySeen = false
	for i := range p.Phones {
		ph := &p.Phones[i]
		if ph.E164 == "" {
			ph.E164 = normalize.PhoneE164(ph.Value)
		}
		if ph.E164 == "" {
			continue
		}
		if ph.IsPrimary && !primarySeen {
			primaryPhone = ph.E164
			primarySeen = true
		} else {
			ph.IsPrimary = false
		}
		if primaryPhone == "" {
			primaryPhone = ph.E164
		}
	}
	if primaryPhone != "" && !primarySeen {
		for i := range p.Phones {
			if p.Phones[i].E164 == primaryPhone {
				p.Phones[i].IsPrimary = true
				break
			}
		}
	}
	if primaryPhone != "" {
		p.PrimaryPhoneE164 = &primaryPhone
	} else {
		p.PrimaryPhoneE164 = nil
	}
}
