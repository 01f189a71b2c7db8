// internal/domain/actor.go
package domain

import (
	"github.com/google/uuid"

	"github.com/crewforge/backoffice/internal/roles"
)

// Actor is the already-authenticated caller identity supplied by the session
// layer. The core only inspects role membership and org-id equality.
type Actor struct {
	UserID uuid.UUID
	OrgID  uuid.UUID
	Role   roles.Role
}

// Privileged reports whether the actor may operate across organizations.
func (a Actor) Privileged() bool {
	return a.Role == roles.SuperAdmin || a.Role == roles.PlatformAdmin
}

// EffectiveRole returns the actor's role, defaulting to User when unset.
func (a Actor) EffectiveRole() roles.Role {
	if a.Role == "" {
		return roles.User
	}
	return a.Role
}
