// internal/service/access.go
package service

import (
	"github.com/google/uuid"

	"github.com/crewforge/backoffice/internal/domain"
	"github.com/crewforge/backoffice/internal/roles"
)

// coreRoles are the roles allowed to read or mutate taxonomy, graph edge and
// context-export data. Checked after hierarchy expansion.
var coreRoles = []roles.Role{
	roles.OrgOwner, roles.OrgAdmin, roles.Admin,
	roles.SuperAdmin, roles.PlatformAdmin,
}

// requireCoreAccess gates an operation on the actor's role and org scope.
// Only SuperAdmin/PlatformAdmin may target an organization other than their
// own.
func requireCoreAccess(actor domain.Actor, orgID uuid.UUID) error {
	if !roles.HasAny([]roles.Role{actor.EffectiveRole()}, coreRoles...) {
		return domain.Forbiddenf("role %q may not manage CRM core data", actor.EffectiveRole())
	}
	if orgID == uuid.Nil {
		return domain.Forbiddenf("missing organization context")
	}
	if orgID != actor.OrgID && !actor.Privileged() {
		return domain.Forbiddenf("actor is not a member of organization %s", orgID)
	}
	return nil
}
