// Package roles defines the platform role vocabulary and the hierarchy used
// for access checks. Roles expand downward: an OrgAdmin acts with every role
// an Admin has, and so on.
package roles

// Role identifies a named level of access.
type Role string

const (
	SuperAdmin        Role = "superadmin"
	PlatformAdmin     Role = "platform_admin"
	OrgOwner          Role = "org_owner"
	OrgAdmin          Role = "org_admin"
	Manager           Role = "manager"
	Viewer            Role = "viewer"
	Admin             Role = "admin"
	ComplianceOfficer Role = "compliance_officer"
	SecurityOfficer   Role = "security_officer"
	PM                Role = "pm"
	Estimator         Role = "estimator"
	Engineer          Role = "engineer"
	Detailer          Role = "detailer"
	Transporter       Role = "transporter"
	Foreman           Role = "foreman"
	Superintendent    Role = "superintendent"
	QAQC              Role = "qaqc"
	HS                Role = "hs"
	Purchasing        Role = "purchasing"
	Compliance        Role = "compliance"
	Security          Role = "security"
	Finance           Role = "finance"
	User              Role = "user"
)

// Priority orders roles from most to least privileged. Used to resolve a
// primary role and to compare actors for assignment checks.
var Priority = []Role{
	SuperAdmin, PlatformAdmin, OrgOwner, OrgAdmin, Admin, Manager,
	ComplianceOfficer, SecurityOfficer, PM, Estimator, Engineer, Detailer,
	Transporter, Foreman, Superintendent, QAQC, HS, Purchasing,
	Compliance, Security, Finance, Viewer, User,
}

var baseRoles = []Role{
	Manager, ComplianceOfficer, SecurityOfficer, PM, Estimator, Engineer,
	Detailer, Transporter, Foreman, Superintendent, QAQC, HS, Purchasing,
	Compliance, Security, Finance, Viewer, User,
}

var hierarchy = map[Role][]Role{
	SuperAdmin:        Priority,
	PlatformAdmin:     withoutRole(Priority, SuperAdmin),
	OrgOwner:          append([]Role{OrgOwner, OrgAdmin, Admin}, baseRoles...),
	OrgAdmin:          append([]Role{OrgAdmin, Admin}, baseRoles...),
	Admin:             append([]Role{Admin}, baseRoles...),
	Manager:           {Manager, Viewer, User},
	Viewer:            {Viewer, User},
	ComplianceOfficer: {ComplianceOfficer, Compliance, User},
	SecurityOfficer:   {SecurityOfficer, Security, User},
	PM:                {PM, Viewer, User},
	Estimator:         {Estimator, Viewer, User},
	Engineer:          {Engineer, Viewer, User},
	Detailer:          {Detailer, Viewer, User},
	Transporter:       {Transporter, Viewer, User},
	Foreman:           {Foreman, Viewer, User},
	Superintendent:    {Superintendent, Viewer, User},
	QAQC:              {QAQC, Viewer, User},
	HS:                {HS, Viewer, User},
	Purchasing:        {Purchasing, Viewer, User},
	Compliance:        {Compliance, Viewer, User},
	Security:          {Security, Viewer, User},
	Finance:           {Finance, Viewer, User},
	User:              {User},
}

func withoutRole(rs []Role, drop Role) []Role {
	out := make([]Role, 0, len(rs))
	for _, r := range rs {
		if r != drop {
			out = append(out, r)
		}
	}
	return out
}

// Normalize de-duplicates and drops empty entries, preserving order.
func Normalize(rs []Role) []Role {
	seen := make(map[Role]struct{}, len(rs))
	out := make([]Role, 0, len(rs))
	for _, r := range rs {
		if r == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// Merge combines a primary role with a role list, defaulting to User when
// nothing remains.
func Merge(primary Role, rs []Role) []Role {
	merged := make([]Role, 0, len(rs)+1)
	merged = append(merged, rs...)
	if primary != "" {
		merged = append(merged, primary)
	}
	normalized := Normalize(merged)
	if len(normalized) == 0 {
		return []Role{User}
	}
	return normalized
}

// Expand returns the set of roles implied by rs via the hierarchy.
func Expand(rs []Role) []Role {
	expanded := make(map[Role]struct{})
	var out []Role
	for _, r := range Normalize(rs) {
		implied, ok := hierarchy[r]
		if !ok {
			implied = []Role{r}
		}
		for _, i := range implied {
			if _, seen := expanded[i]; seen {
				continue
			}
			expanded[i] = struct{}{}
			out = append(out, i)
		}
	}
	return out
}

// HasAny reports whether expanding rs yields at least one of the allowed roles.
func HasAny(rs []Role, allowed ...Role) bool {
	effective := make(map[Role]struct{})
	for _, r := range Expand(rs) {
		effective[r] = struct{}{}
	}
	for _, a := range allowed {
		if _, ok := effective[a]; ok {
			return true
		}
	}
	return false
}

// ResolvePrimary picks the highest-priority role present in rs.
func ResolvePrimary(rs []Role) Role {
	normalized := Merge("", rs)
	for _, r := range Priority {
		for _, have := range normalized {
			if have == r {
				return r
			}
		}
	}
	return User
}

// CanAssign reports whether an actor holding actorRoles may grant targetRoles:
// the actor's strongest effective role must rank at or above the target's
// strongest role.
func CanAssign(actorRoles, targetRoles []Role) bool {
	if len(targetRoles) == 0 {
		return false
	}
	actorTop := topIndex(Expand(actorRoles))
	targetTop := topIndex(targetRoles)
	if actorTop < 0 || targetTop < 0 {
		return false
	}
	return actorTop <= targetTop
}

func topIndex(rs []Role) int {
	have := make(map[Role]struct{}, len(rs))
	for _, r := range rs {
		have[r] = struct{}{}
	}
	for i, r := range Priority {
		if _, ok := have[r]; ok {
			return i
		}
	}
	return -1
}
