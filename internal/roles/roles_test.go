package roles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crewforge/backoffice/internal/roles"
)

func TestExpand(t *testing.T) {
	t.Run("org admin implies admin and base roles", func(t *testing.T) {
		expanded := roles.Expand([]roles.Role{roles.OrgAdmin})
		assert.Contains(t, expanded, roles.OrgAdmin)
		assert.Contains(t, expanded, roles.Admin)
		assert.Contains(t, expanded, roles.Viewer)
		assert.Contains(t, expanded, roles.User)
		assert.NotContains(t, expanded, roles.OrgOwner)
		assert.NotContains(t, expanded, roles.PlatformAdmin)
	})

	t.Run("platform admin implies everything but superadmin", func(t *testing.T) {
		expanded := roles.Expand([]roles.Role{roles.PlatformAdmin})
		assert.Contains(t, expanded, roles.OrgOwner)
		assert.Contains(t, expanded, roles.Finance)
		assert.NotContains(t, expanded, roles.SuperAdmin)
	})

	t.Run("unknown role expands to itself", func(t *testing.T) {
		expanded := roles.Expand([]roles.Role{"night_shift"})
		assert.Equal(t, []roles.Role{"night_shift"}, expanded)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		expanded := roles.Expand([]roles.Role{roles.Viewer, roles.Viewer, ""})
		assert.Equal(t, []roles.Role{roles.Viewer, roles.User}, expanded)
	})
}

func TestHasAny(t *testing.T) {
	core := []roles.Role{roles.OrgOwner, roles.OrgAdmin, roles.Admin, roles.SuperAdmin, roles.PlatformAdmin}

	assert.True(t, roles.HasAny([]roles.Role{roles.OrgOwner}, core...))
	assert.True(t, roles.HasAny([]roles.Role{roles.SuperAdmin}, core...))
	assert.False(t, roles.HasAny([]roles.Role{roles.Foreman}, core...))
	assert.False(t, roles.HasAny([]roles.Role{roles.Viewer}, core...))
	assert.False(t, roles.HasAny(nil, core...))
}

func TestResolvePrimary(t *testing.T) {
	assert.Equal(t, roles.OrgAdmin, roles.ResolvePrimary([]roles.Role{roles.Viewer, roles.OrgAdmin, roles.Foreman}))
	assert.Equal(t, roles.SuperAdmin, roles.ResolvePrimary([]roles.Role{roles.SuperAdmin, roles.User}))
	assert.Equal(t, roles.User, roles.ResolvePrimary(nil))
}

func TestMerge(t *testing.T) {
	merged := roles.Merge(roles.OrgAdmin, []roles.Role{roles.Viewer, roles.OrgAdmin})
	assert.Equal(t, []roles.Role{roles.Viewer, roles.OrgAdmin}, merged)

	assert.Equal(t, []roles.Role{roles.User}, roles.Merge("", nil))
}

func TestCanAssign(t *testing.T) {
	t.Run("org admin may grant foreman", func(t *testing.T) {
		assert.True(t, roles.CanAssign([]roles.Role{roles.OrgAdmin}, []roles.Role{roles.Foreman}))
	})

	t.Run("foreman may not grant org admin", func(t *testing.T) {
		assert.False(t, roles.CanAssign([]roles.Role{roles.Foreman}, []roles.Role{roles.OrgAdmin}))
	})

	t.Run("equal rank is allowed", func(t *testing.T) {
		assert.True(t, roles.CanAssign([]roles.Role{roles.OrgAdmin}, []roles.Role{roles.OrgAdmin}))
	})

	t.Run("empty target is rejected", func(t *testing.T) {
		assert.False(t, roles.CanAssign([]roles.Role{roles.SuperAdmin}, nil))
	})
}
