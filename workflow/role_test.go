package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gamepress-cms/models"
)

func TestRoleRankOrder(t *testing.T) {
	ordered := []models.UserRole{
		models.RoleUser,
		models.RoleModerator,
		models.RoleEditor,
		models.RoleSeniorEditor,
		models.RoleAdmin,
		models.RoleSysadmin,
	}

	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, RoleRank(ordered[i]), RoleRank(ordered[i-1]),
			"%s should outrank %s", ordered[i], ordered[i-1])
	}
}

func TestDominates(t *testing.T) {
	assert.True(t, Dominates(models.RoleSeniorEditor, models.RoleSeniorEditor))
	assert.True(t, Dominates(models.RoleSysadmin, models.RoleUser))
	assert.True(t, Dominates(models.RoleAdmin, models.RoleEditor))
	assert.False(t, Dominates(models.RoleEditor, models.RoleSeniorEditor))
	assert.False(t, Dominates(models.RoleUser, models.RoleModerator))
}

func TestDominatesUnknownRole(t *testing.T) {
	assert.False(t, Dominates(models.UserRole("intern"), models.RoleUser))
	assert.False(t, Dominates(models.RoleSysadmin, models.UserRole("intern")))
	assert.Equal(t, -1, RoleRank(models.UserRole("")))
}
