package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	t.Parallel()

	assert.True(t, HasPermission(RoleAdmin, PermissionSettingsManage))
	assert.True(t, HasPermission(RoleManager, PermissionAttendanceManage))
	assert.True(t, HasPermission(RoleReceptionist, PermissionAttendanceRecord))

	assert.False(t, HasPermission(RoleManager, PermissionSettingsManage))
	assert.False(t, HasPermission(RoleReceptionist, PermissionMemberManage))
	assert.False(t, HasPermission(RoleReceptionist, PermissionStaffView))
	assert.False(t, HasPermission(Role("unknown"), PermissionMemberView))
}

func TestRoleChecks(t *testing.T) {
	t.Parallel()

	admin := User{Role: RoleAdmin}
	manager := User{Role: RoleManager}
	receptionist := User{Role: RoleReceptionist}

	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.IsManager())
	assert.False(t, manager.IsAdmin())
	assert.True(t, manager.IsManager())
	assert.False(t, receptionist.IsManager())
}
