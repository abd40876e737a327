package user

type Permission string

const (
	// Member Management
	PermissionMemberView   Permission = "member.view"
	PermissionMemberManage Permission = "member.manage"

	// Walk-in Management
	PermissionWalkInView   Permission = "walkin.view"
	PermissionWalkInManage Permission = "walkin.manage"

	// Staff Management
	PermissionStaffView   Permission = "staff.view"
	PermissionStaffManage Permission = "staff.manage"

	// Attendance Management
	PermissionAttendanceView   Permission = "attendance.view"
	PermissionAttendanceRecord Permission = "attendance.record"
	PermissionAttendanceManage Permission = "attendance.manage"

	// Settings
	PermissionSettingsManage Permission = "settings.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionMemberView,
		PermissionMemberManage,
		PermissionWalkInView,
		PermissionWalkInManage,
		PermissionStaffView,
		PermissionStaffManage,
		PermissionAttendanceView,
		PermissionAttendanceRecord,
		PermissionAttendanceManage,
		PermissionSettingsManage,
	},
	RoleManager: {
		PermissionMemberView,
		PermissionMemberManage,
		PermissionWalkInView,
		PermissionWalkInManage,
		PermissionStaffView,
		PermissionAttendanceView,
		PermissionAttendanceRecord,
		PermissionAttendanceManage,
	},
	RoleReceptionist: {
		PermissionMemberView,
		PermissionWalkInView,
		PermissionWalkInManage,
		PermissionAttendanceView,
		PermissionAttendanceRecord,
	},
}

// HasPermission checks whether a role carries a permission.
func HasPermission(role Role, permission Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
