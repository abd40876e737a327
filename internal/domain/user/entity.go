package user

import "time"

type Role string

const (
	RoleAdmin        Role = "admin"        // Studio owner/admin - full access
	RoleManager      Role = "manager"      // Manages members, staff attendance, reports
	RoleReceptionist Role = "receptionist" // Front desk: walk-ins, member lookups, check-ins
)

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	StaffID         *string // set when the account belongs to a staff member
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if user is a studio admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is manager or admin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}
