package staff

import "time"

// StaffMember is a gym employee whose attendance is tracked.
type StaffMember struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Address     *string
	Designation string
	PhotoURL    *string
	IsActive    bool
	JoinDate    time.Time
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
