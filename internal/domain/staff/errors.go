package staff

import "errors"

var (
	ErrStaffNotFound = errors.New("staff member not found")
	ErrEmailExists   = errors.New("email already registered")
)
