package staff

import (
	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/validator"
)

// ========================================
// STAFF DTOs
// ========================================

type CreateStaffRequest struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     *string `json:"address,omitempty"`
	Designation string  `json:"designation"`
	PhotoURL    *string `json:"photo_url,omitempty"`
	JoinDate    string  `json:"join_date"` // YYYY-MM-DD, defaults to today
	Notes       *string `json:"notes,omitempty"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid phone number",
		})
	}
	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation is required",
		})
	}
	if r.JoinDate != "" {
		if _, ok := validator.IsValidDate(r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "join_date",
				Message: "join_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStaffRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	Designation *string `json:"designation,omitempty"`
	PhotoURL    *string `json:"photo_url,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid phone number",
		})
	}
	if r.Designation != nil && validator.IsEmpty(*r.Designation) {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// StaffFilter narrows the staff listing.
type StaffFilter struct {
	Search   string // matches name, email, designation
	IsActive *bool
	Page     int
	Limit    int
}

type StaffResponse struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     *string `json:"address,omitempty"`
	Designation string  `json:"designation"`
	PhotoURL    *string `json:"photo_url,omitempty"`
	IsActive    bool    `json:"is_active"`
	JoinDate    string  `json:"join_date"`
	Notes       *string `json:"notes,omitempty"`
}

func NewStaffResponse(s StaffMember) StaffResponse {
	return StaffResponse{
		ID:          s.ID,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		Email:       s.Email,
		Phone:       s.Phone,
		Address:     s.Address,
		Designation: s.Designation,
		PhotoURL:    s.PhotoURL,
		IsActive:    s.IsActive,
		JoinDate:    s.JoinDate.Format("2006-01-02"),
		Notes:       s.Notes,
	}
}
