package walkin

import (
	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/validator"
)

// ========================================
// WALK-IN DTOs
// ========================================

type CreateWalkInRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Address       *string `json:"address,omitempty"`
	VisitDate     string  `json:"visit_date"` // YYYY-MM-DD, defaults to today
	InterestLevel string  `json:"interest_level"`
	FollowUpDate  *string `json:"follow_up_date,omitempty"`
	FollowUpTime  *string `json:"follow_up_time,omitempty"` // HH:mm
	Notes         *string `json:"notes,omitempty"`
}

func (r *CreateWalkInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.Email != "" && !validator.IsValidEmail(r.Email) {
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
	if r.VisitDate != "" {
		if _, ok := validator.IsValidDate(r.VisitDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "visit_date",
				Message: "visit_date must be in YYYY-MM-DD format",
			})
		}
	}
	if !validator.IsInSlice(r.InterestLevel, InterestLevels) {
		errs = append(errs, validator.ValidationError{
			Field:   "interest_level",
			Message: "interest_level must be one of high, medium, low",
		})
	}
	if r.FollowUpDate != nil {
		if _, ok := validator.IsValidDate(*r.FollowUpDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "follow_up_date",
				Message: "follow_up_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.FollowUpTime != nil && !validator.IsValidClockTime(*r.FollowUpTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "follow_up_time",
			Message: "follow_up_time must be in HH:mm format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWalkInRequest struct {
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	InterestLevel *string `json:"interest_level,omitempty"`
	FollowUpDate  *string `json:"follow_up_date,omitempty"`
	FollowUpTime  *string `json:"follow_up_time,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

func (r *UpdateWalkInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
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
	if r.InterestLevel != nil && !validator.IsInSlice(*r.InterestLevel, InterestLevels) {
		errs = append(errs, validator.ValidationError{
			Field:   "interest_level",
			Message: "interest_level must be one of high, medium, low",
		})
	}
	if r.FollowUpDate != nil {
		if _, ok := validator.IsValidDate(*r.FollowUpDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "follow_up_date",
				Message: "follow_up_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.FollowUpTime != nil && !validator.IsValidClockTime(*r.FollowUpTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "follow_up_time",
			Message: "follow_up_time must be in HH:mm format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(StatusConverted), string(StatusNotInterested)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be 'converted' or 'not_interested'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// WalkInFilter narrows the walk-in listing.
type WalkInFilter struct {
	Status   string // empty means all
	Search   string // matches name, email, phone
	DateFrom string // visit date range, YYYY-MM-DD
	DateTo   string
	Page     int
	Limit    int
}

type WalkInResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Address       *string `json:"address,omitempty"`
	VisitDate     string  `json:"visit_date"`
	InterestLevel string  `json:"interest_level"`
	FollowUpDate  *string `json:"follow_up_date,omitempty"`
	FollowUpTime  *string `json:"follow_up_time,omitempty"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
}

func NewWalkInResponse(w WalkIn) WalkInResponse {
	resp := WalkInResponse{
		ID:            w.ID,
		Name:          w.Name,
		Email:         w.Email,
		Phone:         w.Phone,
		Address:       w.Address,
		VisitDate:     w.VisitDate.Format("2006-01-02"),
		InterestLevel: string(w.InterestLevel),
		FollowUpTime:  w.FollowUpTime,
		Status:        string(w.Status),
		Notes:         w.Notes,
	}
	if w.FollowUpDate != nil {
		formatted := w.FollowUpDate.Format("2006-01-02")
		resp.FollowUpDate = &formatted
	}
	return resp
}
