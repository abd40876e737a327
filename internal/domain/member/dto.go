package member

import (
	"time"

	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/validator"
)

// ========================================
// MEMBER DTOs
// ========================================

type CreateMemberRequest struct {
	FirstName           string  `json:"first_name"`
	LastName            string  `json:"last_name"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone"`
	PhotoURL            *string `json:"photo_url,omitempty"`
	JoinDate            string  `json:"join_date"` // YYYY-MM-DD, defaults to today
	SubscriptionType    string  `json:"subscription_type"`
	SubscriptionEndDate string  `json:"subscription_end_date"`
	PaymentStatus       string  `json:"payment_status"`
}

func (r *CreateMemberRequest) Validate() error {
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
	if r.JoinDate != "" {
		if _, ok := validator.IsValidDate(r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "join_date",
				Message: "join_date must be in YYYY-MM-DD format",
			})
		}
	}
	if !validator.IsInSlice(r.SubscriptionType, SubscriptionTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "subscription_type",
			Message: "subscription_type must be one of monthly, quarterly, semi-annual, annual",
		})
	}
	if _, ok := validator.IsValidDate(r.SubscriptionEndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "subscription_end_date",
			Message: "subscription_end_date must be in YYYY-MM-DD format",
		})
	}
	if !validator.IsInSlice(r.PaymentStatus, PaymentStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "payment_status",
			Message: "payment_status must be one of paid, pending, overdue",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateMemberRequest struct {
	FirstName           *string `json:"first_name,omitempty"`
	LastName            *string `json:"last_name,omitempty"`
	Email               *string `json:"email,omitempty"`
	Phone               *string `json:"phone,omitempty"`
	PhotoURL            *string `json:"photo_url,omitempty"`
	SubscriptionType    *string `json:"subscription_type,omitempty"`
	SubscriptionEndDate *string `json:"subscription_end_date,omitempty"`
	PaymentStatus       *string `json:"payment_status,omitempty"`
}

func (r *UpdateMemberRequest) Validate() error {
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
	if r.SubscriptionType != nil && !validator.IsInSlice(*r.SubscriptionType, SubscriptionTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "subscription_type",
			Message: "subscription_type must be one of monthly, quarterly, semi-annual, annual",
		})
	}
	if r.SubscriptionEndDate != nil {
		if _, ok := validator.IsValidDate(*r.SubscriptionEndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "subscription_end_date",
				Message: "subscription_end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.PaymentStatus != nil && !validator.IsInSlice(*r.PaymentStatus, PaymentStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "payment_status",
			Message: "payment_status must be one of paid, pending, overdue",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MemberFilter narrows the member listing.
type MemberFilter struct {
	SubscriptionType string // empty means all
	PaymentStatus    string
	Search           string // matches name, email, phone
	RenewalMonth     int    // 1-12, 0 means any
	Page             int
	Limit            int
}

type MemberResponse struct {
	ID                  string  `json:"id"`
	PhotoURL            *string `json:"photo_url,omitempty"`
	FirstName           string  `json:"first_name"`
	LastName            string  `json:"last_name"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone"`
	JoinDate            string  `json:"join_date"`
	SubscriptionType    string  `json:"subscription_type"`
	SubscriptionEndDate string  `json:"subscription_end_date"`
	PaymentStatus       string  `json:"payment_status"`
	Expired             bool    `json:"expired"`
}

func NewMemberResponse(m Member) MemberResponse {
	return MemberResponse{
		ID:                  m.ID,
		PhotoURL:            m.PhotoURL,
		FirstName:           m.FirstName,
		LastName:            m.LastName,
		Email:               m.Email,
		Phone:               m.Phone,
		JoinDate:            m.JoinDate.Format("2006-01-02"),
		SubscriptionType:    string(m.SubscriptionType),
		SubscriptionEndDate: m.SubscriptionEndDate.Format("2006-01-02"),
		PaymentStatus:       string(m.PaymentStatus),
		Expired:             m.SubscriptionEndDate.Before(time.Now()),
	}
}
