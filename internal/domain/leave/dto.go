package leave

import (
	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/validator"
)

type SetAllocationRequest struct {
	Year           int `json:"year"`
	TotalPaidLeave int `json:"total_paid_leave"`
}

func (r *SetAllocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if r.TotalPaidLeave < 0 || r.TotalPaidLeave > 366 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_paid_leave",
			Message: "total_paid_leave must be between 0 and 366",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
