package leave

import (
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/attendance"
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/leave"
)

// Validator checks leave requests against a staff member's balance and
// the configured monthly cap. It holds no state; it exists as a type so
// services can take it as an explicit dependency.
type Validator struct {
}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRequest accepts or rejects a leave request.
//
// Paid leave must fit the remaining balance first, then the per-request
// monthly cap. Unpaid leave has no balance dimension and always passes
// here; date rules are enforced by the attendance service before any
// state changes.
func (v *Validator) ValidateRequest(requestedDays int, leaveType attendance.LeaveType, balance leave.Balance, settings attendance.Settings) error {
	if leaveType != attendance.LeavePaid {
		return nil
	}

	if requestedDays > balance.RemainingPaidLeave {
		return leave.ErrInsufficientBalance
	}

	if requestedDays > settings.MonthlyPaidLeaveCap() {
		return leave.ErrMonthlyCapExceeded
	}

	return nil
}
