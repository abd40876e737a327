package leave

import (
	"testing"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/attendance"
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func testBalance(remaining int) leave.Balance {
	return leave.Balance{
		StaffID:            "staff-1",
		Year:               2025,
		TotalPaidLeave:     12,
		UsedPaidLeave:      12 - remaining,
		RemainingPaidLeave: remaining,
	}
}

func TestValidator_ValidateRequest(t *testing.T) {
	t.Parallel()
	v := NewValidator()
	cap := 3
	settings := attendance.Settings{MaxPaidLeavePerMonth: &cap}

	tests := []struct {
		name      string
		days      int
		leaveType attendance.LeaveType
		balance   leave.Balance
		wantErr   error
	}{
		{
			name:      "paid within balance and cap",
			days:      2,
			leaveType: attendance.LeavePaid,
			balance:   testBalance(5),
		},
		{
			name:      "paid consumes exactly the remaining balance",
			days:      3,
			leaveType: attendance.LeavePaid,
			balance:   testBalance(3),
		},
		{
			name:      "paid one day over the balance",
			days:      4,
			leaveType: attendance.LeavePaid,
			balance:   testBalance(3),
			wantErr:   leave.ErrInsufficientBalance,
		},
		{
			name:      "paid over the monthly cap",
			days:      4,
			leaveType: attendance.LeavePaid,
			balance:   testBalance(10),
			wantErr:   leave.ErrMonthlyCapExceeded,
		},
		{
			name:      "unpaid ignores the balance entirely",
			days:      10,
			leaveType: attendance.LeaveUnpaid,
			balance:   testBalance(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRequest(tt.days, tt.leaveType, tt.balance, settings)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_DefaultMonthlyCap(t *testing.T) {
	t.Parallel()
	v := NewValidator()

	// No configured cap falls back to the default of two days.
	err := v.ValidateRequest(3, attendance.LeavePaid, testBalance(10), attendance.Settings{})
	assert.ErrorIs(t, err, leave.ErrMonthlyCapExceeded)

	err = v.ValidateRequest(2, attendance.LeavePaid, testBalance(10), attendance.Settings{})
	assert.NoError(t, err)
}
