package attendance

import (
	"testing"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func slotOutcome(status attendance.SlotStatus) *attendance.SlotOutcome {
	return &attendance.SlotOutcome{Status: status}
}

func leaveTypePtr(lt attendance.LeaveType) *attendance.LeaveType {
	return &lt
}

func TestResolveDailyStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		morning   *attendance.SlotOutcome
		evening   *attendance.SlotOutcome
		leaveType *attendance.LeaveType
		want      attendance.Status
	}{
		{
			name:    "both slots present",
			morning: slotOutcome(attendance.SlotPresent),
			evening: slotOutcome(attendance.SlotPresent),
			want:    attendance.StatusPresent,
		},
		{
			name:    "morning only",
			morning: slotOutcome(attendance.SlotPresent),
			want:    attendance.StatusHalfDay,
		},
		{
			name:    "evening only",
			evening: slotOutcome(attendance.SlotPresent),
			want:    attendance.StatusHalfDay,
		},
		{
			name:    "present plus absent",
			morning: slotOutcome(attendance.SlotPresent),
			evening: slotOutcome(attendance.SlotAbsent),
			want:    attendance.StatusHalfDay,
		},
		{
			name:    "late in one slot",
			morning: slotOutcome(attendance.SlotLate),
			want:    attendance.StatusHalfDay,
		},
		{
			name:    "late in both slots",
			morning: slotOutcome(attendance.SlotLate),
			evening: slotOutcome(attendance.SlotLate),
			want:    attendance.StatusHalfDay,
		},
		{
			name: "nothing captured",
			want: attendance.StatusAbsent,
		},
		{
			name:    "both slots absent",
			morning: slotOutcome(attendance.SlotAbsent),
			evening: slotOutcome(attendance.SlotAbsent),
			want:    attendance.StatusAbsent,
		},
		{
			name:      "paid leave wins over present slots",
			morning:   slotOutcome(attendance.SlotPresent),
			evening:   slotOutcome(attendance.SlotPresent),
			leaveType: leaveTypePtr(attendance.LeavePaid),
			want:      attendance.StatusPaidLeave,
		},
		{
			name:      "unpaid leave with no slots",
			leaveType: leaveTypePtr(attendance.LeaveUnpaid),
			want:      attendance.StatusUnpaidLeave,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDailyStatus(tt.morning, tt.evening, tt.leaveType)
			assert.Equal(t, tt.want, got)
		})
	}
}
