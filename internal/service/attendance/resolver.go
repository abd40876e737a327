package attendance

import (
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/attendance"
)

// ResolveDailyStatus combines the per-slot outcomes and an optional leave
// type into the day-level status. Priority order:
//
//  1. explicit leave wins outright; slot outcomes are not evaluated
//  2. both slots present -> present
//  3. exactly one slot present (other absent or unset) -> halfDay
//  4. a late capture in either slot -> halfDay
//  5. nothing captured -> absent
//
// The per-slot "late" tag never leaks into the daily status; it only
// triggers the half-day credit.
func ResolveDailyStatus(morning, evening *attendance.SlotOutcome, leaveType *attendance.LeaveType) attendance.Status {
	if leaveType != nil {
		if *leaveType == attendance.LeavePaid {
			return attendance.StatusPaidLeave
		}
		return attendance.StatusUnpaidLeave
	}

	morningPresent := morning != nil && morning.Status == attendance.SlotPresent
	eveningPresent := evening != nil && evening.Status == attendance.SlotPresent

	if morningPresent && eveningPresent {
		return attendance.StatusPresent
	}
	if morningPresent || eveningPresent {
		return attendance.StatusHalfDay
	}

	if (morning != nil && morning.Status == attendance.SlotLate) ||
		(evening != nil && evening.Status == attendance.SlotLate) {
		return attendance.StatusHalfDay
	}

	return attendance.StatusAbsent
}
