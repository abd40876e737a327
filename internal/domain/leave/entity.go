package leave

import "time"

// Balance tracks a staff member's paid leave for one calendar year.
// UsedPaidLeave changes whenever a paid-leave attendance record is
// created or deleted; Remaining is always Total - Used.
type Balance struct {
	StaffID            string    `json:"staff_id"`
	Year               int       `json:"year"`
	TotalPaidLeave     int       `json:"total_paid_leave"`
	UsedPaidLeave      int       `json:"used_paid_leave"`
	RemainingPaidLeave int       `json:"remaining_paid_leave"`
	UpdatedAt          time.Time `json:"updated_at"`
}
