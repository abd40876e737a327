package attendance

import (
	"encoding/json"
	"fmt"
	"time"
)

// SlotStatus is the per-slot classification of a check-in.
type SlotStatus string

const (
	SlotPresent SlotStatus = "present"
	SlotLate    SlotStatus = "late"
	SlotAbsent  SlotStatus = "absent"
)

// Status is the day-level classification. It is deliberately a separate
// enum from SlotStatus: "late" is a per-slot timing detail, never a daily
// status.
type Status string

const (
	StatusPresent     Status = "present"
	StatusHalfDay     Status = "halfDay"
	StatusAbsent      Status = "absent"
	StatusPaidLeave   Status = "paidLeave"
	StatusUnpaidLeave Status = "unpaidLeave"
)

// Slot names one of the two daily attendance windows.
type Slot string

const (
	SlotMorning Slot = "morning"
	SlotEvening Slot = "evening"
)

// ClockTime is a wall-clock time of day in minutes since midnight.
// All slot comparisons operate on ClockTime, not full timestamps.
type ClockTime int

// ParseClockTime parses a "HH:mm" string into a ClockTime.
func ParseClockTime(s string) (ClockTime, error) {
	var hours, minutes int
	if _, err := fmt.Sscanf(s, "%d:%d", &hours, &minutes); err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	return ClockTime(hours*60 + minutes), nil
}

// ClockTimeOf extracts the time-of-day component of a timestamp.
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime(t.Hour()*60 + t.Minute())
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// SlotConfig describes one attendance window.
// Invariant: Start < HalfDayLimit < End.
type SlotConfig struct {
	Start        ClockTime `json:"start"`
	End          ClockTime `json:"end"`
	HalfDayLimit ClockTime `json:"half_day_limit"`
}

// Validate enforces the slot ordering invariant.
func (s SlotConfig) Validate() error {
	if !(s.Start < s.HalfDayLimit && s.HalfDayLimit < s.End) {
		return ErrInvalidSlotConfig
	}
	return nil
}

// Settings is the single process-wide attendance configuration. It is
// loaded from the store per call and passed explicitly to every
// classification; there is no ambient global.
type Settings struct {
	MorningSlot          SlotConfig `json:"morning_slot"`
	EveningSlot          SlotConfig `json:"evening_slot"`
	AllowedBuffer        int        `json:"allowed_buffer"` // grace minutes after a slot's end
	WorkingDays          []string   `json:"working_days"`   // lowercase weekday names
	MaxPaidLeavePerMonth *int       `json:"max_paid_leave_per_month,omitempty"`

	UpdatedAt time.Time `json:"-"`
}

// DefaultMaxPaidLeavePerMonth applies when MaxPaidLeavePerMonth is unset.
const DefaultMaxPaidLeavePerMonth = 2

// MonthlyPaidLeaveCap returns the configured cap or the default.
func (s Settings) MonthlyPaidLeaveCap() int {
	if s.MaxPaidLeavePerMonth != nil {
		return *s.MaxPaidLeavePerMonth
	}
	return DefaultMaxPaidLeavePerMonth
}

// IsWorkingDay reports whether the weekday of date is tracked.
func (s Settings) IsWorkingDay(date time.Time) bool {
	name := weekdayName(date.Weekday())
	for _, day := range s.WorkingDays {
		if day == name {
			return true
		}
	}
	return false
}

func weekdayName(d time.Weekday) string {
	switch d {
	case time.Sunday:
		return "sunday"
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	default:
		return "saturday"
	}
}

// SlotOutcome is the immutable result of classifying one check-in against
// one slot. A correction replaces the outcome, it never mutates it.
type SlotOutcome struct {
	Status      SlotStatus `json:"status"`
	CheckInTime *ClockTime `json:"check_in_time,omitempty"`
	LateMinutes *int       `json:"late_minutes,omitempty"`
}

// LeaveType tags a leave day as paid or unpaid.
type LeaveType string

const (
	LeavePaid   LeaveType = "paid"
	LeaveUnpaid LeaveType = "unpaid"
)

// DailyAttendance is the single record for one staff member on one
// calendar day. The storage layer enforces uniqueness on (StaffID, Date)
// via upsert, never append.
type DailyAttendance struct {
	ID          string
	StaffID     string
	Date        time.Time // calendar day, midnight UTC
	MorningSlot *SlotOutcome
	EveningSlot *SlotOutcome
	Status      Status
	LeaveType   *LeaveType
	LeaveReason *string
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join fields
	StaffFirstName *string
	StaffLastName  *string
}

// MonthlyAttendance is a derived summary, recomputed on demand from the
// month's DailyAttendance rows. It is never the source of truth.
type MonthlyAttendance struct {
	StaffID              string  `json:"staff_id"`
	FirstName            string  `json:"first_name"`
	LastName             string  `json:"last_name"`
	Month                int     `json:"month"`
	Year                 int     `json:"year"`
	PresentDays          int     `json:"present_days"`
	HalfDays             int     `json:"half_days"`
	AbsentDays           int     `json:"absent_days"`
	PaidLeaveDays        int     `json:"paid_leave_days"`
	UnpaidLeaveDays      int     `json:"unpaid_leave_days"`
	TotalWorkingDays     int     `json:"total_working_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}
