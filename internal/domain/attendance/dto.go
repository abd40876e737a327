package attendance

import (
	"strings"

	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	StaffID string `json:"staff_id"`
	// Timestamp is an optional RFC3339 override for the check-in moment.
	// When empty the server clock is used.
	Timestamp string `json:"timestamp,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if r.Timestamp != "" {
		if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid RFC3339 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkRequest struct {
	StaffID string `json:"staff_id"`
	Date    string `json:"date"` // YYYY-MM-DD
	Slot    string `json:"slot"` // morning | evening
	Status  string `json:"status"`
	// CheckInTime optionally records the actual check-in ("HH:mm") when
	// marking present; defaults to the slot start.
	CheckInTime string `json:"check_in_time,omitempty"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Slot, []string{string(SlotMorning), string(SlotEvening)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "slot",
			Message: "slot must be 'morning' or 'evening'",
		})
	}

	if !validator.IsInSlice(r.Status, []string{string(SlotPresent), string(SlotAbsent)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be 'present' or 'absent'",
		})
	}

	if r.CheckInTime != "" && !validator.IsValidClockTime(r.CheckInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_time",
			Message: "check_in_time must be in HH:mm format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordLeaveRequest struct {
	StaffID   string `json:"staff_id"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
	LeaveType string `json:"leave_type"` // paid | unpaid
	Reason    string `json:"reason,omitempty"`
}

func (r *RecordLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if !validator.IsInSlice(r.LeaveType, []string{string(LeavePaid), string(LeaveUnpaid)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be 'paid' or 'unpaid'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSettingsRequest struct {
	MorningSlot          SlotConfigRequest `json:"morning_slot"`
	EveningSlot          SlotConfigRequest `json:"evening_slot"`
	AllowedBuffer        int               `json:"allowed_buffer"`
	WorkingDays          []string          `json:"working_days"`
	MaxPaidLeavePerMonth *int              `json:"max_paid_leave_per_month,omitempty"`
}

type SlotConfigRequest struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	HalfDayLimit string `json:"half_day_limit"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	validateSlot := func(name string, slot SlotConfigRequest) {
		for field, value := range map[string]string{
			name + ".start":          slot.Start,
			name + ".end":            slot.End,
			name + ".half_day_limit": slot.HalfDayLimit,
		} {
			if !validator.IsValidClockTime(value) {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: "must be in HH:mm format",
				})
			}
		}
	}
	validateSlot("morning_slot", r.MorningSlot)
	validateSlot("evening_slot", r.EveningSlot)

	if r.AllowedBuffer < 0 || r.AllowedBuffer > 120 {
		errs = append(errs, validator.ValidationError{
			Field:   "allowed_buffer",
			Message: "allowed_buffer must be between 0 and 120 minutes",
		})
	}

	if len(r.WorkingDays) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "working_days",
			Message: "at least one working day is required",
		})
	}
	for _, day := range r.WorkingDays {
		if !validator.IsValidWeekday(day) {
			errs = append(errs, validator.ValidationError{
				Field:   "working_days",
				Message: "working_days must contain valid weekday names",
			})
			break
		}
	}

	if r.MaxPaidLeavePerMonth != nil && *r.MaxPaidLeavePerMonth < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_paid_leave_per_month",
			Message: "max_paid_leave_per_month must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToSettings converts the request into a Settings value, enforcing the
// slot ordering invariant on both slots.
func (r *UpdateSettingsRequest) ToSettings() (Settings, error) {
	parseSlot := func(req SlotConfigRequest) (SlotConfig, error) {
		start, err := ParseClockTime(req.Start)
		if err != nil {
			return SlotConfig{}, err
		}
		end, err := ParseClockTime(req.End)
		if err != nil {
			return SlotConfig{}, err
		}
		limit, err := ParseClockTime(req.HalfDayLimit)
		if err != nil {
			return SlotConfig{}, err
		}
		slot := SlotConfig{Start: start, End: end, HalfDayLimit: limit}
		if err := slot.Validate(); err != nil {
			return SlotConfig{}, err
		}
		return slot, nil
	}

	morning, err := parseSlot(r.MorningSlot)
	if err != nil {
		return Settings{}, err
	}
	evening, err := parseSlot(r.EveningSlot)
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		MorningSlot:          morning,
		EveningSlot:          evening,
		AllowedBuffer:        r.AllowedBuffer,
		WorkingDays:          normalizeWorkingDays(r.WorkingDays),
		MaxPaidLeavePerMonth: r.MaxPaidLeavePerMonth,
	}, nil
}

func normalizeWorkingDays(days []string) []string {
	seen := make(map[string]bool, len(days))
	normalized := make([]string, 0, len(days))
	for _, day := range days {
		lower := strings.ToLower(day)
		if !seen[lower] {
			seen[lower] = true
			normalized = append(normalized, lower)
		}
	}
	return normalized
}

// ========================================
// RESPONSES
// ========================================

type DailyAttendanceResponse struct {
	ID          string       `json:"id"`
	StaffID     string       `json:"staff_id"`
	StaffName   *string      `json:"staff_name,omitempty"`
	Date        string       `json:"date"`
	MorningSlot *SlotOutcome `json:"morning_slot,omitempty"`
	EveningSlot *SlotOutcome `json:"evening_slot,omitempty"`
	Status      Status       `json:"status"`
	LeaveType   *LeaveType   `json:"leave_type,omitempty"`
	LeaveReason *string      `json:"leave_reason,omitempty"`
}

// NewDailyAttendanceResponse maps an entity to its API shape.
func NewDailyAttendanceResponse(record DailyAttendance) DailyAttendanceResponse {
	resp := DailyAttendanceResponse{
		ID:          record.ID,
		StaffID:     record.StaffID,
		Date:        record.Date.Format("2006-01-02"),
		MorningSlot: record.MorningSlot,
		EveningSlot: record.EveningSlot,
		Status:      record.Status,
		LeaveType:   record.LeaveType,
		LeaveReason: record.LeaveReason,
	}
	if record.StaffFirstName != nil && record.StaffLastName != nil {
		name := *record.StaffFirstName + " " + *record.StaffLastName
		resp.StaffName = &name
	}
	return resp
}
