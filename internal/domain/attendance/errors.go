package attendance

import "errors"

// Attendance domain errors
var (
	// Classification errors
	ErrOutsideAttendanceHours = errors.New("check-in time is outside attendance hours")
	ErrFutureDate             = errors.New("cannot record attendance for a future date")
	ErrHalfDayLimitPassed     = errors.New("cannot mark full attendance after the half-day limit")

	// Leave errors
	ErrCrossYearLeave = errors.New("leave range cannot cross a calendar year")

	// Settings errors
	ErrSettingsNotConfigured = errors.New("attendance settings have not been configured")
	ErrInvalidSlotConfig     = errors.New("slot start must be before the half-day limit and the half-day limit before the slot end")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
