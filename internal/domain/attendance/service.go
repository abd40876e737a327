package attendance

import (
	"context"
)

// AttendanceService covers check-in capture, manual marking, leave
// recording, listings, deletion, and the monthly report.
type AttendanceService interface {
	// CheckIn classifies a check-in against the currently open slot and
	// upserts the day's record.
	CheckIn(ctx context.Context, req CheckInRequest) (DailyAttendanceResponse, error)

	// Mark sets one slot's outcome by operator action and re-resolves the
	// daily status. Marking full present after the slot's half-day limit
	// is rejected, never silently downgraded.
	Mark(ctx context.Context, req MarkRequest) (DailyAttendanceResponse, error)

	// RecordLeave validates a leave request against the staff member's
	// balance and writes one record per working day in the range.
	RecordLeave(ctx context.Context, req RecordLeaveRequest) ([]DailyAttendanceResponse, error)

	// ListByDate returns all records for one day.
	ListByDate(ctx context.Context, date string) ([]DailyAttendanceResponse, error)

	// ListByStaff returns a staff member's records within a date range.
	ListByStaff(ctx context.Context, staffID, from, to string) ([]DailyAttendanceResponse, error)

	// Delete removes one record, restoring paid leave balance when the
	// record was a paid leave day.
	Delete(ctx context.Context, staffID, date string) error

	// MonthlyReport aggregates one staff member's month.
	MonthlyReport(ctx context.Context, staffID string, month, year int) (MonthlyAttendance, error)

	// MonthlyReportAll aggregates the month for every active staff member.
	MonthlyReportAll(ctx context.Context, month, year int) ([]MonthlyAttendance, error)
}

// SettingsService loads and saves the governing attendance settings.
type SettingsService interface {
	// Get returns the settings or ErrSettingsNotConfigured.
	Get(ctx context.Context) (Settings, error)

	// Update validates and replaces the settings document.
	Update(ctx context.Context, req UpdateSettingsRequest) (Settings, error)
}
