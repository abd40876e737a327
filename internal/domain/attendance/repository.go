package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for daily attendance records.
// There is exactly one record per (staffID, date); Upsert resolves
// concurrent writes for the same key as last-write-wins.
type AttendanceRepository interface {
	// Upsert creates or replaces the record for (attendance.StaffID, attendance.Date).
	Upsert(ctx context.Context, attendance DailyAttendance) (DailyAttendance, error)

	// GetByStaffAndDate retrieves the record for a staff member on a day.
	// Returns nil (not an error) when no record exists.
	GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*DailyAttendance, error)

	// ListByDate retrieves all records for one calendar day.
	ListByDate(ctx context.Context, date time.Time) ([]DailyAttendance, error)

	// ListByStaffAndRange retrieves a staff member's records within [from, to].
	ListByStaffAndRange(ctx context.Context, staffID string, from, to time.Time) ([]DailyAttendance, error)

	// Delete removes the record for (staffID, date).
	Delete(ctx context.Context, staffID string, date time.Time) error
}

// SettingsRepository stores the single governing attendance settings
// document. Get is an explicit pull; callers re-read instead of listening.
type SettingsRepository interface {
	// Get retrieves the settings. Returns nil when none have been saved.
	Get(ctx context.Context) (*Settings, error)

	// Save creates or replaces the settings document.
	Save(ctx context.Context, settings Settings) (Settings, error)
}
