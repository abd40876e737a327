package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/attendance"
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/staff"
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/walkin"
	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/database"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	settingsRepo   attendance.SettingsRepository
	staffRepo      staff.StaffRepository
	walkInRepo     walkin.WalkInRepository
	db             *database.DB
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	settingsRepo attendance.SettingsRepository,
	staffRepo staff.StaffRepository,
	walkInRepo walkin.WalkInRepository,
	db *database.DB,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		settingsRepo:   settingsRepo,
		staffRepo:      staffRepo,
		walkInRepo:     walkInRepo,
		db:             db,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_staff", 1*time.Hour, j.MarkAbsentStaff)
	scheduler.AddJob("log_due_follow_ups", 1*time.Hour, j.LogDueFollowUps)
}

// MarkAbsentStaff backfills absent records for the previous working day
// so monthly summaries do not silently skip uncaptured days.
func (j *AttendanceJobs) MarkAbsentStaff(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting mark absent staff job")

	settings, err := j.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load attendance settings: %w", err)
	}
	if settings == nil {
		slog.Info("Cron: Attendance settings not configured, skipping")
		return nil
	}

	now := time.Now().UTC()
	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)

	if !settings.IsWorkingDay(yesterday) {
		slog.Info("Cron: Previous day is not a working day, skipping", "date", yesterday.Format("2006-01-02"))
		return nil
	}

	staffMembers, err := j.staffRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active staff: %w", err)
	}

	markedCount := 0
	for _, staffMember := range staffMembers {
		existing, err := j.attendanceRepo.GetByStaffAndDate(ctx, staffMember.ID, yesterday)
		if err != nil {
			slog.Error("Cron: Failed to check attendance record",
				"staff_id", staffMember.ID,
				"date", yesterday.Format("2006-01-02"),
				"error", err)
			continue
		}
		if existing != nil {
			continue
		}

		// Skip staff who joined after the swept day
		if staffMember.JoinDate.After(yesterday) {
			continue
		}

		_, err = j.attendanceRepo.Upsert(ctx, attendance.DailyAttendance{
			StaffID: staffMember.ID,
			Date:    yesterday,
			Status:  attendance.StatusAbsent,
		})
		if err != nil {
			slog.Error("Cron: Failed to mark staff absent",
				"staff_id", staffMember.ID,
				"date", yesterday.Format("2006-01-02"),
				"error", err)
			continue
		}
		markedCount++
	}

	slog.Info("Cron: Marked absent staff", "count", markedCount, "date", yesterday.Format("2006-01-02"))
	return nil
}

// LogDueFollowUps surfaces pending walk-in follow-ups for today in the
// logs so the front desk sees them at shift start.
func (j *AttendanceJobs) LogDueFollowUps(ctx context.Context) error {
	// Only run in the early morning (06:00-06:59 UTC)
	if time.Now().UTC().Hour() != 6 {
		return nil
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	due, err := j.walkInRepo.ListFollowUpsDue(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to list due follow-ups: %w", err)
	}

	for _, walkIn := range due {
		slog.Info("Cron: Walk-in follow-up due today",
			"walk_in_id", walkIn.ID,
			"name", walkIn.Name,
			"phone", walkIn.Phone)
	}

	slog.Info("Cron: Walk-in follow-up sweep completed", "count", len(due))
	return nil
}
