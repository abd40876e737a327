package postgresql

import (
	"context"
	"errors"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/attendance"
	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// Attendance settings are stored as a single row keyed by a constant id,
// replaced wholesale on save.
type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) attendance.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

func scanSettings(row pgx.Row) (attendance.Settings, error) {
	var (
		settings attendance.Settings
		morning  [3]int
		evening  [3]int
	)

	err := row.Scan(
		&morning[0], &morning[1], &morning[2],
		&evening[0], &evening[1], &evening[2],
		&settings.AllowedBuffer,
		&settings.WorkingDays,
		&settings.MaxPaidLeavePerMonth,
		&settings.UpdatedAt,
	)
	if err != nil {
		return attendance.Settings{}, err
	}

	settings.MorningSlot = attendance.SlotConfig{
		Start:        attendance.ClockTime(morning[0]),
		End:          attendance.ClockTime(morning[1]),
		HalfDayLimit: attendance.ClockTime(morning[2]),
	}
	settings.EveningSlot = attendance.SlotConfig{
		Start:        attendance.ClockTime(evening[0]),
		End:          attendance.ClockTime(evening[1]),
		HalfDayLimit: attendance.ClockTime(evening[2]),
	}
	return settings, nil
}

// Get implements attendance.SettingsRepository.
func (r *settingsRepositoryImpl) Get(ctx context.Context) (*attendance.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT morning_start, morning_end, morning_half_day_limit,
			   evening_start, evening_end, evening_half_day_limit,
			   allowed_buffer, working_days, max_paid_leave_per_month, updated_at
		FROM attendance_settings
		WHERE id = 1
	`

	settings, err := scanSettings(q.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// Save implements attendance.SettingsRepository.
func (r *settingsRepositoryImpl) Save(ctx context.Context, settings attendance.Settings) (attendance.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_settings (
			id, morning_start, morning_end, morning_half_day_limit,
			evening_start, evening_end, evening_half_day_limit,
			allowed_buffer, working_days, max_paid_leave_per_month
		)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			morning_start = EXCLUDED.morning_start,
			morning_end = EXCLUDED.morning_end,
			morning_half_day_limit = EXCLUDED.morning_half_day_limit,
			evening_start = EXCLUDED.evening_start,
			evening_end = EXCLUDED.evening_end,
			evening_half_day_limit = EXCLUDED.evening_half_day_limit,
			allowed_buffer = EXCLUDED.allowed_buffer,
			working_days = EXCLUDED.working_days,
			max_paid_leave_per_month = EXCLUDED.max_paid_leave_per_month,
			updated_at = NOW()
		RETURNING morning_start, morning_end, morning_half_day_limit,
				  evening_start, evening_end, evening_half_day_limit,
				  allowed_buffer, working_days, max_paid_leave_per_month, updated_at
	`

	return scanSettings(q.QueryRow(ctx, query,
		int(settings.MorningSlot.Start),
		int(settings.MorningSlot.End),
		int(settings.MorningSlot.HalfDayLimit),
		int(settings.EveningSlot.Start),
		int(settings.EveningSlot.End),
		int(settings.EveningSlot.HalfDayLimit),
		settings.AllowedBuffer,
		settings.WorkingDays,
		settings.MaxPaidLeavePerMonth,
	))
}
