package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/attendance"
	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `a.id, a.staff_id, a.date,
	   a.morning_status, a.morning_check_in, a.morning_late_minutes,
	   a.evening_status, a.evening_check_in, a.evening_late_minutes,
	   a.status, a.leave_type, a.leave_reason, a.notes,
	   a.created_at, a.updated_at,
	   s.first_name, s.last_name`

// Slot outcomes live in nullable column triples; a NULL slot status
// means the slot was never captured.
func scanDailyAttendance(row pgx.Row) (attendance.DailyAttendance, error) {
	var (
		record             attendance.DailyAttendance
		morningStatus      *string
		morningCheckIn     *int
		morningLateMinutes *int
		eveningStatus      *string
		eveningCheckIn     *int
		eveningLateMinutes *int
	)

	err := row.Scan(
		&record.ID,
		&record.StaffID,
		&record.Date,
		&morningStatus,
		&morningCheckIn,
		&morningLateMinutes,
		&eveningStatus,
		&eveningCheckIn,
		&eveningLateMinutes,
		&record.Status,
		&record.LeaveType,
		&record.LeaveReason,
		&record.Notes,
		&record.CreatedAt,
		&record.UpdatedAt,
		&record.StaffFirstName,
		&record.StaffLastName,
	)
	if err != nil {
		return attendance.DailyAttendance{}, err
	}

	record.MorningSlot = buildSlotOutcome(morningStatus, morningCheckIn, morningLateMinutes)
	record.EveningSlot = buildSlotOutcome(eveningStatus, eveningCheckIn, eveningLateMinutes)
	return record, nil
}

func buildSlotOutcome(status *string, checkIn *int, lateMinutes *int) *attendance.SlotOutcome {
	if status == nil {
		return nil
	}
	outcome := &attendance.SlotOutcome{
		Status:      attendance.SlotStatus(*status),
		LateMinutes: lateMinutes,
	}
	if checkIn != nil {
		t := attendance.ClockTime(*checkIn)
		outcome.CheckInTime = &t
	}
	return outcome
}

func slotOutcomeColumns(outcome *attendance.SlotOutcome) (status *string, checkIn *int, lateMinutes *int) {
	if outcome == nil {
		return nil, nil, nil
	}
	s := string(outcome.Status)
	status = &s
	if outcome.CheckInTime != nil {
		c := int(*outcome.CheckInTime)
		checkIn = &c
	}
	return status, checkIn, outcome.LateMinutes
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, record attendance.DailyAttendance) (attendance.DailyAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_attendance (
			staff_id, date,
			morning_status, morning_check_in, morning_late_minutes,
			evening_status, evening_check_in, evening_late_minutes,
			status, leave_type, leave_reason, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (staff_id, date) DO UPDATE SET
			morning_status = EXCLUDED.morning_status,
			morning_check_in = EXCLUDED.morning_check_in,
			morning_late_minutes = EXCLUDED.morning_late_minutes,
			evening_status = EXCLUDED.evening_status,
			evening_check_in = EXCLUDED.evening_check_in,
			evening_late_minutes = EXCLUDED.evening_late_minutes,
			status = EXCLUDED.status,
			leave_type = EXCLUDED.leave_type,
			leave_reason = EXCLUDED.leave_reason,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, staff_id, date,
				  morning_status, morning_check_in, morning_late_minutes,
				  evening_status, evening_check_in, evening_late_minutes,
				  status, leave_type, leave_reason, notes,
				  created_at, updated_at
	`

	morningStatus, morningCheckIn, morningLateMinutes := slotOutcomeColumns(record.MorningSlot)
	eveningStatus, eveningCheckIn, eveningLateMinutes := slotOutcomeColumns(record.EveningSlot)

	var (
		saved    attendance.DailyAttendance
		mStatus  *string
		mCheckIn *int
		mLate    *int
		eStatus  *string
		eCheckIn *int
		eLate    *int
	)
	err := q.QueryRow(ctx, query,
		record.StaffID,
		record.Date,
		morningStatus, morningCheckIn, morningLateMinutes,
		eveningStatus, eveningCheckIn, eveningLateMinutes,
		record.Status,
		record.LeaveType,
		record.LeaveReason,
		record.Notes,
	).Scan(
		&saved.ID,
		&saved.StaffID,
		&saved.Date,
		&mStatus, &mCheckIn, &mLate,
		&eStatus, &eCheckIn, &eLate,
		&saved.Status,
		&saved.LeaveType,
		&saved.LeaveReason,
		&saved.Notes,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return attendance.DailyAttendance{}, err
	}

	saved.MorningSlot = buildSlotOutcome(mStatus, mCheckIn, mLate)
	saved.EveningSlot = buildSlotOutcome(eStatus, eCheckIn, eLate)
	return saved, nil
}

// GetByStaffAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*attendance.DailyAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM daily_attendance a
		JOIN staff s ON s.id = a.staff_id
		WHERE a.staff_id = $1 AND a.date = $2
	`

	record, err := scanDailyAttendance(q.QueryRow(ctx, query, staffID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.DailyAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM daily_attendance a
		JOIN staff s ON s.id = a.staff_id
		WHERE a.date = $1
		ORDER BY s.first_name, s.last_name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.DailyAttendance
	for rows.Next() {
		record, err := scanDailyAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// ListByStaffAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByStaffAndRange(ctx context.Context, staffID string, from, to time.Time) ([]attendance.DailyAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM daily_attendance a
		JOIN staff s ON s.id = a.staff_id
		WHERE a.staff_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.date
	`

	rows, err := q.Query(ctx, query, staffID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.DailyAttendance
	for rows.Next() {
		record, err := scanDailyAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, staffID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM daily_attendance WHERE staff_id = $1 AND date = $2`
	_, err := q.Exec(ctx, query, staffID, date)
	return err
}
