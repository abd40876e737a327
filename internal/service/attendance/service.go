package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/attendance"
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/leave"
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/staff"
	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/database"
	"github.com/gymdesk/gymdesk-backend-go/internal/repository/postgresql"
	leaveService "github.com/gymdesk/gymdesk-backend-go/internal/service/leave"
	"github.com/jackc/pgx/v5"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	attendance.SettingsRepository
	staff.StaffRepository
	leave.BalanceRepository
	leaveValidator *leaveService.Validator

	// now is the clock source; overridable in tests.
	now func() time.Time

	// runInTx executes fn with a transaction bound to the context;
	// overridable in tests.
	runInTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepository attendance.AttendanceRepository,
	settingsRepository attendance.SettingsRepository,
	staffRepository staff.StaffRepository,
	balanceRepository leave.BalanceRepository,
	leaveValidator *leaveService.Validator,
) attendance.AttendanceService {
	service := &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		SettingsRepository:   settingsRepository,
		StaffRepository:      staffRepository,
		BalanceRepository:    balanceRepository,
		leaveValidator:       leaveValidator,
		now:                  time.Now,
	}
	service.runInTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
			return fn(context.WithValue(ctx, postgresql.TxKey, tx))
		})
	}
	return service
}

// loadSettings pulls the governing settings. Classification cannot
// proceed without them; there is no silent default.
func (a *AttendanceServiceImpl) loadSettings(ctx context.Context) (attendance.Settings, error) {
	settings, err := a.SettingsRepository.Get(ctx)
	if err != nil {
		return attendance.Settings{}, fmt.Errorf("failed to load attendance settings: %w", err)
	}
	if settings == nil {
		return attendance.Settings{}, attendance.ErrSettingsNotConfigured
	}
	return *settings, nil
}

func (a *AttendanceServiceImpl) requireStaff(ctx context.Context, staffID string) error {
	if _, err := a.StaffRepository.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.ErrStaffNotFound
		}
		return fmt.Errorf("failed to get staff member: %w", err)
	}
	return nil
}

// dateOf truncates a timestamp to its calendar day at UTC midnight.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.DailyAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DailyAttendanceResponse{}, err
	}

	settings, err := a.loadSettings(ctx)
	if err != nil {
		return attendance.DailyAttendanceResponse{}, err
	}

	if err := a.requireStaff(ctx, req.StaffID); err != nil {
		return attendance.DailyAttendanceResponse{}, err
	}

	moment := a.now()
	if req.Timestamp != "" {
		moment, err = time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			return attendance.DailyAttendanceResponse{}, fmt.Errorf("failed to parse timestamp: %w", err)
		}
	}

	date := dateOf(moment)
	if date.After(dateOf(a.now())) {
		return attendance.DailyAttendanceResponse{}, attendance.ErrFutureDate
	}

	t := attendance.ClockTimeOf(moment)
	slotName, slotConfig, open := OpenSlot(settings, t)
	if !open {
		return attendance.DailyAttendanceResponse{}, attendance.ErrOutsideAttendanceHours
	}

	outcome, err := ClassifySlot(t, slotConfig, settings.AllowedBuffer)
	if err != nil {
		return attendance.DailyAttendanceResponse{}, err
	}

	existing, err := a.AttendanceRepository.GetByStaffAndDate(ctx, req.StaffID, date)
	if err != nil {
		return attendance.DailyAttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	record := attendance.DailyAttendance{
		StaffID: req.StaffID,
		Date:    date,
	}
	if existing != nil {
		record = *existing
	}

	// A leave day keeps its slots cleared; the check-in is not evaluated.
	if record.LeaveType != nil {
		return attendance.NewDailyAttendanceResponse(record), nil
	}

	if slotName == attendance.SlotMorning {
		record.MorningSlot = &outcome
	} else {
		record.EveningSlot = &outcome
	}
	record.Status = ResolveDailyStatus(record.MorningSlot, record.EveningSlot, record.LeaveType)

	saved, err := a.AttendanceRepository.Upsert(ctx, record)
	if err != nil {
		return attendance.DailyAttendanceResponse{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return attendance.NewDailyAttendanceResponse(saved), nil
}

// Mark implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkRequest) (attendance.DailyAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DailyAttendanceResponse{}, err
	}

	settings, err := a.loadSettings(ctx)
	if err != nil {
		return attendance.DailyAttendanceResponse{}, err
	}

	if err := a.requireStaff(ctx, req.StaffID); err != nil {
		return attendance.DailyAttendanceResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.DailyAttendanceResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}
	today := dateOf(a.now())
	if date.After(today) {
		return attendance.DailyAttendanceResponse{}, attendance.ErrFutureDate
	}

	slotConfig := settings.MorningSlot
	if attendance.Slot(req.Slot) == attendance.SlotEvening {
		slotConfig = settings.EveningSlot
	}

	var outcome attendance.SlotOutcome
	if attendance.SlotStatus(req.Status) == attendance.SlotPresent {
		outcome, err = a.presentOutcome(req, slotConfig, date.Equal(today))
		if err != nil {
			return attendance.DailyAttendanceResponse{}, err
		}
	} else {
		outcome = attendance.SlotOutcome{Status: attendance.SlotAbsent}
	}

	existing, err := a.AttendanceRepository.GetByStaffAndDate(ctx, req.StaffID, date)
	if err != nil {
		return attendance.DailyAttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	record := attendance.DailyAttendance{
		StaffID: req.StaffID,
		Date:    date,
	}
	if existing != nil {
		record = *existing
	}

	// A manual mark replaces any recorded leave for that day. A paid
	// leave day gives its debited day back to the year's balance.
	replacesPaidLeave := record.LeaveType != nil && *record.LeaveType == attendance.LeavePaid
	record.LeaveType = nil
	record.LeaveReason = nil

	if attendance.Slot(req.Slot) == attendance.SlotMorning {
		record.MorningSlot = &outcome
	} else {
		record.EveningSlot = &outcome
	}
	record.Status = ResolveDailyStatus(record.MorningSlot, record.EveningSlot, nil)

	var saved attendance.DailyAttendance
	err = a.runInTx(ctx, func(ctx context.Context) error {
		if replacesPaidLeave {
			if err := a.BalanceRepository.AddUsed(ctx, req.StaffID, date.Year(), -1); err != nil {
				return fmt.Errorf("failed to restore leave balance: %w", err)
			}
		}

		saved, err = a.AttendanceRepository.Upsert(ctx, record)
		if err != nil {
			return fmt.Errorf("failed to upsert attendance record: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.DailyAttendanceResponse{}, err
	}

	return attendance.NewDailyAttendanceResponse(saved), nil
}

// presentOutcome builds the outcome for a manual full-present mark,
// refusing it past the half-day limit instead of downgrading.
func (a *AttendanceServiceImpl) presentOutcome(req attendance.MarkRequest, slotConfig attendance.SlotConfig, isToday bool) (attendance.SlotOutcome, error) {
	if req.CheckInTime != "" {
		checkIn, err := attendance.ParseClockTime(req.CheckInTime)
		if err != nil {
			return attendance.SlotOutcome{}, fmt.Errorf("failed to parse check_in_time: %w", err)
		}
		if !CanMarkFullPresent(slotConfig, checkIn) {
			return attendance.SlotOutcome{}, attendance.ErrHalfDayLimitPassed
		}
		return attendance.SlotOutcome{Status: attendance.SlotPresent, CheckInTime: &checkIn}, nil
	}

	// Same-day mark without an explicit time uses the wall clock; a
	// back-dated correction defaults to the slot start.
	if isToday {
		nowClock := attendance.ClockTimeOf(a.now())
		if !CanMarkFullPresent(slotConfig, nowClock) {
			return attendance.SlotOutcome{}, attendance.ErrHalfDayLimitPassed
		}
		return attendance.SlotOutcome{Status: attendance.SlotPresent, CheckInTime: &nowClock}, nil
	}

	start := slotConfig.Start
	return attendance.SlotOutcome{Status: attendance.SlotPresent, CheckInTime: &start}, nil
}

// RecordLeave implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RecordLeave(ctx context.Context, req attendance.RecordLeaveRequest) ([]attendance.DailyAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	settings, err := a.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	if err := a.requireStaff(ctx, req.StaffID); err != nil {
		return nil, err
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse end date: %w", err)
	}

	if end.After(dateOf(a.now())) {
		return nil, attendance.ErrFutureDate
	}
	// The paid leave balance is a per-year ledger; a range spanning two
	// years would debit days into the wrong year.
	if start.Year() != end.Year() {
		return nil, attendance.ErrCrossYearLeave
	}

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if settings.IsWorkingDay(d) {
			days = append(days, dateOf(d))
		}
	}
	if len(days) == 0 {
		return []attendance.DailyAttendanceResponse{}, nil
	}

	leaveType := attendance.LeaveType(req.LeaveType)
	if leaveType == attendance.LeavePaid {
		balance, err := a.BalanceRepository.Get(ctx, req.StaffID, start.Year())
		if err != nil {
			return nil, fmt.Errorf("failed to get leave balance: %w", err)
		}
		if balance == nil {
			return nil, leave.ErrBalanceNotFound
		}
		if err := a.leaveValidator.ValidateRequest(len(days), leaveType, *balance, settings); err != nil {
			return nil, err
		}
	}

	var reason *string
	if req.Reason != "" {
		reason = &req.Reason
	}

	var responses []attendance.DailyAttendanceResponse
	err = a.runInTx(ctx, func(ctx context.Context) error {
		for _, day := range days {
			record := attendance.DailyAttendance{
				StaffID:     req.StaffID,
				Date:        day,
				LeaveType:   &leaveType,
				LeaveReason: reason,
			}
			record.Status = ResolveDailyStatus(nil, nil, record.LeaveType)

			saved, err := a.AttendanceRepository.Upsert(ctx, record)
			if err != nil {
				return fmt.Errorf("failed to upsert leave record: %w", err)
			}
			responses = append(responses, attendance.NewDailyAttendanceResponse(saved))
		}

		if leaveType == attendance.LeavePaid {
			if err := a.BalanceRepository.AddUsed(ctx, req.StaffID, start.Year(), len(days)); err != nil {
				return fmt.Errorf("failed to debit leave balance: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return responses, nil
}

// ListByDate implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListByDate(ctx context.Context, dateStr string) ([]attendance.DailyAttendanceResponse, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	records, err := a.AttendanceRepository.ListByDate(ctx, dateOf(date))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.DailyAttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.NewDailyAttendanceResponse(record))
	}
	return responses, nil
}

// ListByStaff implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListByStaff(ctx context.Context, staffID, fromStr, toStr string) ([]attendance.DailyAttendanceResponse, error) {
	if err := a.requireStaff(ctx, staffID); err != nil {
		return nil, err
	}

	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse from date: %w", err)
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse to date: %w", err)
	}

	records, err := a.AttendanceRepository.ListByStaffAndRange(ctx, staffID, dateOf(from), dateOf(to))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.DailyAttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.NewDailyAttendanceResponse(record))
	}
	return responses, nil
}

// Delete implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Delete(ctx context.Context, staffID, dateStr string) error {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("failed to parse date: %w", err)
	}
	date = dateOf(date)

	record, err := a.AttendanceRepository.GetByStaffAndDate(ctx, staffID, date)
	if err != nil {
		return fmt.Errorf("failed to get attendance record: %w", err)
	}
	if record == nil {
		return attendance.ErrAttendanceNotFound
	}

	return a.runInTx(ctx, func(ctx context.Context) error {
		// Deleting a paid leave day restores the balance.
		if record.Status == attendance.StatusPaidLeave {
			if err := a.BalanceRepository.AddUsed(ctx, staffID, date.Year(), -1); err != nil {
				return fmt.Errorf("failed to restore leave balance: %w", err)
			}
		}

		if err := a.AttendanceRepository.Delete(ctx, staffID, date); err != nil {
			return fmt.Errorf("failed to delete attendance record: %w", err)
		}
		return nil
	})
}

// MonthlyReport implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MonthlyReport(ctx context.Context, staffID string, month, year int) (attendance.MonthlyAttendance, error) {
	settings, err := a.loadSettings(ctx)
	if err != nil {
		return attendance.MonthlyAttendance{}, err
	}

	staffMember, err := a.StaffRepository.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.MonthlyAttendance{}, staff.ErrStaffNotFound
		}
		return attendance.MonthlyAttendance{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	summary, err := a.monthlyReportFor(ctx, staffMember, month, year, settings)
	if err != nil {
		return attendance.MonthlyAttendance{}, err
	}
	return summary, nil
}

// MonthlyReportAll implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MonthlyReportAll(ctx context.Context, month, year int) ([]attendance.MonthlyAttendance, error) {
	settings, err := a.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	staffMembers, err := a.StaffRepository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active staff: %w", err)
	}

	summaries := make([]attendance.MonthlyAttendance, 0, len(staffMembers))
	for _, staffMember := range staffMembers {
		summary, err := a.monthlyReportFor(ctx, staffMember, month, year, settings)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (a *AttendanceServiceImpl) monthlyReportFor(ctx context.Context, staffMember staff.StaffMember, month, year int, settings attendance.Settings) (attendance.MonthlyAttendance, error) {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	rows, err := a.AttendanceRepository.ListByStaffAndRange(ctx, staffMember.ID, monthStart, monthEnd)
	if err != nil {
		return attendance.MonthlyAttendance{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	summary := AggregateMonth(staffMember.ID, year, time.Month(month), rows, settings)
	summary.FirstName = staffMember.FirstName
	summary.LastName = staffMember.LastName
	return summary, nil
}
