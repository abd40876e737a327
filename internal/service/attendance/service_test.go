package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/attendance"
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/leave"
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/staff"
	leaveService "github.com/gymdesk/gymdesk-backend-go/internal/service/leave"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type fakeAttendanceRepo struct {
	records map[string]attendance.DailyAttendance
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.DailyAttendance)}
}

func recordKey(staffID string, date time.Time) string {
	return staffID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, record attendance.DailyAttendance) (attendance.DailyAttendance, error) {
	key := recordKey(record.StaffID, record.Date)
	if existing, ok := f.records[key]; ok {
		record.ID = existing.ID
	} else {
		f.nextID++
		record.ID = fmt.Sprintf("att-%d", f.nextID)
	}
	f.records[key] = record
	return record, nil
}

func (f *fakeAttendanceRepo) GetByStaffAndDate(_ context.Context, staffID string, date time.Time) (*attendance.DailyAttendance, error) {
	if record, ok := f.records[recordKey(staffID, date)]; ok {
		return &record, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByDate(_ context.Context, date time.Time) ([]attendance.DailyAttendance, error) {
	var out []attendance.DailyAttendance
	for _, record := range f.records {
		if record.Date.Equal(date) {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByStaffAndRange(_ context.Context, staffID string, from, to time.Time) ([]attendance.DailyAttendance, error) {
	var out []attendance.DailyAttendance
	for _, record := range f.records {
		if record.StaffID == staffID && !record.Date.Before(from) && !record.Date.After(to) {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) Delete(_ context.Context, staffID string, date time.Time) error {
	delete(f.records, recordKey(staffID, date))
	return nil
}

type fakeSettingsRepo struct {
	settings *attendance.Settings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*attendance.Settings, error) {
	return f.settings, nil
}

func (f *fakeSettingsRepo) Save(_ context.Context, settings attendance.Settings) (attendance.Settings, error) {
	f.settings = &settings
	return settings, nil
}

type fakeStaffRepo struct {
	members map[string]staff.StaffMember
}

func (f *fakeStaffRepo) Create(_ context.Context, s staff.StaffMember) (staff.StaffMember, error) {
	f.members[s.ID] = s
	return s, nil
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (staff.StaffMember, error) {
	if member, ok := f.members[id]; ok {
		return member, nil
	}
	return staff.StaffMember{}, pgx.ErrNoRows
}

func (f *fakeStaffRepo) Update(_ context.Context, s staff.StaffMember) error {
	f.members[s.ID] = s
	return nil
}

func (f *fakeStaffRepo) Delete(_ context.Context, id string) error {
	delete(f.members, id)
	return nil
}

func (f *fakeStaffRepo) List(_ context.Context, _ staff.StaffFilter) ([]staff.StaffMember, int64, error) {
	var out []staff.StaffMember
	for _, member := range f.members {
		out = append(out, member)
	}
	return out, int64(len(out)), nil
}

func (f *fakeStaffRepo) ListActive(_ context.Context) ([]staff.StaffMember, error) {
	var out []staff.StaffMember
	for _, member := range f.members {
		if member.IsActive {
			out = append(out, member)
		}
	}
	return out, nil
}

func (f *fakeStaffRepo) ExistsByEmail(_ context.Context, email string, excludeID string) (bool, error) {
	for _, member := range f.members {
		if member.Email == email && member.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeBalanceRepo struct {
	balances map[string]leave.Balance
}

func balanceKey(staffID string, year int) string {
	return fmt.Sprintf("%s|%d", staffID, year)
}

func (f *fakeBalanceRepo) Get(_ context.Context, staffID string, year int) (*leave.Balance, error) {
	if balance, ok := f.balances[balanceKey(staffID, year)]; ok {
		return &balance, nil
	}
	return nil, nil
}

func (f *fakeBalanceRepo) Upsert(_ context.Context, balance leave.Balance) (leave.Balance, error) {
	balance.RemainingPaidLeave = balance.TotalPaidLeave - balance.UsedPaidLeave
	f.balances[balanceKey(balance.StaffID, balance.Year)] = balance
	return balance, nil
}

func (f *fakeBalanceRepo) AddUsed(_ context.Context, staffID string, year int, delta int) error {
	balance, ok := f.balances[balanceKey(staffID, year)]
	if !ok {
		return leave.ErrBalanceNotFound
	}
	balance.UsedPaidLeave += delta
	balance.RemainingPaidLeave = balance.TotalPaidLeave - balance.UsedPaidLeave
	f.balances[balanceKey(staffID, year)] = balance
	return nil
}

// ===== FIXTURE =====

type serviceFixture struct {
	svc         *AttendanceServiceImpl
	attendances *fakeAttendanceRepo
	settings    *fakeSettingsRepo
	staffRepo   *fakeStaffRepo
	balances    *fakeBalanceRepo
}

// newServiceFixture wires the service with fakes. The clock is pinned to
// Monday 2025-09-15 08:00 UTC unless a test overrides it.
func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	settings := testSettings(t)

	f := &serviceFixture{
		attendances: newFakeAttendanceRepo(),
		settings:    &fakeSettingsRepo{settings: &settings},
		staffRepo: &fakeStaffRepo{members: map[string]staff.StaffMember{
			"staff-1": {
				ID:        "staff-1",
				FirstName: "Asha",
				LastName:  "Patel",
				Email:     "asha@example.com",
				IsActive:  true,
				JoinDate:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			},
		}},
		balances: &fakeBalanceRepo{balances: make(map[string]leave.Balance)},
	}

	f.svc = &AttendanceServiceImpl{
		AttendanceRepository: f.attendances,
		SettingsRepository:   f.settings,
		StaffRepository:      f.staffRepo,
		BalanceRepository:    f.balances,
		leaveValidator:       leaveService.NewValidator(),
		now: func() time.Time {
			return time.Date(2025, time.September, 15, 8, 0, 0, 0, time.UTC)
		},
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
	return f
}

func (f *serviceFixture) setClock(t time.Time) {
	f.svc.now = func() time.Time { return t }
}

// ===== CHECK-IN =====

func TestAttendanceService_CheckIn_MorningPresent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)

	resp, err := f.svc.CheckIn(ctx, attendance.CheckInRequest{StaffID: "staff-1"})
	require.NoError(t, err)

	require.NotNil(t, resp.MorningSlot)
	assert.Equal(t, attendance.SlotPresent, resp.MorningSlot.Status)
	assert.Equal(t, attendance.StatusHalfDay, resp.Status)
	assert.Equal(t, "2025-09-15", resp.Date)
}

func TestAttendanceService_CheckIn_BothSlotsMakePresent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)

	_, err := f.svc.CheckIn(ctx, attendance.CheckInRequest{StaffID: "staff-1"})
	require.NoError(t, err)

	f.setClock(time.Date(2025, time.September, 15, 17, 0, 0, 0, time.UTC))
	resp, err := f.svc.CheckIn(ctx, attendance.CheckInRequest{StaffID: "staff-1"})
	require.NoError(t, err)

	require.NotNil(t, resp.MorningSlot)
	require.NotNil(t, resp.EveningSlot)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
}

func TestAttendanceService_CheckIn_LateAfterHalfDayLimit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)
	f.setClock(time.Date(2025, time.September, 15, 8, 45, 0, 0, time.UTC))

	resp, err := f.svc.CheckIn(ctx, attendance.CheckInRequest{StaffID: "staff-1"})
	require.NoError(t, err)

	require.NotNil(t, resp.MorningSlot)
	assert.Equal(t, attendance.SlotLate, resp.MorningSlot.Status)
	require.NotNil(t, resp.MorningSlot.LateMinutes)
	assert.Equal(t, 165, *resp.MorningSlot.LateMinutes)
	assert.Equal(t, attendance.StatusHalfDay, resp.Status)
}

func TestAttendanceService_CheckIn_OutsideHours(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)
	f.setClock(time.Date(2025, time.September, 15, 13, 0, 0, 0, time.UTC))

	_, err := f.svc.CheckIn(ctx, attendance.CheckInRequest{StaffID: "staff-1"})
	assert.ErrorIs(t, err, attendance.ErrOutsideAttendanceHours)
}

func TestAttendanceService_CheckIn_RepeatReplacesSlotOutcome(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)

	first, err := f.svc.CheckIn(ctx, attendance.CheckInRequest{StaffID: "staff-1"})
	require.NoError(t, err)

	second, err := f.svc.CheckIn(ctx, attendance.CheckInRequest{
		StaffID:   "staff-1",
		Timestamp: "2025-09-15T08:45:00Z",
	})
	require.NoError(t, err)

	// Same record, replaced morning outcome. No second row appears.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, attendance.SlotLate, second.MorningSlot.Status)
	assert.Len(t, f.attendances.records, 1)
}

func TestAttendanceService_CheckIn_FutureDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)

	_, err := f.svc.CheckIn(ctx, attendance.CheckInRequest{
		StaffID:   "staff-1",
		Timestamp: "2025-09-16T08:00:00Z",
	})
	assert.ErrorIs(t, err, attendance.ErrFutureDate)
}

func TestAttendanceService_CheckIn_SettingsNotConfigured(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)
	f.settings.settings = nil

	_, err := f.svc.CheckIn(ctx, attendance.CheckInRequest{StaffID: "staff-1"})
	assert.ErrorIs(t, err, attendance.ErrSettingsNotConfigured)
}

func TestAttendanceService_CheckIn_UnknownStaff(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)

	_, err := f.svc.CheckIn(ctx, attendance.CheckInRequest{StaffID: "nobody"})
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestAttendanceService_CheckIn_LeaveDayIsUntouched(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)

	leaveType := attendance.LeavePaid
	_, err := f.attendances.Upsert(ctx, attendance.DailyAttendance{
		StaffID:   "staff-1",
		Date:      time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC),
		LeaveType: &leaveType,
		Status:    attendance.StatusPaidLeave,
	})
	require.NoError(t, err)

	resp, err := f.svc.CheckIn(ctx, attendance.CheckInRequest{StaffID: "staff-1"})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPaidLeave, resp.Status)
	assert.Nil(t, resp.MorningSlot)
}

// ===== MANUAL MARK =====

func TestAttendanceService_Mark_PresentWithExplicitTime(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)

	resp, err := f.svc.Mark(ctx, attendance.MarkRequest{
		StaffID:     "staff-1",
		Date:        "2025-09-10",
		Slot:        "morning",
		Status:      "present",
		CheckInTime: "07:15",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.MorningSlot)
	assert.Equal(t, attendance.SlotPresent, resp.MorningSlot.Status)
	assert.Equal(t, "07:15", resp.MorningSlot.CheckInTime.String())
}

func TestAttendanceService_Mark_ExplicitTimePastHalfDayLimit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)

	_, err := f.svc.Mark(ctx, attendance.MarkRequest{
		StaffID:     "staff-1",
		Date:        "2025-09-10",
		Slot:        "morning",
		Status:      "present",
		CheckInTime: "09:00",
	})
	assert.ErrorIs(t, err, attendance.ErrHalfDayLimitPassed)
}

func TestAttendanceService_Mark_SameDayPastLimitWithoutTime(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)
	f.setClock(time.Date(2025, time.September, 15, 9, 0, 0, 0, time.UTC))

	_, err := f.svc.Mark(ctx, attendance.MarkRequest{
		StaffID: "staff-1",
		Date:    "2025-09-15",
		Slot:    "morning",
		Status:  "present",
	})
	assert.ErrorIs(t, err, attendance.ErrHalfDayLimitPassed)
}

func TestAttendanceService_Mark_BackDatedDefaultsToSlotStart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)

	resp, err := f.svc.Mark(ctx, attendance.MarkRequest{
		StaffID: "staff-1",
		Date:    "2025-09-10",
		Slot:    "evening",
		Status:  "present",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.EveningSlot)
	assert.Equal(t, "16:00", resp.EveningSlot.CheckInTime.String())
}

func TestAttendanceService_Mark_FutureDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)

	_, err := f.svc.Mark(ctx, attendance.MarkRequest{
		StaffID: "staff-1",
		Date:    "2025-09-16",
		Slot:    "morning",
		Status:  "present",
	})
	assert.ErrorIs(t, err, attendance.ErrFutureDate)
}

func TestAttendanceService_Mark_ReplacesRecordedLeave(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)

	leaveType := attendance.LeaveUnpaid
	_, err := f.attendances.Upsert(ctx, attendance.DailyAttendance{
		StaffID:   "staff-1",
		Date:      time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC),
		LeaveType: &leaveType,
		Status:    attendance.StatusUnpaidLeave,
	})
	require.NoError(t, err)

	resp, err := f.svc.Mark(ctx, attendance.MarkRequest{
		StaffID:     "staff-1",
		Date:        "2025-09-10",
		Slot:        "morning",
		Status:      "present",
		CheckInTime: "06:30",
	})
	require.NoError(t, err)

	assert.Nil(t, resp.LeaveType)
	assert.Equal(t, attendance.StatusHalfDay, resp.Status)
}

func TestAttendanceService_Mark_ReplacingPaidLeaveRestoresBalance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)
	f.balances.balances[balanceKey("staff-1", 2025)] = leave.Balance{
		StaffID:            "staff-1",
		Year:               2025,
		TotalPaidLeave:     12,
		UsedPaidLeave:      1,
		RemainingPaidLeave: 11,
	}

	leaveType := attendance.LeavePaid
	_, err := f.attendances.Upsert(ctx, attendance.DailyAttendance{
		StaffID:   "staff-1",
		Date:      time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC),
		LeaveType: &leaveType,
		Status:    attendance.StatusPaidLeave,
	})
	require.NoError(t, err)

	resp, err := f.svc.Mark(ctx, attendance.MarkRequest{
		StaffID:     "staff-1",
		Date:        "2025-09-10",
		Slot:        "morning",
		Status:      "present",
		CheckInTime: "06:30",
	})
	require.NoError(t, err)
	assert.Nil(t, resp.LeaveType)

	// The debited day comes back to the year's balance.
	balance := f.balances.balances[balanceKey("staff-1", 2025)]
	assert.Equal(t, 0, balance.UsedPaidLeave)
	assert.Equal(t, 12, balance.RemainingPaidLeave)
}

func TestAttendanceService_Mark_UnpaidLeaveLeavesBalanceAlone(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)
	f.balances.balances[balanceKey("staff-1", 2025)] = leave.Balance{
		StaffID:            "staff-1",
		Year:               2025,
		TotalPaidLeave:     12,
		UsedPaidLeave:      3,
		RemainingPaidLeave: 9,
	}

	leaveType := attendance.LeaveUnpaid
	_, err := f.attendances.Upsert(ctx, attendance.DailyAttendance{
		StaffID:   "staff-1",
		Date:      time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC),
		LeaveType: &leaveType,
		Status:    attendance.StatusUnpaidLeave,
	})
	require.NoError(t, err)

	_, err = f.svc.Mark(ctx, attendance.MarkRequest{
		StaffID:     "staff-1",
		Date:        "2025-09-10",
		Slot:        "morning",
		Status:      "present",
		CheckInTime: "06:30",
	})
	require.NoError(t, err)

	balance := f.balances.balances[balanceKey("staff-1", 2025)]
	assert.Equal(t, 3, balance.UsedPaidLeave)
}

// ===== LEAVE =====

func TestAttendanceService_RecordLeave_InsufficientBalance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)
	f.balances.balances[balanceKey("staff-1", 2025)] = leave.Balance{
		StaffID:            "staff-1",
		Year:               2025,
		TotalPaidLeave:     12,
		UsedPaidLeave:      11,
		RemainingPaidLeave: 1,
	}

	_, err := f.svc.RecordLeave(ctx, attendance.RecordLeaveRequest{
		StaffID:   "staff-1",
		StartDate: "2025-09-10",
		EndDate:   "2025-09-11",
		LeaveType: "paid",
	})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
}

func TestAttendanceService_RecordLeave_MonthlyCapExceeded(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)
	f.balances.balances[balanceKey("staff-1", 2025)] = leave.Balance{
		StaffID:            "staff-1",
		Year:               2025,
		TotalPaidLeave:     12,
		UsedPaidLeave:      0,
		RemainingPaidLeave: 12,
	}

	// Mon-Wed is three working days, above the default cap of two.
	_, err := f.svc.RecordLeave(ctx, attendance.RecordLeaveRequest{
		StaffID:   "staff-1",
		StartDate: "2025-09-08",
		EndDate:   "2025-09-10",
		LeaveType: "paid",
	})
	assert.ErrorIs(t, err, leave.ErrMonthlyCapExceeded)
}

func TestAttendanceService_RecordLeave_NoBalanceRow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)

	_, err := f.svc.RecordLeave(ctx, attendance.RecordLeaveRequest{
		StaffID:   "staff-1",
		StartDate: "2025-09-10",
		EndDate:   "2025-09-10",
		LeaveType: "paid",
	})
	assert.ErrorIs(t, err, leave.ErrBalanceNotFound)
}

func TestAttendanceService_RecordLeave_FutureEndDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)

	_, err := f.svc.RecordLeave(ctx, attendance.RecordLeaveRequest{
		StaffID:   "staff-1",
		StartDate: "2025-09-15",
		EndDate:   "2025-09-20",
		LeaveType: "unpaid",
	})
	assert.ErrorIs(t, err, attendance.ErrFutureDate)
}

func TestAttendanceService_RecordLeave_NonWorkingDaysOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)

	// 2025-09-14 is a Sunday, the only non-working day in the fixture.
	responses, err := f.svc.RecordLeave(ctx, attendance.RecordLeaveRequest{
		StaffID:   "staff-1",
		StartDate: "2025-09-14",
		EndDate:   "2025-09-14",
		LeaveType: "unpaid",
	})
	require.NoError(t, err)
	assert.Empty(t, responses)
}

func TestAttendanceService_RecordLeave_PaidDebitsBalance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)
	f.balances.balances[balanceKey("staff-1", 2025)] = leave.Balance{
		StaffID:            "staff-1",
		Year:               2025,
		TotalPaidLeave:     12,
		UsedPaidLeave:      0,
		RemainingPaidLeave: 12,
	}

	// Wed-Thu, two working days within the monthly cap.
	responses, err := f.svc.RecordLeave(ctx, attendance.RecordLeaveRequest{
		StaffID:   "staff-1",
		StartDate: "2025-09-10",
		EndDate:   "2025-09-11",
		LeaveType: "paid",
		Reason:    "family visit",
	})
	require.NoError(t, err)

	require.Len(t, responses, 2)
	for _, resp := range responses {
		assert.Equal(t, attendance.StatusPaidLeave, resp.Status)
	}
	assert.Len(t, f.attendances.records, 2)

	balance := f.balances.balances[balanceKey("staff-1", 2025)]
	assert.Equal(t, 2, balance.UsedPaidLeave)
	assert.Equal(t, 10, balance.RemainingPaidLeave)
}

func TestAttendanceService_RecordLeave_UnpaidSkipsBalance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)

	// No balance row exists; unpaid leave never needs one.
	responses, err := f.svc.RecordLeave(ctx, attendance.RecordLeaveRequest{
		StaffID:   "staff-1",
		StartDate: "2025-09-10",
		EndDate:   "2025-09-10",
		LeaveType: "unpaid",
	})
	require.NoError(t, err)

	require.Len(t, responses, 1)
	assert.Equal(t, attendance.StatusUnpaidLeave, responses[0].Status)
	assert.Empty(t, f.balances.balances)
}

func TestAttendanceService_RecordLeave_CrossYearRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)
	f.setClock(time.Date(2026, time.January, 15, 8, 0, 0, 0, time.UTC))

	_, err := f.svc.RecordLeave(ctx, attendance.RecordLeaveRequest{
		StaffID:   "staff-1",
		StartDate: "2025-12-29",
		EndDate:   "2026-01-02",
		LeaveType: "paid",
	})
	assert.ErrorIs(t, err, attendance.ErrCrossYearLeave)
}

// ===== DELETE =====

func TestAttendanceService_Delete_PaidLeaveRestoresBalance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)
	f.balances.balances[balanceKey("staff-1", 2025)] = leave.Balance{
		StaffID:            "staff-1",
		Year:               2025,
		TotalPaidLeave:     12,
		UsedPaidLeave:      1,
		RemainingPaidLeave: 11,
	}

	leaveType := attendance.LeavePaid
	_, err := f.attendances.Upsert(ctx, attendance.DailyAttendance{
		StaffID:   "staff-1",
		Date:      time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC),
		LeaveType: &leaveType,
		Status:    attendance.StatusPaidLeave,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, "staff-1", "2025-09-10"))

	assert.Empty(t, f.attendances.records)
	balance := f.balances.balances[balanceKey("staff-1", 2025)]
	assert.Equal(t, 0, balance.UsedPaidLeave)
}

func TestAttendanceService_Delete_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)

	err := f.svc.Delete(ctx, "staff-1", "2025-09-10")
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

// ===== REPORTS =====

func TestAttendanceService_MonthlyReport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)

	for day := 1; day <= 6; day++ {
		date := time.Date(2025, time.September, day, 0, 0, 0, 0, time.UTC)
		if !f.settings.settings.IsWorkingDay(date) {
			continue
		}
		_, err := f.attendances.Upsert(ctx, attendance.DailyAttendance{
			StaffID: "staff-1",
			Date:    date,
			Status:  attendance.StatusPresent,
		})
		require.NoError(t, err)
	}

	summary, err := f.svc.MonthlyReport(ctx, "staff-1", 9, 2025)
	require.NoError(t, err)

	assert.Equal(t, "Asha", summary.FirstName)
	assert.Equal(t, 6, summary.PresentDays)
	assert.Equal(t, 26, summary.TotalWorkingDays)
}

func TestAttendanceService_MonthlyReport_UnknownStaff(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)

	_, err := f.svc.MonthlyReport(ctx, "nobody", 9, 2025)
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestAttendanceService_MonthlyReportAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture(t)
	f.staffRepo.members["staff-2"] = staff.StaffMember{
		ID:        "staff-2",
		FirstName: "Ravi",
		LastName:  "Kumar",
		IsActive:  true,
	}
	f.staffRepo.members["staff-3"] = staff.StaffMember{
		ID:        "staff-3",
		FirstName: "Former",
		LastName:  "Employee",
		IsActive:  false,
	}

	summaries, err := f.svc.MonthlyReportAll(ctx, 9, 2025)
	require.NoError(t, err)

	// Inactive staff are excluded.
	assert.Len(t, summaries, 2)
}
