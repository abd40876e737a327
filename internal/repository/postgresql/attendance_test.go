package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/attendance"
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/leave"
	"github.com/gymdesk/gymdesk-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRepository_UpsertKeepsOneRowPerDay(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()
	staffID := createTestStaff(t, ctx)

	repo := postgresql.NewAttendanceRepository(testDB)
	date := time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC)

	checkIn := attendance.ClockTime(480)
	first, err := repo.Upsert(ctx, attendance.DailyAttendance{
		StaffID:     staffID,
		Date:        date,
		MorningSlot: &attendance.SlotOutcome{Status: attendance.SlotPresent, CheckInTime: &checkIn},
		Status:      attendance.StatusHalfDay,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	// A second write for the same staff and day replaces, never appends.
	eveningCheckIn := attendance.ClockTime(1020)
	second, err := repo.Upsert(ctx, attendance.DailyAttendance{
		StaffID:     staffID,
		Date:        date,
		MorningSlot: first.MorningSlot,
		EveningSlot: &attendance.SlotOutcome{Status: attendance.SlotPresent, CheckInTime: &eveningCheckIn},
		Status:      attendance.StatusPresent,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, attendance.StatusPresent, second.Status)

	records, err := repo.ListByDate(ctx, date)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestAttendanceRepository_GetByStaffAndDate_Missing(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()
	staffID := createTestStaff(t, ctx)

	repo := postgresql.NewAttendanceRepository(testDB)

	record, err := repo.GetByStaffAndDate(ctx, staffID, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestAttendanceRepository_ListByDateJoinsStaffName(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()
	staffID := createTestStaff(t, ctx)

	repo := postgresql.NewAttendanceRepository(testDB)
	date := time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC)

	_, err := repo.Upsert(ctx, attendance.DailyAttendance{
		StaffID: staffID,
		Date:    date,
		Status:  attendance.StatusAbsent,
	})
	require.NoError(t, err)

	records, err := repo.ListByDate(ctx, date)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].StaffFirstName)
	assert.Equal(t, "Asha", *records[0].StaffFirstName)
}

func TestSettingsRepository_SaveIsSingleRow(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()

	repo := postgresql.NewSettingsRepository(testDB)

	missing, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, missing)

	settings := attendance.Settings{
		MorningSlot:   attendance.SlotConfig{Start: 360, End: 660, HalfDayLimit: 510},
		EveningSlot:   attendance.SlotConfig{Start: 960, End: 1260, HalfDayLimit: 1110},
		AllowedBuffer: 15,
		WorkingDays:   []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"},
	}
	_, err = repo.Save(ctx, settings)
	require.NoError(t, err)

	settings.AllowedBuffer = 30
	saved, err := repo.Save(ctx, settings)
	require.NoError(t, err)
	assert.Equal(t, 30, saved.AllowedBuffer)

	loaded, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 30, loaded.AllowedBuffer)
	assert.Equal(t, settings.WorkingDays, loaded.WorkingDays)
}

func TestBalanceRepository_AddUsed(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()
	staffID := createTestStaff(t, ctx)

	repo := postgresql.NewBalanceRepository(testDB)

	_, err := repo.Upsert(ctx, leave.Balance{
		StaffID:        staffID,
		Year:           2025,
		TotalPaidLeave: 12,
	})
	require.NoError(t, err)

	require.NoError(t, repo.AddUsed(ctx, staffID, 2025, 2))

	balance, err := repo.Get(ctx, staffID, 2025)
	require.NoError(t, err)
	require.NotNil(t, balance)
	assert.Equal(t, 2, balance.UsedPaidLeave)
	assert.Equal(t, 10, balance.RemainingPaidLeave)

	// Restoring a deleted paid-leave day credits the balance back.
	require.NoError(t, repo.AddUsed(ctx, staffID, 2025, -1))
	balance, err = repo.Get(ctx, staffID, 2025)
	require.NoError(t, err)
	assert.Equal(t, 1, balance.UsedPaidLeave)
}

func TestBalanceRepository_AddUsed_MissingRow(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()
	staffID := createTestStaff(t, ctx)

	repo := postgresql.NewBalanceRepository(testDB)

	err := repo.AddUsed(ctx, staffID, 2025, 1)
	assert.ErrorIs(t, err, leave.ErrBalanceNotFound)
}
