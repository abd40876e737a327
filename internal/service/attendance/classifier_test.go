package attendance

import (
	"testing"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClock(t *testing.T, s string) attendance.ClockTime {
	t.Helper()
	parsed, err := attendance.ParseClockTime(s)
	require.NoError(t, err)
	return parsed
}

func testSettings(t *testing.T) attendance.Settings {
	t.Helper()
	return attendance.Settings{
		MorningSlot: attendance.SlotConfig{
			Start:        mustClock(t, "06:00"),
			End:          mustClock(t, "11:00"),
			HalfDayLimit: mustClock(t, "08:30"),
		},
		EveningSlot: attendance.SlotConfig{
			Start:        mustClock(t, "16:00"),
			End:          mustClock(t, "21:00"),
			HalfDayLimit: mustClock(t, "18:30"),
		},
		AllowedBuffer: 15,
		WorkingDays:   []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"},
	}
}

func TestClassifySlot_PresentBeforeHalfDayLimit(t *testing.T) {
	t.Parallel()
	settings := testSettings(t)

	outcome, err := ClassifySlot(mustClock(t, "08:00"), settings.MorningSlot, settings.AllowedBuffer)
	require.NoError(t, err)

	assert.Equal(t, attendance.SlotPresent, outcome.Status)
	require.NotNil(t, outcome.CheckInTime)
	assert.Equal(t, mustClock(t, "08:00"), *outcome.CheckInTime)
	assert.Nil(t, outcome.LateMinutes)
}

func TestClassifySlot_PresentExactlyAtHalfDayLimit(t *testing.T) {
	t.Parallel()
	settings := testSettings(t)

	outcome, err := ClassifySlot(mustClock(t, "08:30"), settings.MorningSlot, settings.AllowedBuffer)
	require.NoError(t, err)

	assert.Equal(t, attendance.SlotPresent, outcome.Status)
}

func TestClassifySlot_LateAfterHalfDayLimit(t *testing.T) {
	t.Parallel()
	settings := testSettings(t)

	outcome, err := ClassifySlot(mustClock(t, "08:45"), settings.MorningSlot, settings.AllowedBuffer)
	require.NoError(t, err)

	assert.Equal(t, attendance.SlotLate, outcome.Status)
	require.NotNil(t, outcome.LateMinutes)
	// 08:45 is 165 minutes past the 06:00 slot start.
	assert.Equal(t, 165, *outcome.LateMinutes)
}

func TestClassifySlot_AtSlotBoundaries(t *testing.T) {
	t.Parallel()
	settings := testSettings(t)

	// Exactly at slot start.
	outcome, err := ClassifySlot(mustClock(t, "06:00"), settings.MorningSlot, settings.AllowedBuffer)
	require.NoError(t, err)
	assert.Equal(t, attendance.SlotPresent, outcome.Status)

	// Exactly at end + buffer.
	outcome, err = ClassifySlot(mustClock(t, "11:15"), settings.MorningSlot, settings.AllowedBuffer)
	require.NoError(t, err)
	assert.Equal(t, attendance.SlotLate, outcome.Status)
}

func TestClassifySlot_OutsideWindow(t *testing.T) {
	t.Parallel()
	settings := testSettings(t)

	// One minute before the slot opens.
	_, err := ClassifySlot(mustClock(t, "05:59"), settings.MorningSlot, settings.AllowedBuffer)
	assert.ErrorIs(t, err, attendance.ErrOutsideAttendanceHours)

	// One minute past end + buffer.
	_, err = ClassifySlot(mustClock(t, "11:16"), settings.MorningSlot, settings.AllowedBuffer)
	assert.ErrorIs(t, err, attendance.ErrOutsideAttendanceHours)
}

func TestOpenSlot(t *testing.T) {
	t.Parallel()
	settings := testSettings(t)

	tests := []struct {
		name     string
		time     string
		wantSlot attendance.Slot
		wantOpen bool
	}{
		{"morning window", "07:30", attendance.SlotMorning, true},
		{"morning buffer tail", "11:10", attendance.SlotMorning, true},
		{"between windows", "13:00", "", false},
		{"evening window", "17:00", attendance.SlotEvening, true},
		{"evening buffer tail", "21:15", attendance.SlotEvening, true},
		{"late night", "22:00", "", false},
		{"early morning", "04:00", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, _, open := OpenSlot(settings, mustClock(t, tt.time))
			assert.Equal(t, tt.wantOpen, open)
			if tt.wantOpen {
				assert.Equal(t, tt.wantSlot, slot)
			}
		})
	}
}

func TestCanMarkFullPresent(t *testing.T) {
	t.Parallel()
	settings := testSettings(t)

	assert.True(t, CanMarkFullPresent(settings.MorningSlot, mustClock(t, "08:00")))
	assert.True(t, CanMarkFullPresent(settings.MorningSlot, mustClock(t, "08:30")))
	assert.False(t, CanMarkFullPresent(settings.MorningSlot, mustClock(t, "08:31")))
}
