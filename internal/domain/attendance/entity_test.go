package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    ClockTime
		wantErr bool
	}{
		{input: "00:00", want: 0},
		{input: "06:00", want: 360},
		{input: "08:30", want: 510},
		{input: "23:59", want: 1439},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "noon", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClockTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockTime_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "06:00", ClockTime(360).String())
	assert.Equal(t, "08:05", ClockTime(485).String())
	assert.Equal(t, "00:00", ClockTime(0).String())
}

func TestSlotConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := SlotConfig{Start: 360, End: 660, HalfDayLimit: 510}
	assert.NoError(t, valid.Validate())

	// Limit at or outside either bound breaks the ordering.
	for _, bad := range []SlotConfig{
		{Start: 360, End: 660, HalfDayLimit: 360},
		{Start: 360, End: 660, HalfDayLimit: 660},
		{Start: 360, End: 660, HalfDayLimit: 700},
		{Start: 660, End: 360, HalfDayLimit: 510},
	} {
		assert.ErrorIs(t, bad.Validate(), ErrInvalidSlotConfig)
	}
}

func TestSettings_MonthlyPaidLeaveCap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultMaxPaidLeavePerMonth, Settings{}.MonthlyPaidLeaveCap())

	four := 4
	assert.Equal(t, 4, Settings{MaxPaidLeavePerMonth: &four}.MonthlyPaidLeaveCap())
}

func TestSettings_IsWorkingDay(t *testing.T) {
	t.Parallel()

	settings := Settings{WorkingDays: []string{"monday", "wednesday"}}

	monday := time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC)
	assert.True(t, settings.IsWorkingDay(monday))
	assert.False(t, settings.IsWorkingDay(monday.AddDate(0, 0, 1)))
	assert.True(t, settings.IsWorkingDay(monday.AddDate(0, 0, 2)))
}

func TestUpdateSettingsRequest_ToSettings(t *testing.T) {
	t.Parallel()

	req := UpdateSettingsRequest{
		MorningSlot:   SlotConfigRequest{Start: "06:00", End: "11:00", HalfDayLimit: "08:30"},
		EveningSlot:   SlotConfigRequest{Start: "16:00", End: "21:00", HalfDayLimit: "18:30"},
		AllowedBuffer: 15,
		WorkingDays:   []string{"Monday", "monday", "TUESDAY"},
	}

	settings, err := req.ToSettings()
	require.NoError(t, err)

	assert.Equal(t, ClockTime(360), settings.MorningSlot.Start)
	assert.Equal(t, 15, settings.AllowedBuffer)
	// Working days are lowercased and deduplicated.
	assert.Equal(t, []string{"monday", "tuesday"}, settings.WorkingDays)
}

func TestUpdateSettingsRequest_ToSettings_RejectsBadOrdering(t *testing.T) {
	t.Parallel()

	req := UpdateSettingsRequest{
		MorningSlot: SlotConfigRequest{Start: "08:30", End: "11:00", HalfDayLimit: "06:00"},
		EveningSlot: SlotConfigRequest{Start: "16:00", End: "21:00", HalfDayLimit: "18:30"},
	}

	_, err := req.ToSettings()
	assert.ErrorIs(t, err, ErrInvalidSlotConfig)
}
