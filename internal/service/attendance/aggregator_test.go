package attendance

import (
	"testing"
	"time"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func TestWorkingDaysInMonth(t *testing.T) {
	t.Parallel()
	settings := testSettings(t)

	// September 2025 has 30 days and 4 Sundays; Monday-Saturday leaves 26.
	assert.Equal(t, 26, WorkingDaysInMonth(settings, 2025, time.September))

	// February 2024 (leap year): 29 days, 4 Sundays.
	assert.Equal(t, 25, WorkingDaysInMonth(settings, 2024, time.February))

	fiveDayWeek := settings
	fiveDayWeek.WorkingDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}
	assert.Equal(t, 22, WorkingDaysInMonth(fiveDayWeek, 2025, time.September))
}

func statusRows(counts map[attendance.Status]int) []attendance.DailyAttendance {
	var rows []attendance.DailyAttendance
	day := 1
	for status, n := range counts {
		for i := 0; i < n; i++ {
			rows = append(rows, attendance.DailyAttendance{
				StaffID: "staff-1",
				Date:    time.Date(2025, time.September, day, 0, 0, 0, 0, time.UTC),
				Status:  status,
			})
			day++
		}
	}
	return rows
}

func TestAggregateMonth(t *testing.T) {
	t.Parallel()
	settings := testSettings(t)

	rows := statusRows(map[attendance.Status]int{
		attendance.StatusPresent:     20,
		attendance.StatusHalfDay:     3,
		attendance.StatusPaidLeave:   1,
		attendance.StatusUnpaidLeave: 1,
		attendance.StatusAbsent:      1,
	})

	summary := AggregateMonth("staff-1", 2025, time.September, rows, settings)

	assert.Equal(t, 20, summary.PresentDays)
	assert.Equal(t, 3, summary.HalfDays)
	assert.Equal(t, 1, summary.PaidLeaveDays)
	assert.Equal(t, 1, summary.UnpaidLeaveDays)
	assert.Equal(t, 1, summary.AbsentDays)
	assert.Equal(t, 26, summary.TotalWorkingDays)

	// (20 + 3*0.5 + 1 + 1) / 26 * 100 = 90.3846...
	assert.InDelta(t, 90.38, summary.AttendancePercentage, 0.001)
}

func TestAggregateMonth_MissingRowsLowerPercentage(t *testing.T) {
	t.Parallel()
	settings := testSettings(t)

	// Only 10 of 26 working days have records; the other 16 still count
	// in the denominator.
	rows := statusRows(map[attendance.Status]int{
		attendance.StatusPresent: 10,
	})

	summary := AggregateMonth("staff-1", 2025, time.September, rows, settings)

	assert.Equal(t, 10, summary.PresentDays)
	assert.Equal(t, 26, summary.TotalWorkingDays)
	assert.InDelta(t, 38.46, summary.AttendancePercentage, 0.001)
}

func TestAggregateMonth_NoRows(t *testing.T) {
	t.Parallel()
	settings := testSettings(t)

	summary := AggregateMonth("staff-1", 2025, time.September, nil, settings)

	assert.Equal(t, 0, summary.PresentDays)
	assert.Equal(t, 26, summary.TotalWorkingDays)
	assert.Zero(t, summary.AttendancePercentage)
}

func TestAggregateMonth_OrderIndependent(t *testing.T) {
	t.Parallel()
	settings := testSettings(t)

	rows := statusRows(map[attendance.Status]int{
		attendance.StatusPresent: 5,
		attendance.StatusHalfDay: 2,
	})
	reversed := make([]attendance.DailyAttendance, len(rows))
	for i, row := range rows {
		reversed[len(rows)-1-i] = row
	}

	assert.Equal(t,
		AggregateMonth("staff-1", 2025, time.September, rows, settings),
		AggregateMonth("staff-1", 2025, time.September, reversed, settings),
	)
}
