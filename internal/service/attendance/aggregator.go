package attendance

import (
	"math"
	"time"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/attendance"
)

// WorkingDaysInMonth counts the calendar days of a month whose weekday is
// configured as a working day.
func WorkingDaysInMonth(settings attendance.Settings, year int, month time.Month) int {
	count := 0
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		if settings.IsWorkingDay(d) {
			count++
		}
	}
	return count
}

// AggregateMonth folds one staff member's daily records for a month into
// a summary. It is a pure function: the same rows always produce the same
// summary, and row order is irrelevant since each row is keyed by date.
//
// The denominator is the month's working-day count, not the row count: a
// working day with no record contributes nothing to the numerator but
// still counts in totalWorkingDays, so missing records lower the
// percentage. That mirrors how the attendance reports have always been
// read and is kept on purpose.
func AggregateMonth(staffID string, year int, month time.Month, rows []attendance.DailyAttendance, settings attendance.Settings) attendance.MonthlyAttendance {
	summary := attendance.MonthlyAttendance{
		StaffID:          staffID,
		Month:            int(month),
		Year:             year,
		TotalWorkingDays: WorkingDaysInMonth(settings, year, month),
	}

	for _, row := range rows {
		switch row.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusHalfDay:
			summary.HalfDays++
		case attendance.StatusAbsent:
			summary.AbsentDays++
		case attendance.StatusPaidLeave:
			summary.PaidLeaveDays++
		case attendance.StatusUnpaidLeave:
			summary.UnpaidLeaveDays++
		}
	}

	if summary.TotalWorkingDays > 0 {
		attended := float64(summary.PresentDays) +
			float64(summary.HalfDays)*0.5 +
			float64(summary.PaidLeaveDays) +
			float64(summary.UnpaidLeaveDays)
		pct := attended / float64(summary.TotalWorkingDays) * 100
		summary.AttendancePercentage = math.Round(pct*100) / 100
	}

	return summary
}
