package attendance

import (
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/attendance"
)

// ClassifySlot classifies a check-in time against one slot window.
//
// A time is capturable iff slot.Start <= t <= slot.End + buffer, both ends
// inclusive. Outside that window the slot is not open at all, which is a
// different condition from an absent outcome: a day with no capture attempt
// must not be conflated with a failed one, so the caller gets
// ErrOutsideAttendanceHours instead of an absent SlotOutcome.
//
// Within the window, a check-in at or before the half-day limit is fully
// present; after it the outcome is late, carrying the minutes past the slot
// start.
func ClassifySlot(t attendance.ClockTime, slot attendance.SlotConfig, bufferMinutes int) (attendance.SlotOutcome, error) {
	if t < slot.Start || t > slot.End+attendance.ClockTime(bufferMinutes) {
		return attendance.SlotOutcome{}, attendance.ErrOutsideAttendanceHours
	}

	checkIn := t
	if t <= slot.HalfDayLimit {
		return attendance.SlotOutcome{
			Status:      attendance.SlotPresent,
			CheckInTime: &checkIn,
		}, nil
	}

	lateMinutes := int(t - slot.Start)
	if lateMinutes < 0 {
		lateMinutes = 0
	}
	return attendance.SlotOutcome{
		Status:      attendance.SlotLate,
		CheckInTime: &checkIn,
		LateMinutes: &lateMinutes,
	}, nil
}

// OpenSlot returns the slot whose capture window contains t, morning
// checked first. ok is false when neither window is open.
func OpenSlot(settings attendance.Settings, t attendance.ClockTime) (attendance.Slot, attendance.SlotConfig, bool) {
	buffer := attendance.ClockTime(settings.AllowedBuffer)
	if t >= settings.MorningSlot.Start && t <= settings.MorningSlot.End+buffer {
		return attendance.SlotMorning, settings.MorningSlot, true
	}
	if t >= settings.EveningSlot.Start && t <= settings.EveningSlot.End+buffer {
		return attendance.SlotEvening, settings.EveningSlot, true
	}
	return "", attendance.SlotConfig{}, false
}

// CanMarkFullPresent reports whether a full present mark is still allowed
// for a slot at the given wall-clock time. Past the half-day limit the
// only valid choice is a half-day credit, and the caller must refuse the
// mark rather than downgrade it.
func CanMarkFullPresent(slot attendance.SlotConfig, now attendance.ClockTime) bool {
	return now <= slot.HalfDayLimit
}
