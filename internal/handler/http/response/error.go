package response

import (
	"errors"
	"net/http"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/attendance"
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/auth"
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/leave"
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/member"
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/staff"
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/user"
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/walkin"
	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrOAuthNotConfigured):
		BadRequest(w, "Google sign-in is not configured", nil)
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		BadRequest(w, "OAuth state mismatch", nil)
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Member domain errors
	case errors.Is(err, member.ErrMemberNotFound):
		NotFound(w, "Member not found")
	case errors.Is(err, member.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Walk-in domain errors
	case errors.Is(err, walkin.ErrWalkInNotFound):
		NotFound(w, "Walk-in not found")
	case errors.Is(err, walkin.ErrAlreadyProcessed):
		Conflict(w, "Walk-in has already been processed")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrOutsideAttendanceHours):
		BadRequest(w, "Check-in is outside attendance hours", nil)
	case errors.Is(err, attendance.ErrFutureDate):
		BadRequest(w, "Attendance cannot be recorded for a future date", nil)
	case errors.Is(err, attendance.ErrCrossYearLeave):
		BadRequest(w, "Leave range cannot cross a calendar year", nil)
	case errors.Is(err, attendance.ErrHalfDayLimitPassed):
		BadRequest(w, "Half-day limit has passed; staff cannot be marked fully present", nil)
	case errors.Is(err, attendance.ErrSettingsNotConfigured):
		BadRequest(w, "Attendance settings have not been configured", nil)
	case errors.Is(err, attendance.ErrInvalidSlotConfig):
		BadRequest(w, "Slot times must satisfy start < half-day limit < end", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient paid leave balance", nil)
	case errors.Is(err, leave.ErrMonthlyCapExceeded):
		BadRequest(w, "Monthly paid leave cap exceeded", nil)
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
