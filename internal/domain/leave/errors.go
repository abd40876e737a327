package leave

import "errors"

var (
	ErrInsufficientBalance = errors.New("insufficient paid leave balance")
	ErrMonthlyCapExceeded  = errors.New("paid leave request exceeds the monthly cap")
	ErrBalanceNotFound     = errors.New("leave balance not found for this staff member and year")
)
