package leave

import "context"

// BalanceService exposes leave balance reads and the admin allocation.
type BalanceService interface {
	// Get returns the balance for a staff member and year, or
	// ErrBalanceNotFound.
	Get(ctx context.Context, staffID string, year int) (Balance, error)

	// SetAllocation sets the yearly paid leave total, preserving used days.
	SetAllocation(ctx context.Context, staffID string, req SetAllocationRequest) (Balance, error)
}
