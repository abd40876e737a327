package leave

import "context"

// BalanceRepository stores one Balance per (staffID, year).
type BalanceRepository interface {
	// Get retrieves the balance. Returns nil when none exists.
	Get(ctx context.Context, staffID string, year int) (*Balance, error)

	// Upsert creates or replaces the balance row, recomputing Remaining
	// from Total - Used.
	Upsert(ctx context.Context, balance Balance) (Balance, error)

	// AddUsed adjusts UsedPaidLeave by delta (negative to restore days).
	AddUsed(ctx context.Context, staffID string, year int, delta int) error
}
