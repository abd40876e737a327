package walkin

import (
	"context"
	"time"
)

type WalkInRepository interface {
	Create(ctx context.Context, walkIn WalkIn) (WalkIn, error)
	GetByID(ctx context.Context, id string) (WalkIn, error)
	Update(ctx context.Context, walkIn WalkIn) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter WalkInFilter) ([]WalkIn, int64, error)

	// ListFollowUpsDue retrieves pending walk-ins whose follow-up falls on date.
	ListFollowUpsDue(ctx context.Context, date time.Time) ([]WalkIn, error)
}
