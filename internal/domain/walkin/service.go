package walkin

import "context"

type WalkInService interface {
	Create(ctx context.Context, req CreateWalkInRequest) (WalkInResponse, error)
	Get(ctx context.Context, id string) (WalkInResponse, error)
	Update(ctx context.Context, id string, req UpdateWalkInRequest) (WalkInResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (WalkInResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter WalkInFilter) ([]WalkInResponse, int64, error)
	FollowUpsDue(ctx context.Context, date string) ([]WalkInResponse, error)
}
