package staff

import "context"

type StaffService interface {
	Create(ctx context.Context, req CreateStaffRequest) (StaffResponse, error)
	Get(ctx context.Context, id string) (StaffResponse, error)
	Update(ctx context.Context, id string, req UpdateStaffRequest) (StaffResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter StaffFilter) ([]StaffResponse, int64, error)
}
