package staff

import "context"

type StaffRepository interface {
	Create(ctx context.Context, staff StaffMember) (StaffMember, error)
	GetByID(ctx context.Context, id string) (StaffMember, error)
	Update(ctx context.Context, staff StaffMember) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter StaffFilter) ([]StaffMember, int64, error)
	ListActive(ctx context.Context) ([]StaffMember, error)
	ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error)
}
