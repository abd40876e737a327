package member

import "context"

type MemberRepository interface {
	Create(ctx context.Context, member Member) (Member, error)
	GetByID(ctx context.Context, id string) (Member, error)
	Update(ctx context.Context, member Member) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter MemberFilter) ([]Member, int64, error)
	ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error)
}
