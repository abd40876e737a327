package member

import "context"

type MemberService interface {
	Create(ctx context.Context, req CreateMemberRequest) (MemberResponse, error)
	Get(ctx context.Context, id string) (MemberResponse, error)
	Update(ctx context.Context, id string, req UpdateMemberRequest) (MemberResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter MemberFilter) ([]MemberResponse, int64, error)
}
