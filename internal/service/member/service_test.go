package member

import (
	"context"
	"fmt"
	"testing"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/member"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMemberRepo struct {
	records map[string]member.Member
	nextID  int
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{records: make(map[string]member.Member)}
}

func (f *fakeMemberRepo) Create(_ context.Context, record member.Member) (member.Member, error) {
	f.nextID++
	record.ID = fmt.Sprintf("member-%d", f.nextID)
	f.records[record.ID] = record
	return record, nil
}

func (f *fakeMemberRepo) GetByID(_ context.Context, id string) (member.Member, error) {
	if record, ok := f.records[id]; ok {
		return record, nil
	}
	return member.Member{}, pgx.ErrNoRows
}

func (f *fakeMemberRepo) Update(_ context.Context, record member.Member) error {
	f.records[record.ID] = record
	return nil
}

func (f *fakeMemberRepo) Delete(_ context.Context, id string) error {
	delete(f.records, id)
	return nil
}

func (f *fakeMemberRepo) List(_ context.Context, _ member.MemberFilter) ([]member.Member, int64, error) {
	var out []member.Member
	for _, record := range f.records {
		out = append(out, record)
	}
	return out, int64(len(out)), nil
}

func (f *fakeMemberRepo) ExistsByEmail(_ context.Context, email string, excludeID string) (bool, error) {
	for _, record := range f.records {
		if record.Email == email && record.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func validCreateRequest() member.CreateMemberRequest {
	return member.CreateMemberRequest{
		FirstName:           "Rani",
		LastName:            "Putri",
		Email:               "rani@example.com",
		Phone:               "08123456789",
		JoinDate:            "2025-09-01",
		SubscriptionType:    "monthly",
		SubscriptionEndDate: "2025-10-01",
		PaymentStatus:       "paid",
	}
}

func TestMemberService_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewMemberService(newFakeMemberRepo())

	resp, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "rani@example.com", resp.Email)
	assert.Equal(t, "2025-09-01", resp.JoinDate)
}

func TestMemberService_Create_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewMemberService(newFakeMemberRepo())

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Create(ctx, validCreateRequest())
	assert.ErrorIs(t, err, member.ErrEmailExists)
}

func TestMemberService_Get_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewMemberService(newFakeMemberRepo())

	_, err := svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}

func TestMemberService_Update_EmailTakenByAnother(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewMemberService(newFakeMemberRepo())

	first, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	second := validCreateRequest()
	second.Email = "other@example.com"
	created, err := svc.Create(ctx, second)
	require.NoError(t, err)

	taken := first.Email
	_, err = svc.Update(ctx, created.ID, member.UpdateMemberRequest{Email: &taken})
	assert.ErrorIs(t, err, member.ErrEmailExists)
}

func TestMemberService_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewMemberService(newFakeMemberRepo())

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), member.ErrMemberNotFound)
}
