package walkin

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/walkin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWalkInRepo struct {
	records map[string]walkin.WalkIn
	nextID  int
}

func newFakeWalkInRepo() *fakeWalkInRepo {
	return &fakeWalkInRepo{records: make(map[string]walkin.WalkIn)}
}

func (f *fakeWalkInRepo) Create(_ context.Context, record walkin.WalkIn) (walkin.WalkIn, error) {
	f.nextID++
	record.ID = fmt.Sprintf("walkin-%d", f.nextID)
	f.records[record.ID] = record
	return record, nil
}

func (f *fakeWalkInRepo) GetByID(_ context.Context, id string) (walkin.WalkIn, error) {
	if record, ok := f.records[id]; ok {
		return record, nil
	}
	return walkin.WalkIn{}, pgx.ErrNoRows
}

func (f *fakeWalkInRepo) Update(_ context.Context, record walkin.WalkIn) error {
	f.records[record.ID] = record
	return nil
}

func (f *fakeWalkInRepo) Delete(_ context.Context, id string) error {
	delete(f.records, id)
	return nil
}

func (f *fakeWalkInRepo) List(_ context.Context, _ walkin.WalkInFilter) ([]walkin.WalkIn, int64, error) {
	var out []walkin.WalkIn
	for _, record := range f.records {
		out = append(out, record)
	}
	return out, int64(len(out)), nil
}

func (f *fakeWalkInRepo) ListFollowUpsDue(_ context.Context, date time.Time) ([]walkin.WalkIn, error) {
	var out []walkin.WalkIn
	for _, record := range f.records {
		if record.Status == walkin.StatusPending && record.FollowUpDate != nil && record.FollowUpDate.Equal(date) {
			out = append(out, record)
		}
	}
	return out, nil
}

func TestWalkInService_Create_StartsPending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewWalkInService(newFakeWalkInRepo())

	resp, err := svc.Create(ctx, walkin.CreateWalkInRequest{
		Name:          "Priya Sharma",
		Phone:         "08123456789",
		VisitDate:     "2025-09-10",
		InterestLevel: "high",
	})
	require.NoError(t, err)

	assert.Equal(t, walkin.StatusPending, walkin.WalkInStatus(resp.Status))
	assert.Equal(t, "2025-09-10", resp.VisitDate)
}

func TestWalkInService_UpdateStatus_Converts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeWalkInRepo()
	svc := NewWalkInService(repo)

	created, err := svc.Create(ctx, walkin.CreateWalkInRequest{
		Name:          "Priya Sharma",
		Phone:         "08123456789",
		InterestLevel: "medium",
	})
	require.NoError(t, err)

	resp, err := svc.UpdateStatus(ctx, created.ID, walkin.UpdateStatusRequest{Status: "converted"})
	require.NoError(t, err)
	assert.Equal(t, walkin.StatusConverted, walkin.WalkInStatus(resp.Status))
}

func TestWalkInService_UpdateStatus_SettledLeadStaysSettled(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewWalkInService(newFakeWalkInRepo())

	created, err := svc.Create(ctx, walkin.CreateWalkInRequest{
		Name:          "Priya Sharma",
		Phone:         "08123456789",
		InterestLevel: "low",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, created.ID, walkin.UpdateStatusRequest{Status: "not_interested"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, created.ID, walkin.UpdateStatusRequest{Status: "converted"})
	assert.ErrorIs(t, err, walkin.ErrAlreadyProcessed)
}

func TestWalkInService_UpdateStatus_RejectsPending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewWalkInService(newFakeWalkInRepo())

	created, err := svc.Create(ctx, walkin.CreateWalkInRequest{
		Name:          "Priya Sharma",
		Phone:         "08123456789",
		InterestLevel: "low",
	})
	require.NoError(t, err)

	// A lead cannot be reset to pending through the status endpoint.
	_, err = svc.UpdateStatus(ctx, created.ID, walkin.UpdateStatusRequest{Status: "pending"})
	assert.Error(t, err)
}

func TestWalkInService_UpdateStatus_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewWalkInService(newFakeWalkInRepo())

	_, err := svc.UpdateStatus(ctx, "missing", walkin.UpdateStatusRequest{Status: "converted"})
	assert.ErrorIs(t, err, walkin.ErrWalkInNotFound)
}

func TestWalkInService_FollowUpsDue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeWalkInRepo()
	svc := NewWalkInService(repo)

	due := "2025-09-20"
	_, err := svc.Create(ctx, walkin.CreateWalkInRequest{
		Name:          "Due Today",
		Phone:         "08123456789",
		InterestLevel: "high",
		FollowUpDate:  &due,
	})
	require.NoError(t, err)

	later := "2025-09-25"
	_, err = svc.Create(ctx, walkin.CreateWalkInRequest{
		Name:          "Due Later",
		Phone:         "08123456780",
		InterestLevel: "low",
		FollowUpDate:  &later,
	})
	require.NoError(t, err)

	responses, err := svc.FollowUpsDue(ctx, due)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "Due Today", responses[0].Name)
}
