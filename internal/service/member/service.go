package member

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/member"
	"github.com/jackc/pgx/v5"
)

type MemberServiceImpl struct {
	member.MemberRepository
}

func NewMemberService(memberRepository member.MemberRepository) member.MemberService {
	return &MemberServiceImpl{
		MemberRepository: memberRepository,
	}
}

// Create implements member.MemberService.
func (m *MemberServiceImpl) Create(ctx context.Context, req member.CreateMemberRequest) (member.MemberResponse, error) {
	if err := req.Validate(); err != nil {
		return member.MemberResponse{}, err
	}

	exists, err := m.MemberRepository.ExistsByEmail(ctx, req.Email, "")
	if err != nil {
		return member.MemberResponse{}, fmt.Errorf("failed to check member email: %w", err)
	}
	if exists {
		return member.MemberResponse{}, member.ErrEmailExists
	}

	joinDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.JoinDate != "" {
		joinDate, _ = time.Parse("2006-01-02", req.JoinDate)
	}
	endDate, err := time.Parse("2006-01-02", req.SubscriptionEndDate)
	if err != nil {
		return member.MemberResponse{}, fmt.Errorf("failed to parse subscription end date: %w", err)
	}

	created, err := m.MemberRepository.Create(ctx, member.Member{
		PhotoURL:            req.PhotoURL,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		Phone:               req.Phone,
		JoinDate:            joinDate,
		SubscriptionType:    member.SubscriptionType(req.SubscriptionType),
		SubscriptionEndDate: endDate,
		PaymentStatus:       member.PaymentStatus(req.PaymentStatus),
	})
	if err != nil {
		return member.MemberResponse{}, fmt.Errorf("failed to create member: %w", err)
	}

	return member.NewMemberResponse(created), nil
}

// Get implements member.MemberService.
func (m *MemberServiceImpl) Get(ctx context.Context, id string) (member.MemberResponse, error) {
	found, err := m.MemberRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return member.MemberResponse{}, member.ErrMemberNotFound
		}
		return member.MemberResponse{}, fmt.Errorf("failed to get member: %w", err)
	}
	return member.NewMemberResponse(found), nil
}

// Update implements member.MemberService.
func (m *MemberServiceImpl) Update(ctx context.Context, id string, req member.UpdateMemberRequest) (member.MemberResponse, error) {
	if err := req.Validate(); err != nil {
		return member.MemberResponse{}, err
	}

	existing, err := m.MemberRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return member.MemberResponse{}, member.ErrMemberNotFound
		}
		return member.MemberResponse{}, fmt.Errorf("failed to get member: %w", err)
	}

	if req.Email != nil && *req.Email != existing.Email {
		exists, err := m.MemberRepository.ExistsByEmail(ctx, *req.Email, id)
		if err != nil {
			return member.MemberResponse{}, fmt.Errorf("failed to check member email: %w", err)
		}
		if exists {
			return member.MemberResponse{}, member.ErrEmailExists
		}
		existing.Email = *req.Email
	}
	if req.FirstName != nil {
		existing.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		existing.LastName = *req.LastName
	}
	if req.Phone != nil {
		existing.Phone = *req.Phone
	}
	if req.PhotoURL != nil {
		existing.PhotoURL = req.PhotoURL
	}
	if req.SubscriptionType != nil {
		existing.SubscriptionType = member.SubscriptionType(*req.SubscriptionType)
	}
	if req.SubscriptionEndDate != nil {
		endDate, err := time.Parse("2006-01-02", *req.SubscriptionEndDate)
		if err != nil {
			return member.MemberResponse{}, fmt.Errorf("failed to parse subscription end date: %w", err)
		}
		existing.SubscriptionEndDate = endDate
	}
	if req.PaymentStatus != nil {
		existing.PaymentStatus = member.PaymentStatus(*req.PaymentStatus)
	}

	if err := m.MemberRepository.Update(ctx, existing); err != nil {
		return member.MemberResponse{}, fmt.Errorf("failed to update member: %w", err)
	}

	return member.NewMemberResponse(existing), nil
}

// Delete implements member.MemberService.
func (m *MemberServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := m.MemberRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return member.ErrMemberNotFound
		}
		return fmt.Errorf("failed to get member: %w", err)
	}

	if err := m.MemberRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}

// List implements member.MemberService.
func (m *MemberServiceImpl) List(ctx context.Context, filter member.MemberFilter) ([]member.MemberResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	members, total, err := m.MemberRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list members: %w", err)
	}

	responses := make([]member.MemberResponse, 0, len(members))
	for _, found := range members {
		responses = append(responses, member.NewMemberResponse(found))
	}
	return responses, total, nil
}
