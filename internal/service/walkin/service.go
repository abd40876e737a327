package walkin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/walkin"
	"github.com/jackc/pgx/v5"
)

type WalkInServiceImpl struct {
	walkin.WalkInRepository
}

func NewWalkInService(walkInRepository walkin.WalkInRepository) walkin.WalkInService {
	return &WalkInServiceImpl{
		WalkInRepository: walkInRepository,
	}
}

// Create implements walkin.WalkInService.
func (w *WalkInServiceImpl) Create(ctx context.Context, req walkin.CreateWalkInRequest) (walkin.WalkInResponse, error) {
	if err := req.Validate(); err != nil {
		return walkin.WalkInResponse{}, err
	}

	visitDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.VisitDate != "" {
		visitDate, _ = time.Parse("2006-01-02", req.VisitDate)
	}

	record := walkin.WalkIn{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		VisitDate:     visitDate,
		InterestLevel: walkin.InterestLevel(req.InterestLevel),
		FollowUpTime:  req.FollowUpTime,
		Status:        walkin.StatusPending,
		Notes:         req.Notes,
	}
	if req.FollowUpDate != nil {
		followUp, err := time.Parse("2006-01-02", *req.FollowUpDate)
		if err != nil {
			return walkin.WalkInResponse{}, fmt.Errorf("failed to parse follow-up date: %w", err)
		}
		record.FollowUpDate = &followUp
	}

	created, err := w.WalkInRepository.Create(ctx, record)
	if err != nil {
		return walkin.WalkInResponse{}, fmt.Errorf("failed to create walk-in: %w", err)
	}

	return walkin.NewWalkInResponse(created), nil
}

// Get implements walkin.WalkInService.
func (w *WalkInServiceImpl) Get(ctx context.Context, id string) (walkin.WalkInResponse, error) {
	found, err := w.WalkInRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return walkin.WalkInResponse{}, walkin.ErrWalkInNotFound
		}
		return walkin.WalkInResponse{}, fmt.Errorf("failed to get walk-in: %w", err)
	}
	return walkin.NewWalkInResponse(found), nil
}

// Update implements walkin.WalkInService.
func (w *WalkInServiceImpl) Update(ctx context.Context, id string, req walkin.UpdateWalkInRequest) (walkin.WalkInResponse, error) {
	if err := req.Validate(); err != nil {
		return walkin.WalkInResponse{}, err
	}

	existing, err := w.WalkInRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return walkin.WalkInResponse{}, walkin.ErrWalkInNotFound
		}
		return walkin.WalkInResponse{}, fmt.Errorf("failed to get walk-in: %w", err)
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.Phone != nil {
		existing.Phone = *req.Phone
	}
	if req.Address != nil {
		existing.Address = req.Address
	}
	if req.InterestLevel != nil {
		existing.InterestLevel = walkin.InterestLevel(*req.InterestLevel)
	}
	if req.FollowUpDate != nil {
		followUp, err := time.Parse("2006-01-02", *req.FollowUpDate)
		if err != nil {
			return walkin.WalkInResponse{}, fmt.Errorf("failed to parse follow-up date: %w", err)
		}
		existing.FollowUpDate = &followUp
	}
	if req.FollowUpTime != nil {
		existing.FollowUpTime = req.FollowUpTime
	}
	if req.Notes != nil {
		existing.Notes = req.Notes
	}

	if err := w.WalkInRepository.Update(ctx, existing); err != nil {
		return walkin.WalkInResponse{}, fmt.Errorf("failed to update walk-in: %w", err)
	}

	return walkin.NewWalkInResponse(existing), nil
}

// UpdateStatus implements walkin.WalkInService.
func (w *WalkInServiceImpl) UpdateStatus(ctx context.Context, id string, req walkin.UpdateStatusRequest) (walkin.WalkInResponse, error) {
	if err := req.Validate(); err != nil {
		return walkin.WalkInResponse{}, err
	}

	existing, err := w.WalkInRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return walkin.WalkInResponse{}, walkin.ErrWalkInNotFound
		}
		return walkin.WalkInResponse{}, fmt.Errorf("failed to get walk-in: %w", err)
	}

	// The lead lifecycle moves forward only; a settled lead stays settled.
	if existing.Status != walkin.StatusPending {
		return walkin.WalkInResponse{}, walkin.ErrAlreadyProcessed
	}

	existing.Status = walkin.WalkInStatus(req.Status)
	if err := w.WalkInRepository.Update(ctx, existing); err != nil {
		return walkin.WalkInResponse{}, fmt.Errorf("failed to update walk-in status: %w", err)
	}

	return walkin.NewWalkInResponse(existing), nil
}

// Delete implements walkin.WalkInService.
func (w *WalkInServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := w.WalkInRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return walkin.ErrWalkInNotFound
		}
		return fmt.Errorf("failed to get walk-in: %w", err)
	}

	if err := w.WalkInRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete walk-in: %w", err)
	}
	return nil
}

// List implements walkin.WalkInService.
func (w *WalkInServiceImpl) List(ctx context.Context, filter walkin.WalkInFilter) ([]walkin.WalkInResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	walkIns, total, err := w.WalkInRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list walk-ins: %w", err)
	}

	responses := make([]walkin.WalkInResponse, 0, len(walkIns))
	for _, found := range walkIns {
		responses = append(responses, walkin.NewWalkInResponse(found))
	}
	return responses, total, nil
}

// FollowUpsDue implements walkin.WalkInService.
func (w *WalkInServiceImpl) FollowUpsDue(ctx context.Context, dateStr string) ([]walkin.WalkInResponse, error) {
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		date = parsed
	}

	walkIns, err := w.WalkInRepository.ListFollowUpsDue(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list due follow-ups: %w", err)
	}

	responses := make([]walkin.WalkInResponse, 0, len(walkIns))
	for _, found := range walkIns {
		responses = append(responses, walkin.NewWalkInResponse(found))
	}
	return responses, nil
}
