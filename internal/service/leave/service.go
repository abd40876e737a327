package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/leave"
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/staff"
	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type BalanceServiceImpl struct {
	db *database.DB
	leave.BalanceRepository
	staff.StaffRepository
}

func NewBalanceService(db *database.DB, balanceRepository leave.BalanceRepository, staffRepository staff.StaffRepository) leave.BalanceService {
	return &BalanceServiceImpl{
		db:                db,
		BalanceRepository: balanceRepository,
		StaffRepository:   staffRepository,
	}
}

// Get implements leave.BalanceService.
func (s *BalanceServiceImpl) Get(ctx context.Context, staffID string, year int) (leave.Balance, error) {
	if _, err := s.StaffRepository.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Balance{}, staff.ErrStaffNotFound
		}
		return leave.Balance{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	balance, err := s.BalanceRepository.Get(ctx, staffID, year)
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}
	if balance == nil {
		return leave.Balance{}, leave.ErrBalanceNotFound
	}

	return *balance, nil
}

// SetAllocation implements leave.BalanceService.
func (s *BalanceServiceImpl) SetAllocation(ctx context.Context, staffID string, req leave.SetAllocationRequest) (leave.Balance, error) {
	if err := req.Validate(); err != nil {
		return leave.Balance{}, err
	}

	if _, err := s.StaffRepository.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Balance{}, staff.ErrStaffNotFound
		}
		return leave.Balance{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	used := 0
	existing, err := s.BalanceRepository.Get(ctx, staffID, req.Year)
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}
	if existing != nil {
		used = existing.UsedPaidLeave
	}

	balance := leave.Balance{
		StaffID:            staffID,
		Year:               req.Year,
		TotalPaidLeave:     req.TotalPaidLeave,
		UsedPaidLeave:      used,
		RemainingPaidLeave: req.TotalPaidLeave - used,
		UpdatedAt:          time.Now().UTC(),
	}

	saved, err := s.BalanceRepository.Upsert(ctx, balance)
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to save leave balance: %w", err)
	}

	return saved, nil
}
