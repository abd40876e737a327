package staff

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/staff"
	"github.com/jackc/pgx/v5"
)

type StaffServiceImpl struct {
	staff.StaffRepository
}

func NewStaffService(staffRepository staff.StaffRepository) staff.StaffService {
	return &StaffServiceImpl{
		StaffRepository: staffRepository,
	}
}

// Create implements staff.StaffService.
func (s *StaffServiceImpl) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	exists, err := s.StaffRepository.ExistsByEmail(ctx, req.Email, "")
	if err != nil {
		return staff.StaffResponse{}, fmt.Errorf("failed to check staff email: %w", err)
	}
	if exists {
		return staff.StaffResponse{}, staff.ErrEmailExists
	}

	joinDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.JoinDate != "" {
		joinDate, _ = time.Parse("2006-01-02", req.JoinDate)
	}

	created, err := s.StaffRepository.Create(ctx, staff.StaffMember{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Designation: req.Designation,
		PhotoURL:    req.PhotoURL,
		IsActive:    true,
		JoinDate:    joinDate,
		Notes:       req.Notes,
	})
	if err != nil {
		return staff.StaffResponse{}, fmt.Errorf("failed to create staff member: %w", err)
	}

	return staff.NewStaffResponse(created), nil
}

// Get implements staff.StaffService.
func (s *StaffServiceImpl) Get(ctx context.Context, id string) (staff.StaffResponse, error) {
	found, err := s.StaffRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.StaffResponse{}, staff.ErrStaffNotFound
		}
		return staff.StaffResponse{}, fmt.Errorf("failed to get staff member: %w", err)
	}
	return staff.NewStaffResponse(found), nil
}

// Update implements staff.StaffService.
func (s *StaffServiceImpl) Update(ctx context.Context, id string, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	existing, err := s.StaffRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.StaffResponse{}, staff.ErrStaffNotFound
		}
		return staff.StaffResponse{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	if req.Email != nil && *req.Email != existing.Email {
		exists, err := s.StaffRepository.ExistsByEmail(ctx, *req.Email, id)
		if err != nil {
			return staff.StaffResponse{}, fmt.Errorf("failed to check staff email: %w", err)
		}
		if exists {
			return staff.StaffResponse{}, staff.ErrEmailExists
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
	if req.Address != nil {
		existing.Address = req.Address
	}
	if req.Designation != nil {
		existing.Designation = *req.Designation
	}
	if req.PhotoURL != nil {
		existing.PhotoURL = req.PhotoURL
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	if req.Notes != nil {
		existing.Notes = req.Notes
	}

	if err := s.StaffRepository.Update(ctx, existing); err != nil {
		return staff.StaffResponse{}, fmt.Errorf("failed to update staff member: %w", err)
	}

	return staff.NewStaffResponse(existing), nil
}

// Delete implements staff.StaffService.
func (s *StaffServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.StaffRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.ErrStaffNotFound
		}
		return fmt.Errorf("failed to get staff member: %w", err)
	}

	if err := s.StaffRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	return nil
}

// List implements staff.StaffService.
func (s *StaffServiceImpl) List(ctx context.Context, filter staff.StaffFilter) ([]staff.StaffResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	staffMembers, total, err := s.StaffRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list staff members: %w", err)
	}

	responses := make([]staff.StaffResponse, 0, len(staffMembers))
	for _, found := range staffMembers {
		responses = append(responses, staff.NewStaffResponse(found))
	}
	return responses, total, nil
}
