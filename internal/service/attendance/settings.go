package attendance

import (
	"context"
	"fmt"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/attendance"
)

type SettingsServiceImpl struct {
	attendance.SettingsRepository
}

func NewSettingsService(settingsRepository attendance.SettingsRepository) attendance.SettingsService {
	return &SettingsServiceImpl{
		SettingsRepository: settingsRepository,
	}
}

// Get implements attendance.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (attendance.Settings, error) {
	settings, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return attendance.Settings{}, fmt.Errorf("failed to load attendance settings: %w", err)
	}
	if settings == nil {
		return attendance.Settings{}, attendance.ErrSettingsNotConfigured
	}
	return *settings, nil
}

// Update implements attendance.SettingsService.
func (s *SettingsServiceImpl) Update(ctx context.Context, req attendance.UpdateSettingsRequest) (attendance.Settings, error) {
	if err := req.Validate(); err != nil {
		return attendance.Settings{}, err
	}

	settings, err := req.ToSettings()
	if err != nil {
		return attendance.Settings{}, err
	}

	saved, err := s.SettingsRepository.Save(ctx, settings)
	if err != nil {
		return attendance.Settings{}, fmt.Errorf("failed to save attendance settings: %w", err)
	}
	return saved, nil
}
