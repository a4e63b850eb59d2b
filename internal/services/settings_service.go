package services

import (
	"context"
	"errors"

	"github.com/AkumaMonarch/NekoEats/internal/model"
	"github.com/AkumaMonarch/NekoEats/internal/repository"
)

type SettingsService struct {
	Repo *repository.SettingsRepository
}

func NewSettingsService(r *repository.SettingsRepository) *SettingsService {
	return &SettingsService{Repo: r}
}

// Get returns the current settings snapshot.
func (s *SettingsService) Get(ctx context.Context) (*model.StoreSettings, error) {
	return s.Repo.Get(ctx)
}

// Update replaces the settings record wholesale. The incoming payload must be
// the full record; the id is pinned to the existing row.
func (s *SettingsService) Update(ctx context.Context, settings *model.StoreSettings) (*model.StoreSettings, error) {
	if settings.RestaurantName == "" {
		return nil, errors.New("restaurant name is required")
	}
	if settings.VATPercentage < 0 || settings.VATPercentage > 100 {
		return nil, errors.New("vat percentage must be between 0 and 100")
	}
	if !settings.IsDeliveryEnabled && !settings.IsPickupEnabled {
		return nil, errors.New("at least one service option must be enabled")
	}

	current, err := s.Repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	settings.ID = current.ID
	if err := s.Repo.Replace(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
