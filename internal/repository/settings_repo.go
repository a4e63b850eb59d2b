package repository

import (
	"context"
	"errors"

	"github.com/AkumaMonarch/NekoEats/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingsRepository reads and replaces the single store_settings row.
type SettingsRepository struct {
	DB *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// Get returns the settings snapshot. There is exactly one row.
func (r *SettingsRepository) Get(ctx context.Context) (*model.StoreSettings, error) {
	query := `
		SELECT id, restaurant_name, COALESCE(business_phone, ''), COALESCE(logo_url, ''),
		       COALESCE(webhook_url, ''), is_open, schedule, closed_dates,
		       is_delivery_enabled, is_pickup_enabled, vat_enabled, COALESCE(vat_percentage, 0)
		FROM store_settings
		LIMIT 1
	`
	var s model.StoreSettings
	err := r.DB.QueryRow(ctx, query).Scan(&s.ID, &s.RestaurantName, &s.BusinessPhone,
		&s.LogoURL, &s.WebhookURL, &s.IsOpen, &s.Schedule, &s.ClosedDates,
		&s.IsDeliveryEnabled, &s.IsPickupEnabled, &s.VATEnabled, &s.VATPercentage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("store settings not initialized")
		}
		return nil, err
	}
	return &s, nil
}

// Replace overwrites the whole settings record and notifies listeners.
// Partial merges are deliberately not supported.
func (r *SettingsRepository) Replace(ctx context.Context, s *model.StoreSettings) error {
	query := `
		UPDATE store_settings
		SET restaurant_name=$1, business_phone=$2, logo_url=$3, webhook_url=$4, is_open=$5,
		    schedule=$6, closed_dates=$7, is_delivery_enabled=$8, is_pickup_enabled=$9,
		    vat_enabled=$10, vat_percentage=$11
		WHERE id=$12
	`
	tag, err := r.DB.Exec(ctx, query, s.RestaurantName, s.BusinessPhone, s.LogoURL,
		s.WebhookURL, s.IsOpen, s.Schedule, s.ClosedDates, s.IsDeliveryEnabled,
		s.IsPickupEnabled, s.VATEnabled, s.VATPercentage, s.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("store settings not initialized")
	}
	_, err = r.DB.Exec(ctx, `SELECT pg_notify('settings_changed', $1)`, s.ID)
	return err
}
