package repository

import (
	"context"

	"github.com/mkamande/tillpoint-api/internal/domain/entity"
)

// SettingsRepository defines the interface for settings data access.
// Each domain holds a single row per store; Get returns (nil, nil) when no
// row exists yet so callers can substitute defaults.
type SettingsRepository interface {
	GetReceiptSettings(ctx context.Context) (*entity.ReceiptSettings, error)
	SaveReceiptSettings(ctx context.Context, settings *entity.ReceiptSettings) error

	GetLabelSettings(ctx context.Context) (*entity.LabelSettings, error)
	SaveLabelSettings(ctx context.Context, settings *entity.LabelSettings) error

	GetGeneralSettings(ctx context.Context) (*entity.GeneralSettings, error)
	SaveGeneralSettings(ctx context.Context, settings *entity.GeneralSettings) error
}
