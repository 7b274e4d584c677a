package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mkamande/tillpoint-api/internal/domain/entity"
	"github.com/mkamande/tillpoint-api/internal/domain/repository"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// GetReceiptSettings retrieves the receipt settings row, nil when absent
func (r *settingsRepository) GetReceiptSettings(ctx context.Context) (*entity.ReceiptSettings, error) {
	var settings entity.ReceiptSettings
	err := r.db.WithContext(ctx).Order("created_at").First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// SaveReceiptSettings creates or updates the receipt settings row
func (r *settingsRepository) SaveReceiptSettings(ctx context.Context, settings *entity.ReceiptSettings) error {
	if settings.ID == uuid.Nil {
		return r.db.WithContext(ctx).Create(settings).Error
	}
	return r.db.WithContext(ctx).Save(settings).Error
}

// GetLabelSettings retrieves the label settings row, nil when absent
func (r *settingsRepository) GetLabelSettings(ctx context.Context) (*entity.LabelSettings, error) {
	var settings entity.LabelSettings
	err := r.db.WithContext(ctx).Order("created_at").First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// SaveLabelSettings creates or updates the label settings row
func (r *settingsRepository) SaveLabelSettings(ctx context.Context, settings *entity.LabelSettings) error {
	if settings.ID == uuid.Nil {
		return r.db.WithContext(ctx).Create(settings).Error
	}
	return r.db.WithContext(ctx).Save(settings).Error
}

// GetGeneralSettings retrieves the general settings row, nil when absent
func (r *settingsRepository) GetGeneralSettings(ctx context.Context) (*entity.GeneralSettings, error) {
	var settings entity.GeneralSettings
	err := r.db.WithContext(ctx).Order("created_at").First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// SaveGeneralSettings creates or updates the general settings row
func (r *settingsRepository) SaveGeneralSettings(ctx context.Context, settings *entity.GeneralSettings) error {
	if settings.ID == uuid.Nil {
		return r.db.WithContext(ctx).Create(settings).Error
	}
	return r.db.WithContext(ctx).Save(settings).Error
}
