package service

import (
	"context"
	"log"

	"github.com/mkamande/tillpoint-api/internal/domain/entity"
	"github.com/mkamande/tillpoint-api/internal/domain/enum"
	"github.com/mkamande/tillpoint-api/internal/domain/repository"
	"github.com/mkamande/tillpoint-api/pkg/apperror"
)

// SettingsService loads and saves per-domain settings. Reads never fail:
// a missing row or a broken store degrades to the documented defaults so
// checkout and rendering are never blocked by the settings store.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// DefaultReceiptSettings is the hard-coded fallback for every receipt field.
func DefaultReceiptSettings() *entity.ReceiptSettings {
	return &entity.ReceiptSettings{
		StoreName:  "My Store",
		ShowLogo:   false,
		ShowQRCode: true,
		ThankYou:   "Thank you for your business!",
		AutoPrint:  false,
		CopyCount:  1,
	}
}

// DefaultLabelSettings is the hard-coded fallback for every label field.
func DefaultLabelSettings() *entity.LabelSettings {
	return &entity.LabelSettings{
		LabelSize:     enum.LabelSizeMedium,
		FontSize:      8,
		ShowSKU:       true,
		ShowBarcode:   true,
		ShowPrice:     true,
		BarcodeFormat: enum.BarcodeCode128,
	}
}

// DefaultGeneralSettings is the hard-coded fallback for the app settings.
func DefaultGeneralSettings() *entity.GeneralSettings {
	return &entity.GeneralSettings{
		Currency:   "USD",
		DateFormat: "MM/DD/YYYY",
		Timezone:   "America/New_York",
		Theme:      "light",
	}
}

// GetReceiptSettings returns the stored receipt settings merged over the
// defaults. Load failures are logged and absorbed.
func (s *SettingsService) GetReceiptSettings(ctx context.Context) *entity.ReceiptSettings {
	defaults := DefaultReceiptSettings()
	stored, err := s.settingsRepo.GetReceiptSettings(ctx)
	if err != nil {
		log.Printf("settings: receipt load failed, using defaults: %v", err)
		return defaults
	}
	if stored == nil {
		return defaults
	}
	merged := *stored
	if merged.StoreName == "" {
		merged.StoreName = defaults.StoreName
	}
	if merged.ThankYou == "" {
		merged.ThankYou = defaults.ThankYou
	}
	if merged.CopyCount < 1 || merged.CopyCount > 5 {
		merged.CopyCount = defaults.CopyCount
	}
	return &merged
}

// SaveReceiptSettings validates ranges and persists the receipt settings.
func (s *SettingsService) SaveReceiptSettings(ctx context.Context, input *entity.ReceiptSettings) (*entity.ReceiptSettings, error) {
	if input.CopyCount < 1 || input.CopyCount > 5 {
		return nil, apperror.NewBadRequestError("Copy count must be between 1 and 5")
	}
	if countLines(input.LicenseText) > 4 {
		return nil, apperror.NewBadRequestError("License text is limited to 4 lines")
	}

	existing, err := s.settingsRepo.GetReceiptSettings(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		input.ID = existing.ID
		input.CreatedAt = existing.CreatedAt
	}
	if err := s.settingsRepo.SaveReceiptSettings(ctx, input); err != nil {
		return nil, err
	}
	return input, nil
}

// GetLabelSettings returns the stored label settings merged over defaults.
func (s *SettingsService) GetLabelSettings(ctx context.Context) *entity.LabelSettings {
	defaults := DefaultLabelSettings()
	stored, err := s.settingsRepo.GetLabelSettings(ctx)
	if err != nil {
		log.Printf("settings: label load failed, using defaults: %v", err)
		return defaults
	}
	if stored == nil {
		return defaults
	}
	merged := *stored
	if merged.FontSize < 6 || merged.FontSize > 14 {
		merged.FontSize = defaults.FontSize
	}
	if !merged.BarcodeFormat.Valid() {
		merged.BarcodeFormat = defaults.BarcodeFormat
	}
	return &merged
}

// SaveLabelSettings validates ranges and persists the label settings.
func (s *SettingsService) SaveLabelSettings(ctx context.Context, input *entity.LabelSettings) (*entity.LabelSettings, error) {
	if input.FontSize < 6 || input.FontSize > 14 {
		return nil, apperror.NewBadRequestError("Font size must be between 6 and 14 px")
	}
	if !input.BarcodeFormat.Valid() {
		return nil, apperror.NewBadRequestError("Unknown barcode format")
	}

	existing, err := s.settingsRepo.GetLabelSettings(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		input.ID = existing.ID
		input.CreatedAt = existing.CreatedAt
	}
	if err := s.settingsRepo.SaveLabelSettings(ctx, input); err != nil {
		return nil, err
	}
	return input, nil
}

// GetGeneralSettings returns the stored app settings merged over defaults.
func (s *SettingsService) GetGeneralSettings(ctx context.Context) *entity.GeneralSettings {
	defaults := DefaultGeneralSettings()
	stored, err := s.settingsRepo.GetGeneralSettings(ctx)
	if err != nil {
		log.Printf("settings: general load failed, using defaults: %v", err)
		return defaults
	}
	if stored == nil {
		return defaults
	}
	merged := *stored
	if merged.Currency == "" {
		merged.Currency = defaults.Currency
	}
	if merged.DateFormat == "" {
		merged.DateFormat = defaults.DateFormat
	}
	if merged.Timezone == "" {
		merged.Timezone = defaults.Timezone
	}
	if merged.Theme == "" {
		merged.Theme = defaults.Theme
	}
	return &merged
}

// SaveGeneralSettings persists the general app settings.
func (s *SettingsService) SaveGeneralSettings(ctx context.Context, input *entity.GeneralSettings) (*entity.GeneralSettings, error) {
	existing, err := s.settingsRepo.GetGeneralSettings(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		input.ID = existing.ID
		input.CreatedAt = existing.CreatedAt
	}
	if err := s.settingsRepo.SaveGeneralSettings(ctx, input); err != nil {
		return nil, err
	}
	return input, nil
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := 1
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
		}
	}
	return n
}
