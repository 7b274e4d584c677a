package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mkamande/tillpoint-api/internal/domain/enum"
)

// ReceiptSettings configures receipt composition for the store. A single
// row per store; the composer merges it over hard-coded defaults so a
// missing or unreadable row never blocks rendering.
type ReceiptSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Store identity
	StoreName string `gorm:"size:120" json:"store_name"`
	Address   string `gorm:"size:255" json:"address"`
	Phone     string `gorm:"size:40" json:"phone"`
	Email     string `gorm:"size:120" json:"email"`

	// Toggles and free text
	ShowLogo    bool   `gorm:"default:false" json:"show_logo"`
	LogoURL     string `gorm:"size:255" json:"logo_url"`
	ShowQRCode  bool   `gorm:"default:true" json:"show_qr_code"`
	QRCodeURL   string `gorm:"size:255" json:"qr_code_url"` // overrides the derived payload verbatim
	LicenseText string `gorm:"size:500" json:"license_text"` // up to 4 literal lines
	ReturnPolicy string `gorm:"size:500" json:"return_policy"`
	FooterText  string `gorm:"size:255" json:"footer_text"`
	ThankYou    string `gorm:"size:255" json:"thank_you"`

	// Print behavior
	AutoPrint bool `gorm:"default:false" json:"auto_print"`
	CopyCount int  `gorm:"default:1" json:"copy_count"` // 1-5
}

// BeforeCreate generates a UUID before creating new settings
func (s *ReceiptSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReceiptSettings model
func (ReceiptSettings) TableName() string {
	return "receipt_settings"
}

// LabelSettings configures product-label printing. Custom width/height are
// stored as entered and parsed at resolve time; unparseable values fall
// back to the medium defaults.
type LabelSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	LabelSize    enum.LabelSize `gorm:"default:1" json:"label_size"`
	CustomWidth  string         `gorm:"size:10" json:"custom_width"`  // mm, 20-100
	CustomHeight string         `gorm:"size:10" json:"custom_height"` // mm, 10-100
	FontSize     int            `gorm:"default:8" json:"font_size"`   // px, 6-14

	ShowSKU     bool `gorm:"default:true" json:"show_sku"`
	ShowBarcode bool `gorm:"default:true" json:"show_barcode"`
	ShowPrice   bool `gorm:"default:true" json:"show_price"`

	BarcodeFormat enum.BarcodeFormat `gorm:"size:20;default:'CODE128'" json:"barcode_format"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *LabelSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LabelSettings model
func (LabelSettings) TableName() string {
	return "label_settings"
}

// GeneralSettings holds store-wide application preferences. The receipt
// composer reads the date format from here; everything else is consumed by
// the front end.
type GeneralSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	StoreName  string `gorm:"size:120" json:"store_name"`
	Currency   string `gorm:"size:10;default:'USD'" json:"currency"`
	DateFormat string `gorm:"size:20;default:'MM/DD/YYYY'" json:"date_format"`
	Timezone   string `gorm:"size:50;default:'America/New_York'" json:"timezone"`
	Theme      string `gorm:"size:20;default:'light'" json:"theme"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *GeneralSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the GeneralSettings model
func (GeneralSettings) TableName() string {
	return "general_settings"
}
