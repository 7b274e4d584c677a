package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mkamande/tillpoint-api/internal/config"
	"github.com/mkamande/tillpoint-api/internal/domain/entity"
	"github.com/mkamande/tillpoint-api/internal/domain/enum"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for the settings entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.ReceiptSettings{},
		&entity.LabelSettings{},
		&entity.GeneralSettings{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultSettings creates the per-domain settings rows when missing so
// the settings screens have something to load on first run. The composers
// do not depend on these rows existing.
func SeedDefaultSettings(db *gorm.DB) error {
	var count int64

	if err := db.Model(&entity.ReceiptSettings{}).Count(&count).Error; err == nil && count == 0 {
		row := entity.ReceiptSettings{
			StoreName:  "My Store",
			ShowQRCode: true,
			ThankYou:   "Thank you for your business!",
			CopyCount:  1,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("Warning: failed to seed receipt settings: %v", err)
		}
	}

	if err := db.Model(&entity.LabelSettings{}).Count(&count).Error; err == nil && count == 0 {
		row := entity.LabelSettings{
			LabelSize:     enum.LabelSizeMedium,
			FontSize:      8,
			ShowSKU:       true,
			ShowBarcode:   true,
			ShowPrice:     true,
			BarcodeFormat: "CODE128",
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("Warning: failed to seed label settings: %v", err)
		}
	}

	if err := db.Model(&entity.GeneralSettings{}).Count(&count).Error; err == nil && count == 0 {
		row := entity.GeneralSettings{
			Currency:   "USD",
			DateFormat: "MM/DD/YYYY",
			Timezone:   "America/New_York",
			Theme:      "light",
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("Warning: failed to seed general settings: %v", err)
		}
	}

	return nil
}
