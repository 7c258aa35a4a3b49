package database

import (
	"fmt"
	"log"

	"github.com/tallersur/pedidos-api/internal/config"
	"github.com/tallersur/pedidos-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

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

	// Small-business LAN deployment: a handful of clients at most
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Catalog entities
		&entity.Product{},
		&entity.MeterPrice{},

		// Order entities
		&entity.Order{},
		&entity.OrderItem{},

		// Ledger entities
		&entity.Payment{},
		&entity.Receipt{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the per-meter price table with the workshop's usual
// materials when the configuration is empty.
func SeedDefaultData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.MeterPrice{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding default per-meter prices...")

	defaults := []entity.MeterPrice{
		{Material: "Melamina blanca", Price: 700000},
		{Material: "Melamina color", Price: 850000},
		{Material: "MDF", Price: 600000},
	}
	for i := range defaults {
		if err := db.Create(&defaults[i]).Error; err != nil {
			log.Printf("Warning: failed to seed price for %s: %v", defaults[i].Material, err)
		}
	}

	return nil
}
