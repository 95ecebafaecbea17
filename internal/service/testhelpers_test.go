package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/umarhameed12/ghani-glass-backend-repo/internal/models"
)

// newTestDB opens a fresh in-memory SQLite database per test. The pool is
// pinned to a single connection because each in-memory connection is its
// own database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("unwrap test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(
		&models.Department{},
		&models.Category{},
		&models.AssetStore{},
		&models.TransferLog{},
		&models.User{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return database
}

func seedDepartment(t *testing.T, db *gorm.DB, name, plant string) models.Department {
	t.Helper()
	department := models.Department{Name: name, Plant: plant}
	if err := db.Create(&department).Error; err != nil {
		t.Fatalf("seed department %s: %v", name, err)
	}
	return department
}

func seedCategory(t *testing.T, db *gorm.DB, name, plant string) models.Category {
	t.Helper()
	category := models.Category{Name: name, Plant: plant}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category %s: %v", name, err)
	}
	return category
}

func seedAsset(t *testing.T, db *gorm.DB, assetNo, description string, quantity int) models.AssetStore {
	t.Helper()
	asset := models.AssetStore{AssetNo: assetNo, AssetDescription: description, Quantity: quantity}
	if err := db.Create(&asset).Error; err != nil {
		t.Fatalf("seed asset %s: %v", assetNo, err)
	}
	return asset
}

func uintPtr(v uint) *uint {
	return &v
}

func intPtr(v int) *int {
	return &v
}
