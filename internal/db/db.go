package db

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/umarhameed12/ghani-glass-backend-repo/internal/config"
	"github.com/umarhameed12/ghani-glass-backend-repo/internal/models"
)

func Connect(cfg config.Config) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	database, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(database); err != nil {
		return nil, err
	}

	return database, nil
}

// Migrate keeps the schema in sync with the model definitions.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.Department{},
		&models.Category{},
		&models.AssetStore{},
		&models.TransferLog{},
		&models.User{},
	)
}
