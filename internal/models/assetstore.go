package models

import "time"

// AssetStore is one inventory record. AssetNo is the business key: the
// create endpoint and the bulk import both upsert on it.
type AssetStore struct {
	ID               uint          `gorm:"primaryKey"`
	AssetNo          string        `gorm:"type:varchar(50);not null;uniqueIndex"`
	AssetTag         *string       `gorm:"type:varchar(50)"`
	AssetDescription string        `gorm:"type:varchar(500);not null"`
	Quantity         int           `gorm:"not null;default:1"`
	DepartmentID     *uint         `gorm:"index"`
	Department       *Department   `gorm:"foreignKey:DepartmentID;references:ID"`
	CategoryID       *uint         `gorm:"index"`
	Category         *Category     `gorm:"foreignKey:CategoryID;references:ID"`
	Transfers        []TransferLog `gorm:"foreignKey:AssetID;references:ID"`
	CreatedAt        time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt        time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP"`
}
