package models

import "time"

// TransferLog is an append-only audit row recording an asset moving
// between plants. No update or delete path exists.
type TransferLog struct {
	ID                uint        `gorm:"primaryKey"`
	AssetID           uint        `gorm:"not null;index"`
	Asset             *AssetStore `gorm:"foreignKey:AssetID;references:ID"`
	TransferFromPlant string      `gorm:"type:varchar(100);not null"`
	TransferToPlant   string      `gorm:"type:varchar(100);not null"`
	CreatedAt         time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP"`
}
