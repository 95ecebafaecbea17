package models

import "time"

type Department struct {
	ID        uint         `gorm:"primaryKey"`
	Name      string       `gorm:"type:varchar(100);not null;index"`
	Plant     string       `gorm:"type:varchar(100);not null;index"`
	Assets    []AssetStore `gorm:"foreignKey:DepartmentID;references:ID"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}
