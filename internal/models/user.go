package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Username  string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Email     string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	Mobile    string    `gorm:"type:varchar(30)"`
	Password  string    `gorm:"type:varchar(200);not null"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}
