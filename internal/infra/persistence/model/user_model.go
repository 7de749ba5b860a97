package model

import (
	"time"
)

// UserModel mirrors the 'users' table. IDs are plain serial integers so they
// line up with the foreign keys of the ledger and order tables.
type UserModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	FullName     string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(20);not null;default:customer"`
	Status       string `gorm:"type:varchar(20);not null;default:active"`
	Phone        string `gorm:"type:varchar(20)"`
	ProfileImage string `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
