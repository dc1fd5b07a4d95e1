package models

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	ID              uint       `gorm:"primaryKey"`
	UUID            uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	FirstName       string     `gorm:"type:varchar(255);not null"`
	LastName        string     `gorm:"type:varchar(255);not null"`
	IsAdmin         bool       `gorm:"not null;default:false"`
	Email           string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Password        string     `gorm:"type:varchar(255);not null"`
	Avatar          *uuid.UUID `gorm:"type:uuid"`
	Address         string     `gorm:"type:varchar(255);not null"`
	PhoneNumber     string     `gorm:"type:varchar(255);not null"`
	IsMarketing     bool       `gorm:"not null;default:false"`
	EmailVerifiedAt *time.Time
	LastLoginAt     *time.Time
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type PasswordResetTokenModel struct {
	Email     string    `gorm:"type:varchar(255);primaryKey"`
	Token     string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (PasswordResetTokenModel) TableName() string {
	return "password_resets"
}
