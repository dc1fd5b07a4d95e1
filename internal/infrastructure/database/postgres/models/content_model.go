package models

import (
	"time"

	"github.com/google/uuid"

	"pet-shop-api/internal/domain/content"
)

type PromotionModel struct {
	ID        uint                      `gorm:"primaryKey"`
	UUID      uuid.UUID                 `gorm:"type:uuid;not null;uniqueIndex"`
	Title     string                    `gorm:"type:varchar(255);not null"`
	Content   string                    `gorm:"type:text;not null"`
	Metadata  content.PromotionMetadata `gorm:"type:jsonb;serializer:json"`
	CreatedAt time.Time                 `gorm:"not null"`
	UpdatedAt time.Time                 `gorm:"not null"`
}

func (PromotionModel) TableName() string {
	return "promotions"
}

type PostModel struct {
	ID        uint                 `gorm:"primaryKey"`
	UUID      uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex"`
	Title     string               `gorm:"type:varchar(255);not null"`
	Slug      string               `gorm:"type:varchar(255);not null;uniqueIndex"`
	Content   string               `gorm:"type:text;not null"`
	Metadata  content.PostMetadata `gorm:"type:jsonb;serializer:json"`
	CreatedAt time.Time            `gorm:"not null"`
	UpdatedAt time.Time            `gorm:"not null"`
}

func (PostModel) TableName() string {
	return "posts"
}

type FileModel struct {
	ID        uint      `gorm:"primaryKey"`
	UUID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Path      string    `gorm:"type:varchar(255);not null"`
	Size      int64     `gorm:"not null"`
	Type      string    `gorm:"type:varchar(64);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (FileModel) TableName() string {
	return "files"
}
