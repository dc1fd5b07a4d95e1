package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pet-shop-api/internal/domain/file"
	"pet-shop-api/internal/infrastructure/database/postgres/models"
)

type FileRepository struct {
	db *DB
}

func NewFileRepository(db *DB) file.Repository {
	return &FileRepository{db: db}
}

func (r *FileRepository) Create(ctx context.Context, f *file.File) error {
	dbModel := &models.FileModel{UUID: f.UUID, Name: f.Name, Path: f.Path, Size: f.Size, Type: f.Type}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	f.ID = dbModel.ID
	f.CreatedAt = dbModel.CreatedAt
	f.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *FileRepository) GetByUUID(ctx context.Context, fileUUID uuid.UUID) (*file.File, error) {
	var m models.FileModel
	err := r.db.DB.WithContext(ctx).Where("uuid = ?", fileUUID).First(&m).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, file.ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get file: %w", err)
	}

	return &file.File{
		ID:        m.ID,
		UUID:      m.UUID,
		Name:      m.Name,
		Path:      m.Path,
		Size:      m.Size,
		Type:      m.Type,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

func (r *FileRepository) Delete(ctx context.Context, fileUUID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.FileModel{}, "uuid = ?", fileUUID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete file: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return file.ErrFileNotFound
	}

	return nil
}
