package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainFile "pet-shop-api/internal/domain/file"
	"pet-shop-api/internal/logger"
	appErrors "pet-shop-api/pkg/errors"
)

const MsgFileNotFound = "File not found"

type Upload struct {
	Name        string
	Size        int64
	ContentType string
	Body        io.Reader
}

type FileResponse struct {
	UUID      uuid.UUID `json:"uuid"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Download is an open object plus the metadata needed to serve it. Callers close Body.
type Download struct {
	Name        string
	Size        int64
	ContentType string
	Body        io.ReadCloser
}

type Service struct {
	fileRepo domainFile.Repository
	storage  domainFile.Storage
	maxBytes int64
}

func NewService(fileRepo domainFile.Repository, storage domainFile.Storage, maxBytes int64) *Service {
	return &Service{fileRepo: fileRepo, storage: storage, maxBytes: maxBytes}
}

// Upload stores the bytes first and then the metadata row; a failed row write removes the object.
func (s *Service) Upload(ctx context.Context, up *Upload) (*FileResponse, error) {
	if up.Size <= 0 {
		return nil, appErrors.NewValidationError("Invalid input", map[string]string{
			"file": "The file field is required.",
		})
	}
	if s.maxBytes > 0 && up.Size > s.maxBytes {
		return nil, &appErrors.AppError{
			Code:    appErrors.CodeValidation,
			Message: "Invalid input",
			Fields:  map[string]string{"file": fmt.Sprintf("The file may not be greater than %d kilobytes.", s.maxBytes/1024)},
			Err:     domainFile.ErrFileTooLarge,
		}
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(up.Name)), ".")
	f := &domainFile.File{
		UUID: uuid.New(),
		Name: filepath.Base(up.Name),
		Size: up.Size,
		Type: ext,
	}
	f.Path = ObjectKey(f.UUID, ext)

	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := s.storage.Put(ctx, f.Path, up.Body, up.Size, contentType); err != nil {
		return nil, err
	}

	if err := s.fileRepo.Create(ctx, f); err != nil {
		if rmErr := s.storage.Remove(ctx, f.Path); rmErr != nil {
			logger.Warn("Failed to remove orphaned object", zap.String("key", f.Path), zap.Error(rmErr))
		}
		return nil, err
	}

	logger.Info("File uploaded",
		zap.String("file_uuid", f.UUID.String()),
		zap.String("key", f.Path),
		zap.Int64("size", f.Size),
		zap.String("event", "file_uploaded"),
	)

	return toFileResponse(f), nil
}

func (s *Service) Download(ctx context.Context, fileUUID uuid.UUID) (*Download, error) {
	f, err := s.fileRepo.GetByUUID(ctx, fileUUID)
	if err != nil {
		return nil, notFound(err)
	}

	body, info, err := s.storage.Get(ctx, f.Path)
	if err != nil {
		return nil, notFound(err)
	}

	d := &Download{Name: f.Name, Size: f.Size, ContentType: "application/octet-stream", Body: body}
	if info != nil {
		if info.Size > 0 {
			d.Size = info.Size
		}
		if info.ContentType != "" {
			d.ContentType = info.ContentType
		}
	}
	return d, nil
}

// ObjectKey is uploads/pet-shop/<uuid>[.<ext>].
func ObjectKey(fileUUID uuid.UUID, ext string) string {
	if ext == "" {
		return domainFile.KeyPrefix + fileUUID.String()
	}
	return domainFile.KeyPrefix + fileUUID.String() + "." + ext
}

func notFound(err error) error {
	if errors.Is(err, domainFile.ErrFileNotFound) {
		return appErrors.NewNotFoundError(MsgFileNotFound, err)
	}
	return err
}

func toFileResponse(f *domainFile.File) *FileResponse {
	return &FileResponse{
		UUID:      f.UUID,
		Name:      f.Name,
		Path:      f.Path,
		Size:      f.Size,
		Type:      f.Type,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
