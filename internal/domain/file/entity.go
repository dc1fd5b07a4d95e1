package file

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
)

var (
	ErrFileNotFound = errors.New("file doesn't exist")
	ErrFileTooLarge = errors.New("file too large")
)

// KeyPrefix is the object key prefix for every upload.
const KeyPrefix = "uploads/pet-shop/"

type File struct {
	ID        uint
	UUID      uuid.UUID
	Name      string
	Path      string
	Size      int64
	Type      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, file *File) error
	GetByUUID(ctx context.Context, fileUUID uuid.UUID) (*File, error)
	Delete(ctx context.Context, fileUUID uuid.UUID) error
}

type ObjectInfo struct {
	Size        int64
	ContentType string
}

// Storage holds the file bytes; Repository holds the metadata.
type Storage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, *ObjectInfo, error)
	Remove(ctx context.Context, key string) error
}
