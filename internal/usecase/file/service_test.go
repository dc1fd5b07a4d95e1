package file

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainFile "pet-shop-api/internal/domain/file"
	appErrors "pet-shop-api/pkg/errors"
)

type MockFileRepository struct {
	mock.Mock
}

func (m *MockFileRepository) Create(ctx context.Context, f *domainFile.File) error {
	return m.Called(ctx, f).Error(0)
}

func (m *MockFileRepository) GetByUUID(ctx context.Context, fileUUID uuid.UUID) (*domainFile.File, error) {
	args := m.Called(ctx, fileUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainFile.File), args.Error(1)
}

func (m *MockFileRepository) Delete(ctx context.Context, fileUUID uuid.UUID) error {
	return m.Called(ctx, fileUUID).Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	return m.Called(ctx, key, body, size, contentType).Error(0)
}

func (m *MockStorage) Get(ctx context.Context, key string) (io.ReadCloser, *domainFile.ObjectInfo, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*domainFile.ObjectInfo), args.Error(2)
}

func (m *MockStorage) Remove(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

const maxUpload = 10 << 20

func TestUploadStoresObjectUnderPrefix(t *testing.T) {
	repo, storage := new(MockFileRepository), new(MockStorage)
	body := strings.NewReader("png bytes")

	storage.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "uploads/pet-shop/") && strings.HasSuffix(key, ".png")
	}), body, int64(9), "image/png").Return(nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(f *domainFile.File) bool {
		return f.Name == "Dog.PNG" && f.Type == "png" && f.Size == 9
	})).Return(nil)

	resp, err := NewService(repo, storage, maxUpload).Upload(context.Background(), &Upload{
		Name: "Dog.PNG", Size: 9, ContentType: "image/png", Body: body,
	})

	require.NoError(t, err)
	assert.Equal(t, ObjectKey(resp.UUID, "png"), resp.Path)
	storage.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestUploadTooLarge(t *testing.T) {
	repo, storage := new(MockFileRepository), new(MockStorage)

	_, err := NewService(repo, storage, maxUpload).Upload(context.Background(), &Upload{
		Name: "huge.bin", Size: maxUpload + 1, Body: strings.NewReader(""),
	})

	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.Fields, "file")
	assert.ErrorIs(t, err, domainFile.ErrFileTooLarge)
	storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadRemovesObjectWhenRowFails(t *testing.T) {
	repo, storage := new(MockFileRepository), new(MockStorage)

	storage.On("Put", mock.Anything, mock.Anything, mock.Anything, int64(3), "application/octet-stream").Return(nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))
	storage.On("Remove", mock.Anything, mock.Anything).Return(nil)

	_, err := NewService(repo, storage, maxUpload).Upload(context.Background(), &Upload{
		Name: "notes", Size: 3, Body: strings.NewReader("abc"),
	})

	require.Error(t, err)
	storage.AssertCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestDownload(t *testing.T) {
	repo, storage := new(MockFileRepository), new(MockStorage)
	f := &domainFile.File{UUID: uuid.New(), Name: "dog.png", Path: "uploads/pet-shop/x.png", Size: 4}

	repo.On("GetByUUID", mock.Anything, f.UUID).Return(f, nil)
	storage.On("Get", mock.Anything, f.Path).
		Return(io.NopCloser(bytes.NewReader([]byte("data"))), &domainFile.ObjectInfo{Size: 4, ContentType: "image/png"}, nil)

	d, err := NewService(repo, storage, maxUpload).Download(context.Background(), f.UUID)

	require.NoError(t, err)
	defer d.Body.Close()
	assert.Equal(t, "dog.png", d.Name)
	assert.Equal(t, "image/png", d.ContentType)
	data, err := io.ReadAll(d.Body)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}

func TestDownloadMissing(t *testing.T) {
	repo, storage := new(MockFileRepository), new(MockStorage)
	fileUUID := uuid.New()
	repo.On("GetByUUID", mock.Anything, fileUUID).Return(nil, domainFile.ErrFileNotFound)

	_, err := NewService(repo, storage, maxUpload).Download(context.Background(), fileUUID)

	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.CodeNotFound, appErr.Code)
}
