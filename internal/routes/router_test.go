package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-shop-api/internal/config"
	"pet-shop-api/internal/delivery/http/handler"
	domainFile "pet-shop-api/internal/domain/file"
	domainOrder "pet-shop-api/internal/domain/order"
	"pet-shop-api/internal/usecase/file"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type discardFiles struct{}

func (discardFiles) Create(context.Context, *domainFile.File) error { return nil }

func (discardFiles) GetByUUID(context.Context, uuid.UUID) (*domainFile.File, error) {
	return nil, domainFile.ErrFileNotFound
}

func (discardFiles) Delete(context.Context, uuid.UUID) error { return nil }

type discardObjects struct{ received int64 }

func (d *discardObjects) Put(_ context.Context, _ string, body io.Reader, _ int64, _ string) error {
	n, err := io.Copy(io.Discard, body)
	d.received = n
	return err
}

func (d *discardObjects) Get(context.Context, string) (io.ReadCloser, *domainFile.ObjectInfo, error) {
	return nil, nil, domainFile.ErrFileNotFound
}

func (d *discardObjects) Remove(context.Context, string) error { return nil }

func TestRequestSizeLimitLetsUploadsThrough(t *testing.T) {
	cfg := &config.Config{
		Server:  config.ServerConfig{MaxBodyBytes: 1 << 20},
		Storage: config.StorageConfig{MaxUploadBytes: 10 << 20},
	}
	objects := &discardObjects{}

	router := gin.New()
	router.Use(requestSizeLimit(cfg))
	v1 := router.Group("/api/v1")
	handler.NewFileHandler(file.NewService(discardFiles{}, objects, cfg.Storage.MaxUploadBytes)).RegisterAuthenticatedRoutes(v1)
	v1.POST("/product/create", func(c *gin.Context) { c.Status(http.StatusOK) })

	photo := bytes.Repeat([]byte{0xAB}, 2<<20)
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", "kennel.jpg")
	require.NoError(t, err)
	_, err = part.Write(photo)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, fileUploadRoute, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, int64(len(photo)), objects.received)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/product/create", strings.NewReader(strings.Repeat("a", 2<<20)))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

type stubDB struct{ err error }

func (s stubDB) Health(context.Context) error { return s.err }

type brokerPublisher struct{ up bool }

func (brokerPublisher) Publish(context.Context, domainOrder.Event) error { return nil }
func (brokerPublisher) Close() error                                     { return nil }
func (b brokerPublisher) Connected() bool                                { return b.up }

type plainPublisher struct{}

func (plainPublisher) Publish(context.Context, domainOrder.Event) error { return nil }
func (plainPublisher) Close() error                                     { return nil }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		db         stubDB
		publisher  domainOrder.EventPublisher
		wantCode   int
		wantStatus string
	}{
		{"healthy", stubDB{}, brokerPublisher{up: true}, http.StatusOK, "healthy"},
		{"no broker session", stubDB{}, plainPublisher{}, http.StatusOK, "healthy"},
		{"broker down", stubDB{}, brokerPublisher{up: false}, http.StatusOK, "degraded"},
		{"database down", stubDB{err: errors.New("connection refused")}, brokerPublisher{up: true}, http.StatusServiceUnavailable, "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/health", healthHandler(tt.db, tt.publisher))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body["status"])
		})
	}
}
