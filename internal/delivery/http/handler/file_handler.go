package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pet-shop-api/internal/logger"
	"pet-shop-api/internal/middleware"
	"pet-shop-api/internal/usecase/file"
	"pet-shop-api/pkg/utils"
)

type FileHandler struct {
	service *file.Service
}

func NewFileHandler(service *file.Service) *FileHandler {
	return &FileHandler{service: service}
}

func (h *FileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/file/:uuid", h.Download)
}

// RegisterAuthenticatedRoutes expects AuthMiddleware on router.
func (h *FileHandler) RegisterAuthenticatedRoutes(router *gin.RouterGroup) {
	router.POST("/file/upload", h.Upload)
}

func (h *FileHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		utils.ValidationErrorResponse(c, http.StatusUnprocessableEntity, "Invalid input", map[string]string{
			"file": "The file field is required.",
		})
		return
	}

	body, err := header.Open()
	if err != nil {
		respondWithError(c, fmt.Errorf("failed to open upload: %w", err))
		return
	}
	defer body.Close()

	resp, err := h.service.Upload(c.Request.Context(), &file.Upload{
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Body:        body,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "File uploaded successfully", resp)
}

// Download streams the stored object under its original name.
func (h *FileHandler) Download(c *gin.Context) {
	id, ok := uuidParam(c, "uuid", file.MsgFileNotFound)
	if !ok {
		return
	}

	dl, err := h.service.Download(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	defer dl.Body.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dl.Name))
	c.Header("Content-Length", strconv.FormatInt(dl.Size, 10))
	c.Header("Content-Type", dl.ContentType)
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, dl.Body); err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Warn("File download interrupted",
			zap.String("file_uuid", id.String()),
			zap.Error(err),
		)
	}
}
