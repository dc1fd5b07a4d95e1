package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pet-shop-api/internal/domain/catalog"
	"pet-shop-api/internal/domain/content"
	"pet-shop-api/internal/domain/file"
	"pet-shop-api/internal/domain/order"
	"pet-shop-api/internal/domain/user"
	"pet-shop-api/internal/logger"
	"pet-shop-api/internal/middleware"
	appErrors "pet-shop-api/pkg/errors"
	"pet-shop-api/pkg/utils"
)

var notFoundMessages = []struct {
	err     error
	message string
}{
	{user.ErrUserNotFound, "User not found"},
	{catalog.ErrProductNotFound, "Product not found"},
	{catalog.ErrCategoryNotFound, "Category not found"},
	{catalog.ErrBrandNotFound, "Brand not found"},
	{order.ErrOrderNotFound, "Inexisting Order"},
	{order.ErrOrderStatusNotFound, "Order status not found"},
	{order.ErrPaymentNotFound, "Payment not found"},
	{content.ErrPromotionNotFound, "Promotion not found"},
	{content.ErrPostNotFound, "Post not found"},
	{file.ErrFileNotFound, "File not found"},
}

func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case appErrors.CodeValidation:
			utils.ValidationErrorResponse(c, http.StatusUnprocessableEntity, appErr.Message, appErr.Fields)
			return
		case appErrors.CodeNotFound:
			utils.ErrorResponse(c, http.StatusNotFound, appErr.Message)
			return
		case appErrors.CodeUnauthenticated, appErrors.CodeForbidden:
			utils.ErrorResponse(c, http.StatusUnauthorized, appErr.Message)
			return
		case appErrors.CodeConflict:
			utils.ErrorResponse(c, http.StatusConflict, appErr.Message)
			return
		}
	}

	for _, nf := range notFoundMessages {
		if errors.Is(err, nf.err) {
			utils.ErrorResponse(c, http.StatusNotFound, nf.message)
			return
		}
	}

	switch {
	case errors.Is(err, appErrors.ErrInvalidTokenFormat),
		errors.Is(err, appErrors.ErrTokenExpired),
		errors.Is(err, appErrors.ErrInvalidToken):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	case errors.Is(err, appErrors.ErrAccessDenied):
		utils.ErrorResponse(c, http.StatusUnauthorized, appErrors.ErrAccessDenied.Error())
		return
	case errors.Is(err, user.ErrUserAlreadyExists), errors.Is(err, catalog.ErrSlugTaken):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
		return
	}

	logger.WithRequestID(middleware.GetRequestID(c)).Error("Internal server error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}
