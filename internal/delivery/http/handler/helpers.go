package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pet-shop-api/internal/domain/user"
	"pet-shop-api/internal/middleware"
	appErrors "pet-shop-api/pkg/errors"
	"pet-shop-api/pkg/pagination"
	"pet-shop-api/pkg/utils"
)

// bindJSON decodes the body or answers 400.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// uuidParam parses a path uuid. Malformed ids answer 404 with notFound.
func uuidParam(c *gin.Context, name, notFound string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, notFound)
		return uuid.Nil, false
	}
	return id, true
}

// optionalUUIDQuery returns nil for an absent parameter and false for a malformed one.
func optionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.ValidationErrorResponse(c, http.StatusUnprocessableEntity, "Invalid input", map[string]string{
			name: "The " + name + " must be a valid UUID.",
		})
		return nil, false
	}
	return &id, true
}

func optionalBoolQuery(c *gin.Context, name string) *bool {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &b
}

// principal returns the authenticated user. Routes using it sit behind AuthMiddleware.
func principal(c *gin.Context) (*user.User, bool) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		respondWithError(c, appErrors.NewUnauthenticatedError(appErrors.ErrInvalidToken))
		return nil, false
	}
	return u, true
}

func respondPage[T any](c *gin.Context, message string, page *pagination.Page[T]) {
	utils.SuccessResponse(c, http.StatusOK, message, utils.NewPaginatedData(page.Items, page.Page, page.Limit, page.Total))
}
