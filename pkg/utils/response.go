package utils

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
}

type PaginatedData struct {
	Items interface{} `json:"items"`
	Meta  PageMeta    `json:"meta"`
}

func SuccessResponse(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Message: message,
	})
}

func ValidationErrorResponse(c *gin.Context, status int, message string, fields map[string]string) {
	c.JSON(status, Response{
		Success: false,
		Message: message,
		Errors:  fields,
	})
}

// AbortWithError writes the error envelope and stops the middleware chain.
func AbortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Response{
		Success: false,
		Message: message,
	})
}

func NewPaginatedData(items interface{}, page, perPage int, total int64) PaginatedData {
	totalPages := 0
	if perPage > 0 {
		totalPages = int((total + int64(perPage) - 1) / int64(perPage))
	}

	return PaginatedData{
		Items: items,
		Meta: PageMeta{
			CurrentPage: page,
			PerPage:     perPage,
			Total:       total,
			TotalPages:  totalPages,
		},
	}
}
