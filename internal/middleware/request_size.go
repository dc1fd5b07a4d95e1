package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pet-shop-api/pkg/utils"
)

const DefaultMaxRequestSize = 1 << 20

// MultipartOverhead is the room left for multipart boundaries and part headers
// on top of an upload's file size.
const MultipartOverhead = 64 << 10

// RouteLimit replaces the default cap for one route template, e.g. "/api/v1/file/upload".
type RouteLimit struct {
	Path    string
	MaxSize int64
}

// RequestSizeLimitMiddleware caps request bodies at maxSize bytes, or at the
// matching RouteLimit for routes that take larger bodies.
func RequestSizeLimitMiddleware(maxSize int64, overrides ...RouteLimit) gin.HandlerFunc {
	if maxSize <= 0 {
		maxSize = DefaultMaxRequestSize
	}

	limits := make(map[string]int64, len(overrides))
	for _, o := range overrides {
		if o.MaxSize > 0 {
			limits[o.Path] = o.MaxSize
		}
	}

	return func(c *gin.Context) {
		limit := maxSize
		if l, ok := limits[c.FullPath()]; ok {
			limit = l
		}

		if c.Request.ContentLength > limit {
			utils.AbortWithError(c, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
