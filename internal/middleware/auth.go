package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"pet-shop-api/internal/auth"
	"pet-shop-api/internal/domain/user"
	"pet-shop-api/internal/logger"
	"pet-shop-api/internal/metrics"
	appErrors "pet-shop-api/pkg/errors"
	"pet-shop-api/pkg/utils"
)

const CurrentUserKey = "user"

type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

type UserLookup interface {
	GetByUUID(ctx context.Context, userUUID uuid.UUID) (*user.User, error)
}

// AuthMiddleware resolves the bearer token to a user or aborts with 401.
func AuthMiddleware(verifier TokenVerifier, users UserLookup, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.BearerToken(c.GetHeader("Authorization"))

		userUUID, err := verifier.Verify(token)
		if err != nil {
			reject(c, m, err)
			return
		}

		u, err := users.GetByUUID(c.Request.Context(), userUUID)
		if errors.Is(err, user.ErrUserNotFound) {
			reject(c, m, appErrors.ErrInvalidToken)
			return
		}
		if err != nil {
			logger.WithRequestID(GetRequestID(c)).Error("Failed to resolve token user",
				zap.String("user_uuid", userUUID.String()),
				zap.Error(err),
			)
			utils.AbortWithError(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		c.Set(CurrentUserKey, u)
		c.Request = c.Request.WithContext(auth.WithUser(c.Request.Context(), u))

		c.Next()
	}
}

// CurrentUser returns the user set by AuthMiddleware.
func CurrentUser(c *gin.Context) (*user.User, bool) {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil, false
	}
	u, ok := value.(*user.User)
	return u, ok && u != nil
}

func reject(c *gin.Context, m *metrics.Metrics, err error) {
	reason := "invalid_token"
	switch {
	case errors.Is(err, appErrors.ErrInvalidTokenFormat):
		reason = "invalid_format"
	case errors.Is(err, appErrors.ErrTokenExpired):
		reason = "expired"
	}
	if m != nil {
		m.AuthFailures.WithLabelValues(reason).Inc()
	}

	logger.WithRequestID(GetRequestID(c)).Warn("Rejected request at auth gate",
		zap.String("reason", reason),
		zap.String("path", c.Request.URL.Path),
		zap.String("ip", c.ClientIP()),
	)

	utils.AbortWithError(c, http.StatusUnauthorized, err.Error())
}
