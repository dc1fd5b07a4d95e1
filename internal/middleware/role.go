package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pet-shop-api/internal/domain/user"
	appErrors "pet-shop-api/pkg/errors"
	"pet-shop-api/pkg/utils"
)

// RoleMiddleware must run after AuthMiddleware. Wrong roles get 401.
func RoleMiddleware(allowedRoles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			utils.AbortWithError(c, http.StatusUnauthorized, appErrors.ErrAccessDenied.Error())
			return
		}

		for _, allowedRole := range allowedRoles {
			if u.Role == allowedRole {
				c.Next()
				return
			}
		}

		utils.AbortWithError(c, http.StatusUnauthorized, appErrors.ErrAccessDenied.Error())
	}
}

func AdminOnly() gin.HandlerFunc {
	return RoleMiddleware(user.RoleAdmin)
}

func CustomerOnly() gin.HandlerFunc {
	return RoleMiddleware(user.RoleCustomer)
}
