package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainUser "pet-shop-api/internal/domain/user"
	"pet-shop-api/internal/usecase/user"
	"pet-shop-api/pkg/pagination"
	"pet-shop-api/pkg/utils"
)

type UserHandler struct {
	service *user.Service
}

func NewUserHandler(service *user.Service) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/admin/login", h.AdminLogin)
	router.POST("/user/login", h.UserLogin)
	router.POST("/user/create", h.Register)
	router.POST("/user/forgot-password", h.ForgotPassword)
	router.POST("/user/reset-password-token", h.ResetPassword)
}

// RegisterAuthenticatedRoutes expects AuthMiddleware on router.
func (h *UserHandler) RegisterAuthenticatedRoutes(router *gin.RouterGroup) {
	router.GET("/admin/logout", h.Logout)
	router.GET("/user/logout", h.Logout)
}

func (h *UserHandler) RegisterCustomerRoutes(router *gin.RouterGroup) {
	router.GET("/user", h.GetProfile)
	router.PUT("/user/edit", h.UpdateProfile)
	router.DELETE("/user", h.DeleteAccount)
}

func (h *UserHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.POST("/admin/create", h.CreateAdmin)
	router.GET("/admin/user-listing", h.ListUsers)
}

func (h *UserHandler) AdminLogin(c *gin.Context) {
	h.login(c, domainUser.RoleAdmin)
}

func (h *UserHandler) UserLogin(c *gin.Context) {
	h.login(c, domainUser.RoleCustomer)
}

func (h *UserHandler) login(c *gin.Context, role domainUser.Role) {
	var req user.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	req.Email = utils.SanitizeEmail(req.Email)

	resp, err := h.service.Login(c.Request.Context(), &req, role)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Logout is a no-op: tokens are stateless and expire on their own.
func (h *UserHandler) Logout(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

func (h *UserHandler) Register(c *gin.Context) {
	h.create(c, domainUser.RoleCustomer)
}

func (h *UserHandler) CreateAdmin(c *gin.Context) {
	h.create(c, domainUser.RoleAdmin)
}

func (h *UserHandler) create(c *gin.Context, role domainUser.Role) {
	var req user.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req, role)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "User created successfully", resp)
}

func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req user.ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.ForgotPassword(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password reset token issued", resp)
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req user.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), &req); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password has been successfully updated", nil)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	u, ok := principal(c)
	if !ok {
		return
	}

	resp, err := h.service.GetProfile(c.Request.Context(), u.UUID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile retrieved", resp)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	u, ok := principal(c)
	if !ok {
		return
	}

	var req user.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.UpdateProfile(c.Request.Context(), u.UUID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", resp)
}

func (h *UserHandler) DeleteAccount(c *gin.Context) {
	u, ok := principal(c)
	if !ok {
		return
	}

	if err := h.service.DeleteAccount(c.Request.Context(), u.UUID); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", nil)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	params := pagination.FromQuery(c)

	resp, err := h.service.ListCustomers(c.Request.Context(), &user.ListUsersRequest{
		FirstName:   c.Query("first_name"),
		LastName:    c.Query("last_name"),
		Email:       c.Query("email"),
		PhoneNumber: c.Query("phone_number"),
		Address:     c.Query("address"),
		IsMarketing: optionalBoolQuery(c, "is_marketing"),
		Page:        params.Page,
		Limit:       params.Limit,
		SortBy:      params.SortBy,
		Desc:        params.Desc,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Users retrieved",
		utils.NewPaginatedData(resp.Users, resp.Page, resp.Limit, resp.Total))
}
