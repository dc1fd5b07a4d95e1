package user

import (
	"time"

	"github.com/google/uuid"

	domainUser "pet-shop-api/internal/domain/user"
)

type CreateUserRequest struct {
	FirstName            string     `json:"first_name" validate:"required,max=255"`
	LastName             string     `json:"last_name" validate:"required,max=255"`
	Email                string     `json:"email" validate:"required,email,max=255"`
	Password             string     `json:"password" validate:"required,min=8,max=72"`
	PasswordConfirmation string     `json:"password_confirmation" validate:"required,eqfield=Password"`
	Avatar               *uuid.UUID `json:"avatar"`
	Address              string     `json:"address" validate:"required,max=255"`
	PhoneNumber          string     `json:"phone_number" validate:"required,phone"`
	IsMarketing          bool       `json:"is_marketing"`
}

// UpdateUserRequest replaces the profile. An empty password keeps the current one.
type UpdateUserRequest struct {
	FirstName            string     `json:"first_name" validate:"required,max=255"`
	LastName             string     `json:"last_name" validate:"required,max=255"`
	Email                string     `json:"email" validate:"required,email,max=255"`
	Password             string     `json:"password" validate:"omitempty,min=8,max=72"`
	PasswordConfirmation string     `json:"password_confirmation" validate:"eqfield=Password"`
	Avatar               *uuid.UUID `json:"avatar"`
	Address              string     `json:"address" validate:"required,max=255"`
	PhoneNumber          string     `json:"phone_number" validate:"required,phone"`
	IsMarketing          bool       `json:"is_marketing"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPasswordResponse carries the token only when it is not mailed.
type ForgotPasswordResponse struct {
	Token string `json:"token,omitempty"`
}

type ResetPasswordRequest struct {
	Email                string `json:"email" validate:"required,email"`
	Token                string `json:"token" validate:"required"`
	Password             string `json:"password" validate:"required,min=8,max=72"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

type ListUsersRequest struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Address     string
	IsMarketing *bool
	Page        int
	Limit       int
	SortBy      string
	Desc        bool
}

type UserResponse struct {
	UUID        uuid.UUID  `json:"uuid"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Avatar      *uuid.UUID `json:"avatar"`
	Address     string     `json:"address"`
	PhoneNumber string     `json:"phone_number"`
	IsMarketing bool       `json:"is_marketing"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type UserListResponse struct {
	Users []*UserResponse
	Total int64
	Page  int
	Limit int
}

func ToUserResponse(u *domainUser.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		UUID:        u.UUID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Role:        u.Role.String(),
		Avatar:      u.Avatar,
		Address:     u.Address,
		PhoneNumber: u.PhoneNumber,
		IsMarketing: u.IsMarketing,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
