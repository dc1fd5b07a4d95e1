package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Filter narrows user listings. Empty fields are ignored.
type Filter struct {
	Role        Role
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Address     string
	IsMarketing *bool

	Page   int
	Limit  int
	SortBy string
	Desc   bool
}

// Repository is the credential store.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByUUID(ctx context.Context, userUUID uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, int64, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, userUUID uuid.UUID, passwordHash string) error
	TouchLastLogin(ctx context.Context, userUUID uuid.UUID, at time.Time) error
	Delete(ctx context.Context, userUUID uuid.UUID) error

	UpsertPasswordResetToken(ctx context.Context, token *PasswordResetToken) error
	GetPasswordResetToken(ctx context.Context, email, token string) (*PasswordResetToken, error)
	DeletePasswordResetToken(ctx context.Context, email string) error
}
