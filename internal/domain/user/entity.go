package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an account of the shop, either an admin or a customer.
type User struct {
	ID             uint
	UUID           uuid.UUID
	FirstName      string
	LastName       string
	Email          string
	PasswordHashed string
	Role           Role
	Avatar         *uuid.UUID
	Address        string
	PhoneNumber    string
	IsMarketing    bool
	LastLoginAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// PasswordResetToken is keyed by email; issuing a new one replaces the old.
type PasswordResetToken struct {
	Email     string
	Token     string
	CreatedAt time.Time
}

func (t *PasswordResetToken) IsExpired(now time.Time, ttl time.Duration) bool {
	return ttl > 0 && now.After(t.CreatedAt.Add(ttl))
}
