package auth

import (
	"context"

	"pet-shop-api/internal/domain/user"
)

type principalKey struct{}

// WithUser attaches the authenticated user to ctx.
func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, principalKey{}, u)
}

func UserFrom(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(principalKey{}).(*user.User)
	return u, ok && u != nil
}
