package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	appErrors "pet-shop-api/pkg/errors"
)

const DefaultTokenTTL = 24 * time.Hour

// Claims carries the user_uuid claim next to iss, iat and exp.
type Claims struct {
	UserUUID string `json:"user_uuid"`
	jwt.RegisteredClaims
}

// Clock returns the current time. Tests pin it.
type Clock func() time.Time

type Issuer struct {
	key    *rsa.PrivateKey
	issuer string
	ttl    time.Duration
	now    Clock
}

func NewIssuer(key *rsa.PrivateKey, issuer string, ttl time.Duration, now Clock) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Issuer{key: key, issuer: issuer, ttl: ttl, now: now}
}

// Issue signs a token for userUUID. Identical clock readings give identical tokens.
func (i *Issuer) Issue(userUUID uuid.UUID) (string, error) {
	issuedAt := i.now().Truncate(time.Second)

	claims := Claims{
		UserUUID: userUUID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

type Verifier struct {
	key *rsa.PublicKey
	now Clock
}

func NewVerifier(key *rsa.PublicKey, now Clock) *Verifier {
	if now == nil {
		now = time.Now
	}
	return &Verifier{key: key, now: now}
}

// Verify checks structure first, then signature and time claims, and returns
// the user uuid claim. Errors are appErrors.ErrInvalidTokenFormat,
// appErrors.ErrTokenExpired or appErrors.ErrInvalidToken.
func (v *Verifier) Verify(tokenString string) (uuid.UUID, error) {
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &Claims{}); err != nil {
		return uuid.Nil, appErrors.ErrInvalidTokenFormat
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return v.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithTimeFunc(v.now),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		// Signature failures share the expiry message.
		return uuid.Nil, appErrors.ErrTokenExpired
	}

	userUUID, err := uuid.Parse(claims.UserUUID)
	if err != nil {
		return uuid.Nil, appErrors.ErrInvalidToken
	}

	return userUUID, nil
}

// BearerToken extracts the token from an Authorization header value.
// A missing or non-bearer header yields "".
func BearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// IsAuthError reports whether err is one of the gate failures.
func IsAuthError(err error) bool {
	return errors.Is(err, appErrors.ErrInvalidTokenFormat) ||
		errors.Is(err, appErrors.ErrTokenExpired) ||
		errors.Is(err, appErrors.ErrInvalidToken)
}
