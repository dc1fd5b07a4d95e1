package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "pet-shop-api/pkg/errors"
)

func newTestKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func fixedClock(at time.Time) Clock {
	return func() time.Time { return at }
}

func TestIssueAndVerify(t *testing.T) {
	key := newTestKey(t)
	issuedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	userUUID := uuid.New()

	token, err := NewIssuer(key, "http://localhost:8080", 0, fixedClock(issuedAt)).Issue(userUUID)
	require.NoError(t, err)

	got, err := NewVerifier(&key.PublicKey, fixedClock(issuedAt.Add(time.Hour))).Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userUUID, got)
}

func TestIssuedClaims(t *testing.T) {
	key := newTestKey(t)
	issuedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	token, err := NewIssuer(key, "https://shop.example.com", 24*time.Hour, fixedClock(issuedAt)).Issue(uuid.New())
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)

	assert.Equal(t, "https://shop.example.com", claims.Issuer)
	assert.Equal(t, issuedAt.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, issuedAt.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestIssueIsDeterministic(t *testing.T) {
	key := newTestKey(t)
	clock := fixedClock(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	userUUID := uuid.New()

	first, err := NewIssuer(key, "iss", 0, clock).Issue(userUUID)
	require.NoError(t, err)
	second, err := NewIssuer(key, "iss", 0, clock).Issue(userUUID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestVerifyExpiredToken(t *testing.T) {
	key := newTestKey(t)
	issuedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	token, err := NewIssuer(key, "iss", 0, fixedClock(issuedAt)).Issue(uuid.New())
	require.NoError(t, err)

	_, err = NewVerifier(&key.PublicKey, fixedClock(issuedAt.Add(24*time.Hour+time.Second))).Verify(token)
	assert.ErrorIs(t, err, appErrors.ErrTokenExpired)
}

func TestVerifyWrongKey(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	token, err := NewIssuer(newTestKey(t), "iss", 0, fixedClock(issuedAt)).Issue(uuid.New())
	require.NoError(t, err)

	other := newTestKey(t)
	_, err = NewVerifier(&other.PublicKey, fixedClock(issuedAt)).Verify(token)
	assert.ErrorIs(t, err, appErrors.ErrTokenExpired)
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	key := newTestKey(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	claims := Claims{
		UserUUID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewVerifier(&key.PublicKey, fixedClock(now)).Verify(token)
	assert.ErrorIs(t, err, appErrors.ErrTokenExpired)
}

func TestVerifyMalformed(t *testing.T) {
	key := newTestKey(t)
	verifier := NewVerifier(&key.PublicKey, nil)

	for _, token := range []string{"", "abc", "a.b", "not.a.token"} {
		_, err := verifier.Verify(token)
		assert.ErrorIs(t, err, appErrors.ErrInvalidTokenFormat, token)
	}
}

func TestVerifyMissingUserClaim(t *testing.T) {
	key := newTestKey(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)

	_, err = NewVerifier(&key.PublicKey, fixedClock(now)).Verify(token)
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", BearerToken("Bearer abc.def.ghi"))
	assert.Equal(t, "abc", BearerToken("bearer abc"))
	assert.Equal(t, "", BearerToken(""))
	assert.Equal(t, "", BearerToken("Basic Zm9vOmJhcg=="))
}

func TestLoadKeyPair(t *testing.T) {
	key := newTestKey(t)
	dir := t.TempDir()

	privatePEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "privateKey.pem"), privatePEM, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "publicKey.pem"), publicPEM, 0o600))

	pair, err := LoadKeyPair(filepath.Join(dir, "privateKey.pem"), filepath.Join(dir, "publicKey.pem"))
	require.NoError(t, err)
	assert.Equal(t, key.PublicKey.N, pair.Public.N)

	_, err = LoadKeyPair(filepath.Join(dir, "missing.pem"), filepath.Join(dir, "publicKey.pem"))
	assert.True(t, err != nil && strings.Contains(err.Error(), "private key"))
}
