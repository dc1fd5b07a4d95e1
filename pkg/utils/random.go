package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomToken returns a hex string of length chars built from crypto/rand.
func RandomToken(length int) (string, error) {
	buf := make([]byte, (length+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf)[:length], nil
}
