package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateToken returns a random hex string of 2*n characters, used as an
// opaque session token.
func GenerateToken(n int) (string, error) {
	bytes := make([]byte, n)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
