package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// TokenGenerator produces a new opaque session token.
type TokenGenerator func() (string, error)

// GenerateToken returns a hex-encoded random token of domain.TokenLength
// characters drawn from crypto/rand.
func GenerateToken() (string, error) {
	b := make([]byte, domain.TokenLength/2)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
