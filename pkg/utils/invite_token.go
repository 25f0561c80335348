package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// GenerateInviteToken returns a fresh 256-bit invite token and its sha256
// fingerprint. Only the fingerprint is stored; the raw token travels in the
// emailed link.
func GenerateInviteToken() (token string, fingerprint string, err error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", "", fmt.Errorf("failed to generate token: %w", err)
	}

	hashed := sha256.Sum256(tokenBytes)
	return hex.EncodeToString(tokenBytes), hex.EncodeToString(hashed[:]), nil
}

// FingerprintInviteToken recomputes the stored fingerprint for a raw token
// taken from an invite link. A token that is not valid hex can never match a
// stored row.
func FingerprintInviteToken(token string) (string, error) {
	tokenBytes, err := hex.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("malformed invite token: %w", err)
	}

	hashed := sha256.Sum256(tokenBytes)
	return hex.EncodeToString(hashed[:]), nil
}
