package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/crypto/argon2"
)

// HashPassword returns the password encoded as base64(salt).base64(hash).
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password is blank")
	}

	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", ErrorHandler(err, "failed to generate salt")
	}

	hash := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)

	saltBase64 := base64.StdEncoding.EncodeToString(salt)
	hashBase64 := base64.StdEncoding.EncodeToString(hash)

	return saltBase64 + "." + hashBase64, nil
}

// VerifyPassword compares the password against an encoded salt.hash value in
// constant time.
func VerifyPassword(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, ".")
	if len(parts) != 2 {
		return false, errors.New("invalid encoded hash format")
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return false, ErrorHandler(err, "failed to decode salt")
	}

	hash, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false, ErrorHandler(err, "failed to decode hashed password")
	}

	computed := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)
	if len(computed) != len(hash) {
		return false, nil
	}

	return subtle.ConstantTimeCompare(computed, hash) == 1, nil
}
