// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package auth provides password hashing and verification utilities
// using the scrypt key-derivation function for secure credential storage.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// Scrypt parameters. N/r/p follow the library recommendation for interactive
// logins; the salt and key lengths match the stored row format (hex columns).
const (
	ScryptN       = 32768
	ScryptR       = 8
	ScryptP       = 1
	ScryptKeyLen  = 64
	ScryptSaltLen = 16
)

// NewSalt generates a random per-user salt, hex encoded.
func NewSalt() (string, error) {
	salt := make([]byte, ScryptSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	return hex.EncodeToString(salt), nil
}

// HashPassword derives a 64-byte scrypt key from the password and hex salt.
// Returns the key hex encoded, the format stored in users.password_hash.
func HashPassword(password, hexSalt string) (string, error) {
	salt, err := hex.DecodeString(hexSalt)
	if err != nil {
		return "", fmt.Errorf("decoding salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), salt, ScryptN, ScryptR, ScryptP, ScryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("deriving key: %w", err)
	}

	return hex.EncodeToString(key), nil
}

// CheckPassword verifies a password against a stored hex hash and salt.
// Uses constant-time comparison to prevent timing attacks.
func CheckPassword(password, hexHash, hexSalt string) (bool, error) {
	expected, err := hex.DecodeString(hexHash)
	if err != nil {
		return false, fmt.Errorf("decoding hash: %w", err)
	}

	salt, err := hex.DecodeString(hexSalt)
	if err != nil {
		return false, fmt.Errorf("decoding salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), salt, ScryptN, ScryptR, ScryptP, len(expected))
	if err != nil {
		return false, fmt.Errorf("deriving key: %w", err)
	}

	return subtle.ConstantTimeCompare(key, expected) == 1, nil
}
