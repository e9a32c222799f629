// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// KeySize is the length of the secret cipher key in bytes (AES-256).
const KeySize = 32

// EncryptionKey is the immutable key material of the secret cipher. It is
// built once at startup and handed to NewSecretCipher; the bytes are not
// reachable from outside the package.
type EncryptionKey struct {
	b [KeySize]byte
}

// ParseEncryptionKey decodes the base64url text form of a key, as stored in
// the configuration source.
func ParseEncryptionKey(encoded string) (EncryptionKey, error) {
	var key EncryptionKey

	raw, err := decodeKey(encoded)
	if err != nil {
		return key, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	if len(raw) != KeySize {
		return key, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKey, KeySize, len(raw))
	}

	copy(key.b[:], raw)
	return key, nil
}

// GenerateEncryptionKey draws a new key from the OS CSPRNG and returns its
// base64url text form, ready to be persisted.
func GenerateEncryptionKey() (string, error) {
	return generateEncoded(KeySize)
}

// GenerateSigningKey draws a new HMAC signing key (256 bits) and returns its
// base64url text form. Signing keys are kept separate from cipher keys.
func GenerateSigningKey() (string, error) {
	return generateEncoded(32)
}

func generateEncoded(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("read random key: %w", err)
	}
	return base64.URLEncoding.EncodeToString(buf), nil
}

// decodeKey accepts padded and unpadded base64url. Keys generated by the
// previous deployment were written padded.
func decodeKey(encoded string) ([]byte, error) {
	if raw, err := base64.URLEncoding.DecodeString(encoded); err == nil {
		return raw, nil
	}
	return base64.RawURLEncoding.DecodeString(encoded)
}
