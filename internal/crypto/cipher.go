// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// tokenVersion is the first byte of every ciphertext token. It is also
// bound as additional authenticated data, so a token cannot be replayed
// under another format.
const tokenVersion byte = 0x01

var tokenEncoding = base64.RawURLEncoding.Strict()

// SecretCipher implements [Cipher] with AES-256-GCM.
//
// Token layout before base64url encoding:
//
//	version (1 byte) ‖ nonce (12 bytes) ‖ ciphertext ‖ tag (16 bytes)
type SecretCipher struct {
	aead cipher.AEAD
}

// NewSecretCipher builds the cipher for key. The returned value holds no
// mutable state and may be shared across goroutines.
func NewSecretCipher(key EncryptionKey) (*SecretCipher, error) {
	block, err := aes.NewCipher(key.b[:])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &SecretCipher{aead: aead}, nil
}

// Encrypt implements [Cipher].
func (c *SecretCipher) Encrypt(plaintext []byte) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, 1+len(nonce)+len(plaintext)+c.aead.Overhead())
	blob = append(blob, tokenVersion)
	blob = append(blob, nonce...)
	blob = c.aead.Seal(blob, nonce, plaintext, []byte{tokenVersion})

	return tokenEncoding.EncodeToString(blob), nil
}

// Decrypt implements [Cipher].
func (c *SecretCipher) Decrypt(token string) ([]byte, error) {
	blob, err := tokenEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrDecryption
	}

	nonceSize := c.aead.NonceSize()
	if len(blob) < 1+nonceSize+c.aead.Overhead() || blob[0] != tokenVersion {
		return nil, ErrDecryption
	}

	nonce, sealed := blob[1:1+nonceSize], blob[1+nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, sealed, []byte{tokenVersion})
	if err != nil {
		return nil, ErrDecryption
	}

	return plaintext, nil
}

// EncryptString implements [Cipher].
func (c *SecretCipher) EncryptString(plaintext string) (string, error) {
	return c.Encrypt([]byte(plaintext))
}

// DecryptString implements [Cipher].
func (c *SecretCipher) DecryptString(token string) (string, error) {
	plaintext, err := c.Decrypt(token)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
