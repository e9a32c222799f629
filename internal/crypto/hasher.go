// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Argon2Params are the Argon2id tuning parameters of a hash record.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

// DefaultArgon2Params follow the OWASP (2024) recommendation:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
var DefaultArgon2Params = Argon2Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

const argon2idPrefix = "$argon2id$"

// CredentialHasher implements [Hasher] with Argon2id records in PHC string
// form:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
//
// Records written by bcrypt ($2a$, $2b$, $2y$) still verify and are
// reported by NeedsRehash so callers can upgrade them on login.
type CredentialHasher struct {
	params Argon2Params
}

// NewCredentialHasher returns a hasher producing records with params.
func NewCredentialHasher(params Argon2Params) *CredentialHasher {
	return &CredentialHasher{params: params}
}

// Hash implements [Hasher].
func (h *CredentialHasher) Hash(secret string) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("%w: read salt: %w", ErrHashing, err)
	}

	key := argon2.IDKey([]byte(secret), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [Hasher].
func (h *CredentialHasher) Verify(secret, record string) bool {
	if isBcrypt(record) {
		return bcrypt.CompareHashAndPassword([]byte(record), []byte(secret)) == nil
	}

	params, salt, want, err := decodeArgon2id(record)
	if err != nil {
		return false
	}

	got := argon2.IDKey([]byte(secret), salt, params.Time, params.Memory, params.Threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}

// NeedsRehash implements [Hasher].
func (h *CredentialHasher) NeedsRehash(record string) bool {
	if isBcrypt(record) {
		return true
	}

	params, salt, key, err := decodeArgon2id(record)
	if err != nil {
		return true
	}

	return params.Time < h.params.Time ||
		params.Memory < h.params.Memory ||
		params.Threads != h.params.Threads ||
		uint32(len(salt)) < h.params.SaltLen ||
		uint32(len(key)) < h.params.KeyLen
}

func isBcrypt(record string) bool {
	return strings.HasPrefix(record, "$2a$") ||
		strings.HasPrefix(record, "$2b$") ||
		strings.HasPrefix(record, "$2y$")
}

func decodeArgon2id(record string) (Argon2Params, []byte, []byte, error) {
	var params Argon2Params

	if !strings.HasPrefix(record, argon2idPrefix) {
		return params, nil, nil, fmt.Errorf("unsupported hash record")
	}

	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, hash
	parts := strings.Split(record, "$")
	if len(parts) != 6 {
		return params, nil, nil, fmt.Errorf("malformed argon2id record")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return params, nil, nil, fmt.Errorf("unsupported argon2 version")
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Time, &params.Threads); err != nil {
		return params, nil, nil, fmt.Errorf("malformed argon2id params: %w", err)
	}
	if params.Time == 0 || params.Memory == 0 || params.Threads == 0 {
		return params, nil, nil, fmt.Errorf("malformed argon2id params")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return params, nil, nil, fmt.Errorf("malformed argon2id salt")
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return params, nil, nil, fmt.Errorf("malformed argon2id hash")
	}

	params.SaltLen = uint32(len(salt))
	params.KeyLen = uint32(len(key))
	return params, salt, key, nil
}
