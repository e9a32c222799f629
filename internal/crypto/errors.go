package crypto

import "errors"

var (
	// ErrDecryption is returned by Decrypt for malformed tokens, tokens
	// sealed under another key, and tokens that fail authentication.
	ErrDecryption = errors.New("ciphertext cannot be decrypted")
	// ErrInvalidKey is returned when key material has the wrong encoding
	// or length.
	ErrInvalidKey = errors.New("invalid encryption key")
	// ErrHashing is returned when a hash record cannot be produced.
	ErrHashing = errors.New("hashing secret failed")
)
