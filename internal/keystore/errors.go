package keystore

import "errors"

var (
	// ErrKeyMissing means a key is absent while data sealed under an earlier
	// key exists. Generating a new key would make that data unreadable, so
	// startup must stop until the original key is restored.
	ErrKeyMissing = errors.New("key is missing but sealed data exists")
	// ErrSourceUnavailable means the configuration source could not be read
	// or written.
	ErrSourceUnavailable = errors.New("key source unavailable")
)
