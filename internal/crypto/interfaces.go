package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Cipher encrypts secret values at rest with the process-wide key.
// Implementations are safe for concurrent use.
type Cipher interface {
	// Encrypt seals plaintext into a self-describing ciphertext token that
	// embeds the format version, the nonce and the authentication tag.
	Encrypt(plaintext []byte) (string, error)

	// Decrypt opens a token produced by Encrypt. Every failure (malformed
	// token, foreign key, tampering) is reported as ErrDecryption.
	Decrypt(token string) ([]byte, error)

	// EncryptString and DecryptString are string conveniences over
	// Encrypt and Decrypt for the text secrets stored by the vault.
	EncryptString(plaintext string) (string, error)
	DecryptString(token string) (string, error)
}

// Hasher produces and checks one-way password hash records for account
// passwords, PINs and unlock patterns.
type Hasher interface {
	// Hash returns a salted, self-describing hash record of secret.
	// A fresh salt is drawn on every call.
	Hash(secret string) (string, error)

	// Verify reports whether secret matches record. Unknown or corrupt
	// records never match.
	Verify(secret, record string) bool

	// NeedsRehash reports whether record was produced by an older scheme
	// or weaker parameters and should be replaced after a successful
	// Verify.
	NeedsRehash(record string) bool
}
