package keystore

// Names of the values kept in the configuration source. They match the
// environment variable names, so the key file can also be loaded as env.
const (
	EncryptionKeyName = "APP_ENCRYPTION_KEY"
	SigningKeyName    = "APP_TOKEN_SIGN_KEY"
)
