package models

import "time"

// SharedSecret is a one-time, time-limited shared payload. Only the SHA-256
// digest of its token is stored; the token itself is handed out once.
type SharedSecret struct {
	SharedSecretID int64      `json:"id"`
	TokenHash      string     `json:"-"`
	EncryptedData  string     `json:"-"`
	ExpiresAt      time.Time  `json:"expires_at"`
	Used           bool       `json:"used"`
	UsedAt         *time.Time `json:"used_at,omitempty"`
	CreatedBy      int64      `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the SharedSecret model.
func (s SharedSecret) TableName() string {
	return "shared_secrets"
}

// ShareCreateRequest is the body of POST /share/create. EncryptedData is
// opaque to the server. A nil ExpiresInMinutes selects the default TTL.
type ShareCreateRequest struct {
	EncryptedData    string `json:"encrypted_data"`
	ExpiresInMinutes *int   `json:"expires_in_minutes,omitempty"`
}

// ShareCreateResponse is returned once, on creation.
type ShareCreateResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
}

// ShareConsumeResponse carries the payload of a consumed secret.
type ShareConsumeResponse struct {
	Data string `json:"data"`
}
