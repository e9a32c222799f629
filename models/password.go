package models

import "time"

// Password is a stored website credential. The secret itself only exists
// as EncryptedPassword, a ciphertext token of the secret cipher.
type Password struct {
	PasswordID        int64      `json:"id"`
	UserID            int64      `json:"user_id"`
	Title             string     `json:"title"`
	Username          string     `json:"username"`
	EncryptedPassword string     `json:"-"`
	WebsiteURL        *string    `json:"website_url,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Password model.
func (p Password) TableName() string {
	return "passwords"
}

// PasswordInput is the body of POST /passwords.
type PasswordInput struct {
	Title      string  `json:"title"`
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	WebsiteURL *string `json:"website_url,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// PasswordUpdate is the body of PUT /passwords/{id}. Nil fields are kept.
type PasswordUpdate struct {
	Title      *string `json:"title,omitempty"`
	Username   *string `json:"username,omitempty"`
	Password   *string `json:"password,omitempty"`
	WebsiteURL *string `json:"website_url,omitempty"`
	Notes      *string `json:"notes,omitempty"`

	// EncryptedPassword is set by the service once Password is sealed.
	EncryptedPassword *string `json:"-"`
}

// RevealedSecret is the response of a reveal endpoint.
type RevealedSecret struct {
	ID       int64  `json:"id"`
	Password string `json:"password"`
}
