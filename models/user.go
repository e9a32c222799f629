package models

import "time"

// User is a registered account.
// PasswordHash is a self-describing hash record and never leaves the server.
type User struct {
	UserID       int64      `json:"id"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	PasswordHash string     `json:"-"`
	IsActive     bool       `json:"is_active"`
	IsVerified   bool       `json:"is_verified"`
	IsAdmin      bool       `json:"is_admin"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

// LoginRequest carries login credentials, from JSON or an OAuth2 password
// form where Email arrives as "username".
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is the body of PUT /users/me. Nil fields are left as
// they are; a password change needs both CurrentPassword and NewPassword.
type UpdateUserRequest struct {
	Email           *string `json:"email,omitempty"`
	FullName        *string `json:"full_name,omitempty"`
	CurrentPassword *string `json:"current_password,omitempty"`
	NewPassword     *string `json:"new_password,omitempty"`
}

// UserUpdate is the storage-level patch built from UpdateUserRequest.
type UserUpdate struct {
	Email        *string
	FullName     *string
	PasswordHash *string
}

// IsEmpty reports whether the patch changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.FullName == nil && u.PasswordHash == nil
}

// TokenResponse is returned by the login endpoints.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
