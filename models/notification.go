package models

import "time"

// Notification types.
const (
	NotificationPasswordCreated = "password_created"
	NotificationSocialCreated   = "social_account_created"
	NotificationBreachAlert     = "breach_alert"
	NotificationSecretShared    = "secret_shared"
)

// Notification is an activity message shown to the account owner.
type Notification struct {
	NotificationID int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Message        string    `json:"message"`
	Type           string    `json:"type"`
	EntityID       *int64    `json:"entity_id,omitempty"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Notification model.
func (n Notification) TableName() string {
	return "notifications"
}

// NotificationFilter selects notifications of a user.
type NotificationFilter struct {
	UserID int64
	Read   *bool
	Page   Page
}
