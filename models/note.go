package models

import "time"

// SecureNote is an encrypted free-text note. Content is only populated on
// single-note reads, after decryption.
type SecureNote struct {
	NoteID           int64      `json:"id"`
	UserID           int64      `json:"user_id"`
	Title            string     `json:"title"`
	EncryptedContent string     `json:"-"`
	Content          string     `json:"content,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the SecureNote model.
func (n SecureNote) TableName() string {
	return "secure_notes"
}

// NoteInput is the body of POST /notes and PUT /notes/{id}.
type NoteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoteUpdate carries the fields of a secure note to change. Content is
// plaintext and is encrypted before it reaches storage.
type NoteUpdate struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}
