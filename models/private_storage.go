package models

import "time"

// PrivateStorage is the PIN or pattern gated vault of a user. The lock
// secrets are stored as hash records only.
type PrivateStorage struct {
	StorageID    int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	PatternHash  *string   `json:"-"`
	PinHash      *string   `json:"-"`
	IsLocked     bool      `json:"is_locked"`
	LastAccessed time.Time `json:"last_accessed"`
}

// TableName returns the name of the database table
// associated with the PrivateStorage model.
func (p PrivateStorage) TableName() string {
	return "private_storages"
}

// PrivateStorageStatus is the response of GET /private-storage/status.
type PrivateStorageStatus struct {
	IsInitialized bool `json:"is_initialized"`
	IsLocked      bool `json:"is_locked"`
}

// LockRequest carries a PIN or a pattern, for setup and for unlock.
type LockRequest struct {
	Pin     *string `json:"pin,omitempty"`
	Pattern *string `json:"pattern,omitempty"`
}

// PrivateItem is an item of the private vault. Data is decrypted on reads
// and sealed into EncryptedData on writes.
type PrivateItem struct {
	ItemID        int64          `json:"id"`
	StorageID     int64          `json:"storage_id"`
	ItemType      string         `json:"item_type"`
	EncryptedData string         `json:"-"`
	Data          string         `json:"data"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the PrivateItem model.
func (p PrivateItem) TableName() string {
	return "private_items"
}

// PrivateItemInput is the body of POST /private-storage/items.
type PrivateItemInput struct {
	ItemType string         `json:"item_type"`
	Data     string         `json:"data"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
