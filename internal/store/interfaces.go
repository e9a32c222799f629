package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-god/models"
)

//go:generate mockgen -destination=../mock/user_repository_mock.go -package=mock github.com/MKhiriev/go-pass-god/internal/store UserRepository

// UserRepository persists accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	ListUsers(ctx context.Context, page models.Page) ([]models.User, error)
}

// PasswordRepository persists website credentials. Every method is scoped
// to the owning user.
type PasswordRepository interface {
	CreatePassword(ctx context.Context, password models.Password) (models.Password, error)
	ListPasswords(ctx context.Context, userID int64, page models.Page) ([]models.Password, error)
	GetPassword(ctx context.Context, userID, passwordID int64) (models.Password, error)
	UpdatePassword(ctx context.Context, userID, passwordID int64, update models.PasswordUpdate) (models.Password, error)
	DeletePassword(ctx context.Context, userID, passwordID int64) error
}

type SocialAccountRepository interface {
	CreateSocialAccount(ctx context.Context, account models.SocialAccount) (models.SocialAccount, error)
	ListSocialAccounts(ctx context.Context, userID int64, page models.Page) ([]models.SocialAccount, error)
	GetSocialAccount(ctx context.Context, userID, accountID int64) (models.SocialAccount, error)
	UpdateSocialAccount(ctx context.Context, userID, accountID int64, update models.SocialAccountUpdate) (models.SocialAccount, error)
	DeleteSocialAccount(ctx context.Context, userID, accountID int64) error
}

type NoteRepository interface {
	CreateNote(ctx context.Context, note models.SecureNote) (models.SecureNote, error)
	ListNotes(ctx context.Context, userID int64, page models.Page) ([]models.SecureNote, error)
	GetNote(ctx context.Context, userID, noteID int64) (models.SecureNote, error)
	UpdateNote(ctx context.Context, userID, noteID int64, title, encryptedContent *string) (models.SecureNote, error)
	DeleteNote(ctx context.Context, userID, noteID int64) error
}

// SharedSecretRepository persists one-time shared secrets keyed by the
// hash of their token.
type SharedSecretRepository interface {
	CreateSharedSecret(ctx context.Context, secret models.SharedSecret) (models.SharedSecret, error)
	// ConsumeSharedSecret marks the record used and returns its payload. ok
	// is false when the record is unknown, expired or already used.
	ConsumeSharedSecret(ctx context.Context, tokenHash string, now time.Time) (payload string, ok bool, err error)
	ListSharedSecrets(ctx context.Context, creatorID int64, page models.Page) ([]models.SharedSecret, error)
	DeleteSharedSecret(ctx context.Context, creatorID, secretID int64) error
	// DeleteExpiredSharedSecrets purges unused records that expired before
	// now and used records consumed before consumedBefore.
	DeleteExpiredSharedSecrets(ctx context.Context, now, consumedBefore time.Time) (int64, error)
}

type BreachAlertRepository interface {
	CreateBreachAlert(ctx context.Context, alert models.BreachAlert) (models.BreachAlert, error)
	ListBreachAlerts(ctx context.Context, filter models.AlertFilter) ([]models.BreachAlert, error)
	ListAllBreachAlerts(ctx context.Context, page models.Page) ([]models.BreachAlert, error)
	ResolveBreachAlert(ctx context.Context, userID, alertID int64) (models.BreachAlert, error)
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification models.Notification) (models.Notification, error)
	ListNotifications(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID int64) error
}

// PrivateStorageRepository persists the PIN or pattern protected vault of a
// user and its items.
type PrivateStorageRepository interface {
	GetPrivateStorage(ctx context.Context, userID int64) (models.PrivateStorage, error)
	CreatePrivateStorage(ctx context.Context, storage models.PrivateStorage) (models.PrivateStorage, error)
	SetPrivateStorageLocked(ctx context.Context, userID int64, locked bool, at time.Time) error
	CreatePrivateItem(ctx context.Context, item models.PrivateItem) (models.PrivateItem, error)
	ListPrivateItems(ctx context.Context, storageID int64, itemType *string) ([]models.PrivateItem, error)
	DeletePrivateItem(ctx context.Context, storageID, itemID int64) error
}
