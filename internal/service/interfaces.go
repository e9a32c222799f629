package service

import (
	"context"

	"github.com/MKhiriev/go-pass-god/models"
)

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Info(ctx context.Context) models.ServiceInfo
	Health(ctx context.Context) models.HealthStatus
}

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.TokenResponse, error)
	// ParseToken verifies a session token and returns the user ID it was
	// issued for.
	ParseToken(ctx context.Context, tokenString string) (int64, error)
}

type UserService interface {
	Me(ctx context.Context, userID int64) (models.User, error)
	UpdateMe(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error)
	DeleteMe(ctx context.Context, userID int64) error
}

// PasswordService manages website credentials. Plaintext passwords are
// accepted on write and only leave the service through Reveal.
type PasswordService interface {
	Create(ctx context.Context, userID int64, in models.PasswordInput) (models.Password, error)
	List(ctx context.Context, userID int64, page models.Page) ([]models.Password, error)
	Get(ctx context.Context, userID, passwordID int64) (models.Password, error)
	Update(ctx context.Context, userID, passwordID int64, upd models.PasswordUpdate) (models.Password, error)
	Delete(ctx context.Context, userID, passwordID int64) error
	Reveal(ctx context.Context, userID, passwordID int64) (models.RevealedSecret, error)
}

type SocialAccountService interface {
	Create(ctx context.Context, userID int64, in models.SocialAccountInput) (models.SocialAccount, error)
	List(ctx context.Context, userID int64, page models.Page) ([]models.SocialAccount, error)
	Get(ctx context.Context, userID, accountID int64) (models.SocialAccount, error)
	Update(ctx context.Context, userID, accountID int64, upd models.SocialAccountUpdate) (models.SocialAccount, error)
	Delete(ctx context.Context, userID, accountID int64) error
	Reveal(ctx context.Context, userID, accountID int64) (models.RevealedSecret, error)
	Platforms(ctx context.Context) map[string]models.PlatformInfo
}

// NoteService manages secure notes. Get returns the decrypted content;
// List and the write operations return metadata only.
type NoteService interface {
	Create(ctx context.Context, userID int64, in models.NoteInput) (models.SecureNote, error)
	List(ctx context.Context, userID int64, page models.Page) ([]models.SecureNote, error)
	Get(ctx context.Context, userID, noteID int64) (models.SecureNote, error)
	Update(ctx context.Context, userID, noteID int64, upd models.NoteUpdate) (models.SecureNote, error)
	Delete(ctx context.Context, userID, noteID int64) error
}

type ShareService interface {
	Create(ctx context.Context, creatorID int64, req models.ShareCreateRequest) (models.ShareCreateResponse, error)
	Consume(ctx context.Context, token string) (models.ShareConsumeResponse, error)
	List(ctx context.Context, creatorID int64, page models.Page) ([]models.SharedSecret, error)
	Revoke(ctx context.Context, creatorID, secretID int64) error
}

type BreachService interface {
	// CheckPasswords checks every stored password of the user. Secrets that
	// could not be checked are listed as inconclusive, never as clean.
	CheckPasswords(ctx context.Context, userID int64) (models.PasswordCheckReport, error)
	CheckEmail(ctx context.Context, userID int64) ([]models.BreachAlert, error)
	CheckPassword(ctx context.Context, secret string) models.BreachStatus
	Alerts(ctx context.Context, filter models.AlertFilter) ([]models.BreachAlert, error)
	Resolve(ctx context.Context, userID, alertID int64) (models.BreachAlert, error)
}

type PrivateStorageService interface {
	Status(ctx context.Context, userID int64) (models.PrivateStorageStatus, error)
	Setup(ctx context.Context, userID int64, req models.LockRequest) (models.PrivateStorageStatus, error)
	Unlock(ctx context.Context, userID int64, req models.LockRequest) error
	Lock(ctx context.Context, userID int64) error
	CreateItem(ctx context.Context, userID int64, in models.PrivateItemInput) (models.PrivateItem, error)
	ListItems(ctx context.Context, userID int64, itemType *string) ([]models.PrivateItem, error)
	DeleteItem(ctx context.Context, userID, itemID int64) error
}

type NotificationService interface {
	// Notify records an activity notification. Failures are logged and
	// never fail the operation that triggered them.
	Notify(ctx context.Context, notification models.Notification)
	List(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID int64) error
}

type AdminService interface {
	ListUsers(ctx context.Context, page models.Page) ([]models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	ListBreaches(ctx context.Context, page models.Page) ([]models.BreachAlert, error)
}
