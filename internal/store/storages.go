package store

import "github.com/MKhiriev/go-pass-god/internal/logger"

// Storages groups every repository backed by one connection pool.
type Storages struct {
	UserRepository           UserRepository
	PasswordRepository       PasswordRepository
	SocialAccountRepository  SocialAccountRepository
	NoteRepository           NoteRepository
	SharedSecretRepository   SharedSecretRepository
	BreachAlertRepository    BreachAlertRepository
	NotificationRepository   NotificationRepository
	PrivateStorageRepository PrivateStorageRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:           NewUserRepository(db, log),
		PasswordRepository:       NewPasswordRepository(db, log),
		SocialAccountRepository:  NewSocialAccountRepository(db, log),
		NoteRepository:           NewNoteRepository(db, log),
		SharedSecretRepository:   NewSharedSecretRepository(db, log),
		BreachAlertRepository:    NewBreachAlertRepository(db, log),
		NotificationRepository:   NewNotificationRepository(db, log),
		PrivateStorageRepository: NewPrivateStorageRepository(db, log),
	}
}
