package service

import (
	"github.com/MKhiriev/go-pass-god/internal/adapter"
	"github.com/MKhiriev/go-pass-god/internal/config"
	"github.com/MKhiriev/go-pass-god/internal/crypto"
	"github.com/MKhiriev/go-pass-god/internal/exchange"
	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/internal/store"
	"github.com/MKhiriev/go-pass-god/internal/token"
	"github.com/MKhiriev/go-pass-god/internal/validators"
)

// Dependencies are the components every service is built from.
type Dependencies struct {
	Storages *store.Storages
	Cipher   crypto.Cipher
	Hasher   crypto.Hasher
	Issuer   *token.Issuer
	Exchange *exchange.Exchange
	Breach   adapter.BreachAdapter
	Config   config.StructuredConfig
}

type Services struct {
	AppInfoService        AppInfoService
	AuthService           AuthService
	UserService           UserService
	PasswordService       PasswordService
	SocialAccountService  SocialAccountService
	NoteService           NoteService
	ShareService          ShareService
	BreachService         BreachService
	PrivateStorageService PrivateStorageService
	NotificationService   NotificationService
	AdminService          AdminService
}

func NewServices(deps Dependencies, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(deps.Config.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewVaultValidator()
	storages := deps.Storages
	notifications := NewNotificationService(storages.NotificationRepository, logger)

	return &Services{
		AppInfoService:        appInfoService,
		AuthService:           NewAuthService(storages.UserRepository, deps.Hasher, deps.Issuer, validator, logger),
		UserService:           NewUserService(storages.UserRepository, deps.Hasher, validator, logger),
		PasswordService:       NewPasswordService(storages.PasswordRepository, deps.Cipher, validator, notifications, logger),
		SocialAccountService:  NewSocialAccountService(storages.SocialAccountRepository, deps.Cipher, validator, notifications, logger),
		NoteService:           NewNoteService(storages.NoteRepository, deps.Cipher, validator, logger),
		ShareService:          NewShareService(deps.Exchange, storages.SharedSecretRepository, validator, notifications, logger),
		BreachService:         NewBreachService(storages, deps.Cipher, deps.Breach, notifications, logger),
		PrivateStorageService: NewPrivateStorageService(storages.PrivateStorageRepository, deps.Hasher, deps.Cipher, validator, logger),
		NotificationService:   notifications,
		AdminService:          NewAdminService(storages.UserRepository, storages.BreachAlertRepository, logger),
	}, nil
}
