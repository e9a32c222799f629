package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-god/internal/crypto"
	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/internal/store"
	"github.com/MKhiriev/go-pass-god/internal/validators"
	"github.com/MKhiriev/go-pass-god/models"
)

type socialAccountService struct {
	socialAccountRepository store.SocialAccountRepository
	cipher                  crypto.Cipher
	validator               validators.Validator
	notifications           NotificationService

	logger *logger.Logger
}

func NewSocialAccountService(socialAccountRepository store.SocialAccountRepository, cipher crypto.Cipher, validator validators.Validator, notifications NotificationService, logger *logger.Logger) SocialAccountService {
	return &socialAccountService{
		socialAccountRepository: socialAccountRepository,
		cipher:                  cipher,
		validator:               validator,
		notifications:           notifications,
		logger:                  logger,
	}
}

// Create stores a social account. The platform is stored lower-cased.
func (s *socialAccountService) Create(ctx context.Context, userID int64, in models.SocialAccountInput) (models.SocialAccount, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, in); err != nil {
		log.Err(err).Msg("invalid social account provided")
		return models.SocialAccount{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	platform, _ := models.NormalizePlatform(in.Platform)

	sealed, err := s.cipher.EncryptString(in.Password)
	if err != nil {
		log.Err(err).Msg("encrypting social account password failed")
		return models.SocialAccount{}, fmt.Errorf("encrypting password failed: %w", err)
	}

	created, err := s.socialAccountRepository.CreateSocialAccount(ctx, models.SocialAccount{
		UserID:            userID,
		Platform:          platform,
		Username:          in.Username,
		EncryptedPassword: sealed,
		AdditionalData:    in.AdditionalData,
	})
	if err != nil {
		log.Err(err).Msg("storing social account failed")
		return models.SocialAccount{}, fmt.Errorf("storing social account failed: %w", err)
	}

	s.notifications.Notify(ctx, notification(userID, models.NotificationSocialCreated,
		fmt.Sprintf("New %s account saved", created.Platform), created.SocialAccountID))

	return created, nil
}

func (s *socialAccountService) List(ctx context.Context, userID int64, page models.Page) ([]models.SocialAccount, error) {
	accounts, err := s.socialAccountRepository.ListSocialAccounts(ctx, userID, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing social accounts failed")
		return nil, fmt.Errorf("listing social accounts failed: %w", err)
	}
	return accounts, nil
}

func (s *socialAccountService) Get(ctx context.Context, userID, accountID int64) (models.SocialAccount, error) {
	account, err := s.socialAccountRepository.GetSocialAccount(ctx, userID, accountID)
	if err != nil {
		return models.SocialAccount{}, fmt.Errorf("getting social account failed: %w", err)
	}
	return account, nil
}

func (s *socialAccountService) Update(ctx context.Context, userID, accountID int64, upd models.SocialAccountUpdate) (models.SocialAccount, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, upd); err != nil {
		log.Err(err).Msg("invalid social account update provided")
		return models.SocialAccount{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if upd.Platform != nil {
		platform, _ := models.NormalizePlatform(*upd.Platform)
		upd.Platform = &platform
	}

	upd.EncryptedPassword = nil
	if upd.Password != nil {
		sealed, err := s.cipher.EncryptString(*upd.Password)
		if err != nil {
			log.Err(err).Msg("encrypting social account password failed")
			return models.SocialAccount{}, fmt.Errorf("encrypting password failed: %w", err)
		}
		upd.EncryptedPassword = &sealed
	}

	updated, err := s.socialAccountRepository.UpdateSocialAccount(ctx, userID, accountID, upd)
	if err != nil {
		log.Err(err).Int64("account_id", accountID).Msg("updating social account failed")
		return models.SocialAccount{}, fmt.Errorf("updating social account failed: %w", err)
	}
	return updated, nil
}

func (s *socialAccountService) Delete(ctx context.Context, userID, accountID int64) error {
	if err := s.socialAccountRepository.DeleteSocialAccount(ctx, userID, accountID); err != nil {
		return fmt.Errorf("deleting social account failed: %w", err)
	}
	return nil
}

func (s *socialAccountService) Reveal(ctx context.Context, userID, accountID int64) (models.RevealedSecret, error) {
	account, err := s.Get(ctx, userID, accountID)
	if err != nil {
		return models.RevealedSecret{}, err
	}

	plaintext, err := s.cipher.DecryptString(account.EncryptedPassword)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("account_id", accountID).Msg("decrypting social account password failed")
		return models.RevealedSecret{}, err
	}

	return models.RevealedSecret{ID: accountID, Password: plaintext}, nil
}

func (s *socialAccountService) Platforms(ctx context.Context) map[string]models.PlatformInfo {
	return models.SupportedPlatforms
}
