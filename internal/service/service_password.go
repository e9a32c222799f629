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

// passwordService stores website credentials with the password sealed by
// the secret cipher.
type passwordService struct {
	passwordRepository store.PasswordRepository
	cipher             crypto.Cipher
	validator          validators.Validator
	notifications      NotificationService

	logger *logger.Logger
}

func NewPasswordService(passwordRepository store.PasswordRepository, cipher crypto.Cipher, validator validators.Validator, notifications NotificationService, logger *logger.Logger) PasswordService {
	return &passwordService{
		passwordRepository: passwordRepository,
		cipher:             cipher,
		validator:          validator,
		notifications:      notifications,
		logger:             logger,
	}
}

func (s *passwordService) Create(ctx context.Context, userID int64, in models.PasswordInput) (models.Password, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, in); err != nil {
		log.Err(err).Msg("invalid password entry provided")
		return models.Password{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	sealed, err := s.cipher.EncryptString(in.Password)
	if err != nil {
		log.Err(err).Msg("encrypting password failed")
		return models.Password{}, fmt.Errorf("encrypting password failed: %w", err)
	}

	created, err := s.passwordRepository.CreatePassword(ctx, models.Password{
		UserID:            userID,
		Title:             in.Title,
		Username:          in.Username,
		EncryptedPassword: sealed,
		WebsiteURL:        in.WebsiteURL,
		Notes:             in.Notes,
	})
	if err != nil {
		log.Err(err).Msg("storing password failed")
		return models.Password{}, fmt.Errorf("storing password failed: %w", err)
	}

	s.notifications.Notify(ctx, notification(userID, models.NotificationPasswordCreated,
		fmt.Sprintf("New password saved for %s", created.Title), created.PasswordID))

	return created, nil
}

func (s *passwordService) List(ctx context.Context, userID int64, page models.Page) ([]models.Password, error) {
	passwords, err := s.passwordRepository.ListPasswords(ctx, userID, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing passwords failed")
		return nil, fmt.Errorf("listing passwords failed: %w", err)
	}
	return passwords, nil
}

func (s *passwordService) Get(ctx context.Context, userID, passwordID int64) (models.Password, error) {
	password, err := s.passwordRepository.GetPassword(ctx, userID, passwordID)
	if err != nil {
		return models.Password{}, fmt.Errorf("getting password failed: %w", err)
	}
	return password, nil
}

func (s *passwordService) Update(ctx context.Context, userID, passwordID int64, upd models.PasswordUpdate) (models.Password, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, upd); err != nil {
		log.Err(err).Msg("invalid password update provided")
		return models.Password{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	upd.EncryptedPassword = nil
	if upd.Password != nil {
		sealed, err := s.cipher.EncryptString(*upd.Password)
		if err != nil {
			log.Err(err).Msg("encrypting password failed")
			return models.Password{}, fmt.Errorf("encrypting password failed: %w", err)
		}
		upd.EncryptedPassword = &sealed
	}

	updated, err := s.passwordRepository.UpdatePassword(ctx, userID, passwordID, upd)
	if err != nil {
		log.Err(err).Int64("password_id", passwordID).Msg("updating password failed")
		return models.Password{}, fmt.Errorf("updating password failed: %w", err)
	}
	return updated, nil
}

func (s *passwordService) Delete(ctx context.Context, userID, passwordID int64) error {
	if err := s.passwordRepository.DeletePassword(ctx, userID, passwordID); err != nil {
		return fmt.Errorf("deleting password failed: %w", err)
	}
	return nil
}

// Reveal returns the plaintext password of an entry. A ciphertext that does
// not open under the current key surfaces as crypto.ErrDecryption.
func (s *passwordService) Reveal(ctx context.Context, userID, passwordID int64) (models.RevealedSecret, error) {
	password, err := s.Get(ctx, userID, passwordID)
	if err != nil {
		return models.RevealedSecret{}, err
	}

	plaintext, err := s.cipher.DecryptString(password.EncryptedPassword)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("password_id", passwordID).Msg("decrypting password failed")
		return models.RevealedSecret{}, err
	}

	logger.FromContext(ctx).Info().Int64("password_id", passwordID).Msg("password revealed")
	return models.RevealedSecret{ID: passwordID, Password: plaintext}, nil
}
