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

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.Hasher
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher crypto.Hasher, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		logger:         logger,
	}
}

func (s *userService) Me(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return user, nil
}

// UpdateMe applies a profile patch. Changing the password requires the
// current one, which is verified against the stored record first.
func (s *userService) UpdateMe(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		req.Email = &email
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid profile update provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	update := models.UserUpdate{Email: req.Email, FullName: req.FullName}

	if req.NewPassword != nil {
		current, err := s.Me(ctx, userID)
		if err != nil {
			return models.User{}, err
		}
		if req.CurrentPassword == nil || !s.hasher.Verify(*req.CurrentPassword, current.PasswordHash) {
			log.Info().Int64("user_id", userID).Msg("password change with wrong current password")
			return models.User{}, ErrIncorrectPassword
		}

		record, err := s.hasher.Hash(*req.NewPassword)
		if err != nil {
			return models.User{}, fmt.Errorf("hashing password failed: %w", err)
		}
		update.PasswordHash = &record
	}

	updated, err := s.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return updated, nil
}

// DeleteMe removes the account together with everything it owns.
func (s *userService) DeleteMe(ctx context.Context, userID int64) error {
	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}
	logger.FromContext(ctx).Info().Int64("user_id", userID).Msg("user deleted")
	return nil
}
