package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-god/internal/exchange"
	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/internal/store"
	"github.com/MKhiriev/go-pass-god/internal/validators"
	"github.com/MKhiriev/go-pass-god/models"
)

// shareService hands out one-time links for client-encrypted payloads.
// The payload is opaque to the server and stored as received.
type shareService struct {
	exchange               *exchange.Exchange
	sharedSecretRepository store.SharedSecretRepository
	validator              validators.Validator
	notifications          NotificationService

	logger *logger.Logger
}

func NewShareService(exchange *exchange.Exchange, sharedSecretRepository store.SharedSecretRepository, validator validators.Validator, notifications NotificationService, logger *logger.Logger) ShareService {
	return &shareService{
		exchange:               exchange,
		sharedSecretRepository: sharedSecretRepository,
		validator:              validator,
		notifications:          notifications,
		logger:                 logger,
	}
}

func (s *shareService) Create(ctx context.Context, creatorID int64, req models.ShareCreateRequest) (models.ShareCreateResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid share request provided")
		return models.ShareCreateResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	ticket, err := s.exchange.Create(ctx, creatorID, req.EncryptedData, req.ExpiresInMinutes)
	if err != nil {
		log.Err(err).Msg("creating shared secret failed")
		return models.ShareCreateResponse{}, err
	}

	s.notifications.Notify(ctx, notification(creatorID, models.NotificationSecretShared,
		fmt.Sprintf("Secret shared, expires at %s", ticket.ExpiresAt.Format("2006-01-02 15:04 MST")), ticket.ID))

	log.Info().Int64("share_id", ticket.ID).Time("expires_at", ticket.ExpiresAt).Msg("secret shared")
	return models.ShareCreateResponse{Token: ticket.Token, ExpiresAt: ticket.ExpiresAt}, nil
}

// Consume returns the payload behind token exactly once. Unknown, used and
// expired tokens all yield exchange.ErrNotFound.
func (s *shareService) Consume(ctx context.Context, token string) (models.ShareConsumeResponse, error) {
	payload, err := s.exchange.Consume(ctx, token)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("consuming shared secret failed")
		return models.ShareConsumeResponse{}, err
	}
	return models.ShareConsumeResponse{Data: payload}, nil
}

func (s *shareService) List(ctx context.Context, creatorID int64, page models.Page) ([]models.SharedSecret, error) {
	secrets, err := s.sharedSecretRepository.ListSharedSecrets(ctx, creatorID, page)
	if err != nil {
		return nil, fmt.Errorf("listing shared secrets failed: %w", err)
	}
	return secrets, nil
}

func (s *shareService) Revoke(ctx context.Context, creatorID, secretID int64) error {
	if err := s.sharedSecretRepository.DeleteSharedSecret(ctx, creatorID, secretID); err != nil {
		return fmt.Errorf("revoking shared secret failed: %w", err)
	}
	logger.FromContext(ctx).Info().Int64("share_id", secretID).Msg("shared secret revoked")
	return nil
}
