package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/internal/store"
	"github.com/MKhiriev/go-pass-god/models"
)

type notificationService struct {
	notificationRepository store.NotificationRepository

	logger *logger.Logger
}

func NewNotificationService(notificationRepository store.NotificationRepository, logger *logger.Logger) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		logger:                 logger,
	}
}

func (s *notificationService) Notify(ctx context.Context, notification models.Notification) {
	if _, err := s.notificationRepository.CreateNotification(ctx, notification); err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", notification.UserID).
			Str("type", notification.Type).
			Msg("storing notification failed")
	}
}

func (s *notificationService) List(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, error) {
	notifications, err := s.notificationRepository.ListNotifications(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", filter.UserID).Msg("listing notifications failed")
		return nil, fmt.Errorf("listing notifications failed: %w", err)
	}
	return notifications, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID int64) error {
	if err := s.notificationRepository.MarkNotificationRead(ctx, userID, notificationID); err != nil {
		return fmt.Errorf("marking notification read failed: %w", err)
	}
	return nil
}

func notification(userID int64, kind, message string, entityID int64) models.Notification {
	return models.Notification{
		UserID:   userID,
		Type:     kind,
		Message:  message,
		EntityID: &entityID,
	}
}
