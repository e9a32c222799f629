package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/models"
)

type notificationRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	logger.Debug().Msg("creating notification repository")
	return &notificationRepository{
		db:     db,
		logger: logger,
	}
}

func scanNotification(row rowScanner) (models.Notification, error) {
	var n models.Notification
	err := row.Scan(&n.NotificationID, &n.UserID, &n.Message, &n.Type, &n.EntityID, &n.IsRead, &n.CreatedAt)
	return n, err
}

func (r *notificationRepository) CreateNotification(ctx context.Context, notification models.Notification) (models.Notification, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createNotification, notification.UserID, notification.Message, notification.Type, notification.EntityID)
	created, err := scanNotification(row)
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.CreateNotification").Msg("error creating notification")
		return models.Notification{}, writeError(err)
	}

	return created, nil
}

func (r *notificationRepository) ListNotifications(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, error) {
	log := logger.FromContext(ctx)

	b := psql.Select(notificationColumns...).From("notifications").Where(sq.Eq{"user_id": filter.UserID})
	if filter.Read != nil {
		b = b.Where(sq.Eq{"is_read": *filter.Read})
	}

	query, args, err := pageOf(b, filter.Page, "notification_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	notifications, err := queryList(ctx, r.db, query, args, scanNotification)
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.ListNotifications").Int64("user_id", filter.UserID).Msg("error listing notifications")
		return nil, err
	}

	return notifications, nil
}

func (r *notificationRepository) MarkNotificationRead(ctx context.Context, userID, notificationID int64) error {
	log := logger.FromContext(ctx)

	if err := requireAffected(r.db.ExecContext(ctx, markNotificationRead, notificationID, userID)); err != nil {
		log.Err(err).Str("func", "*notificationRepository.MarkNotificationRead").Int64("notification_id", notificationID).Msg("error marking notification read")
		return err
	}

	return nil
}
