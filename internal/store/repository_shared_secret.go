package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/models"
)

type sharedSecretRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSharedSecretRepository(db *DB, logger *logger.Logger) SharedSecretRepository {
	logger.Debug().Msg("creating shared secret repository")
	return &sharedSecretRepository{
		db:     db,
		logger: logger,
	}
}

func scanSharedSecret(row rowScanner) (models.SharedSecret, error) {
	var s models.SharedSecret
	err := row.Scan(&s.SharedSecretID, &s.ExpiresAt, &s.Used, &s.UsedAt, &s.CreatedBy, &s.CreatedAt)
	return s, err
}

func (r *sharedSecretRepository) CreateSharedSecret(ctx context.Context, secret models.SharedSecret) (models.SharedSecret, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSharedSecret, secret.TokenHash, secret.EncryptedData, secret.ExpiresAt, secret.CreatedBy)
	created, err := scanSharedSecret(row)
	if err != nil {
		log.Err(err).Str("func", "*sharedSecretRepository.CreateSharedSecret").Msg("error creating shared secret")
		return models.SharedSecret{}, writeError(err)
	}
	created.TokenHash = secret.TokenHash

	return created, nil
}

// ConsumeSharedSecret is a single conditional UPDATE; it is never retried,
// since a retry after a lost reply could observe its own write.
func (r *sharedSecretRepository) ConsumeSharedSecret(ctx context.Context, tokenHash string, now time.Time) (string, bool, error) {
	log := logger.FromContext(ctx)

	var payload string
	err := r.db.QueryRowContext(ctx, consumeSharedSecret, tokenHash, now).Scan(&payload)
	switch {
	case err == nil:
		return payload, true, nil
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	default:
		log.Err(err).Str("func", "*sharedSecretRepository.ConsumeSharedSecret").Msg("error consuming shared secret")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// ListSharedSecrets returns metadata of the secrets created by creatorID.
// Payloads are never selected.
func (r *sharedSecretRepository) ListSharedSecrets(ctx context.Context, creatorID int64, page models.Page) ([]models.SharedSecret, error) {
	log := logger.FromContext(ctx)

	query, args, err := pageOf(psql.Select(sharedSecretColumns...).From("shared_secrets").Where(sq.Eq{"created_by": creatorID}), page, "shared_secret_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	secrets, err := queryList(ctx, r.db, query, args, scanSharedSecret)
	if err != nil {
		log.Err(err).Str("func", "*sharedSecretRepository.ListSharedSecrets").Int64("user_id", creatorID).Msg("error listing shared secrets")
		return nil, err
	}

	return secrets, nil
}

func (r *sharedSecretRepository) DeleteSharedSecret(ctx context.Context, creatorID, secretID int64) error {
	log := logger.FromContext(ctx)

	if err := requireAffected(r.db.ExecContext(ctx, deleteSharedSecret, secretID, creatorID)); err != nil {
		log.Err(err).Str("func", "*sharedSecretRepository.DeleteSharedSecret").Int64("shared_secret_id", secretID).Msg("error deleting shared secret")
		return err
	}

	return nil
}

func (r *sharedSecretRepository) DeleteExpiredSharedSecrets(ctx context.Context, now, consumedBefore time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteExpiredSharedSecrets, now, consumedBefore)
	if err != nil {
		log.Err(err).Str("func", "*sharedSecretRepository.DeleteExpiredSharedSecrets").Msg("error purging shared secrets")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return n, nil
}
