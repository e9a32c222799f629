package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/models"
)

type socialAccountRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSocialAccountRepository(db *DB, logger *logger.Logger) SocialAccountRepository {
	logger.Debug().Msg("creating social account repository")
	return &socialAccountRepository{
		db:     db,
		logger: logger,
	}
}

func scanSocialAccount(row rowScanner) (models.SocialAccount, error) {
	var (
		a   models.SocialAccount
		raw []byte
	)
	if err := row.Scan(&a.SocialAccountID, &a.UserID, &a.Platform, &a.Username, &a.EncryptedPassword, &raw, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return models.SocialAccount{}, err
	}

	data, err := decodeJSONB(raw)
	if err != nil {
		return models.SocialAccount{}, err
	}
	a.AdditionalData = data

	return a, nil
}

func (r *socialAccountRepository) CreateSocialAccount(ctx context.Context, account models.SocialAccount) (models.SocialAccount, error) {
	log := logger.FromContext(ctx)

	data, err := encodeJSONB(account.AdditionalData)
	if err != nil {
		return models.SocialAccount{}, err
	}

	query, args, err := psql.Insert("social_accounts").
		Columns("user_id", "platform", "username", "encrypted_password", "additional_data").
		Values(account.UserID, account.Platform, account.Username, account.EncryptedPassword, data).
		Suffix(returning(socialAccountColumns)).
		ToSql()
	if err != nil {
		return models.SocialAccount{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanSocialAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*socialAccountRepository.CreateSocialAccount").Msg("error creating social account")
		return models.SocialAccount{}, writeError(err)
	}

	return created, nil
}

func (r *socialAccountRepository) ListSocialAccounts(ctx context.Context, userID int64, page models.Page) ([]models.SocialAccount, error) {
	log := logger.FromContext(ctx)

	query, args, err := pageOf(psql.Select(socialAccountColumns...).From("social_accounts").Where(sq.Eq{"user_id": userID}), page, "social_account_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	accounts, err := queryList(ctx, r.db, query, args, scanSocialAccount)
	if err != nil {
		log.Err(err).Str("func", "*socialAccountRepository.ListSocialAccounts").Int64("user_id", userID).Msg("error listing social accounts")
		return nil, err
	}

	return accounts, nil
}

func (r *socialAccountRepository) GetSocialAccount(ctx context.Context, userID, accountID int64) (models.SocialAccount, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(socialAccountColumns...).From("social_accounts").
		Where(sq.Eq{"social_account_id": accountID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.SocialAccount{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var account models.SocialAccount
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		account, scanErr = scanSocialAccount(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		log.Err(err).Str("func", "*socialAccountRepository.GetSocialAccount").Int64("social_account_id", accountID).Msg("error getting social account")
		return models.SocialAccount{}, readError(err)
	}

	return account, nil
}

func (r *socialAccountRepository) UpdateSocialAccount(ctx context.Context, userID, accountID int64, update models.SocialAccountUpdate) (models.SocialAccount, error) {
	log := logger.FromContext(ctx)

	b := psql.Update("social_accounts").Set("updated_at", sq.Expr("NOW()"))
	changed := false
	if update.Platform != nil {
		b, changed = b.Set("platform", *update.Platform), true
	}
	if update.Username != nil {
		b, changed = b.Set("username", *update.Username), true
	}
	if update.EncryptedPassword != nil {
		b, changed = b.Set("encrypted_password", *update.EncryptedPassword), true
	}
	if update.AdditionalData != nil {
		data, err := encodeJSONB(*update.AdditionalData)
		if err != nil {
			return models.SocialAccount{}, err
		}
		b, changed = b.Set("additional_data", data), true
	}
	if !changed {
		return models.SocialAccount{}, ErrNothingToUpdate
	}

	query, args, err := b.
		Where(sq.Eq{"social_account_id": accountID}).
		Where(sq.Eq{"user_id": userID}).
		Suffix(returning(socialAccountColumns)).
		ToSql()
	if err != nil {
		return models.SocialAccount{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanSocialAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*socialAccountRepository.UpdateSocialAccount").Int64("social_account_id", accountID).Msg("error updating social account")
		return models.SocialAccount{}, writeError(err)
	}

	return updated, nil
}

func (r *socialAccountRepository) DeleteSocialAccount(ctx context.Context, userID, accountID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("social_accounts").
		Where(sq.Eq{"social_account_id": accountID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = requireAffected(r.db.ExecContext(ctx, query, args...)); err != nil {
		log.Err(err).Str("func", "*socialAccountRepository.DeleteSocialAccount").Int64("social_account_id", accountID).Msg("error deleting social account")
		return err
	}

	return nil
}
