package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/models"
)

type passwordRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewPasswordRepository(db *DB, logger *logger.Logger) PasswordRepository {
	logger.Debug().Msg("creating password repository")
	return &passwordRepository{
		db:     db,
		logger: logger,
	}
}

func scanPassword(row rowScanner) (models.Password, error) {
	var p models.Password
	err := row.Scan(&p.PasswordID, &p.UserID, &p.Title, &p.Username, &p.EncryptedPassword, &p.WebsiteURL, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *passwordRepository) CreatePassword(ctx context.Context, password models.Password) (models.Password, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("passwords").
		Columns("user_id", "title", "username", "encrypted_password", "website_url", "notes").
		Values(password.UserID, password.Title, password.Username, password.EncryptedPassword, password.WebsiteURL, password.Notes).
		Suffix(returning(passwordColumns)).
		ToSql()
	if err != nil {
		return models.Password{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanPassword(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*passwordRepository.CreatePassword").Msg("error creating password")
		return models.Password{}, writeError(err)
	}

	return created, nil
}

func (r *passwordRepository) ListPasswords(ctx context.Context, userID int64, page models.Page) ([]models.Password, error) {
	log := logger.FromContext(ctx)

	query, args, err := pageOf(psql.Select(passwordColumns...).From("passwords").Where(sq.Eq{"user_id": userID}), page, "password_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	passwords, err := queryList(ctx, r.db, query, args, scanPassword)
	if err != nil {
		log.Err(err).Str("func", "*passwordRepository.ListPasswords").Int64("user_id", userID).Msg("error listing passwords")
		return nil, err
	}

	return passwords, nil
}

func (r *passwordRepository) GetPassword(ctx context.Context, userID, passwordID int64) (models.Password, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(passwordColumns...).From("passwords").
		Where(sq.Eq{"password_id": passwordID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.Password{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var password models.Password
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		password, scanErr = scanPassword(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		log.Err(err).Str("func", "*passwordRepository.GetPassword").Int64("password_id", passwordID).Msg("error getting password")
		return models.Password{}, readError(err)
	}

	return password, nil
}

// UpdatePassword applies the non-nil fields of update. The plaintext
// Password field is ignored; callers pass ciphertext in EncryptedPassword.
func (r *passwordRepository) UpdatePassword(ctx context.Context, userID, passwordID int64, update models.PasswordUpdate) (models.Password, error) {
	log := logger.FromContext(ctx)

	b := psql.Update("passwords").Set("updated_at", sq.Expr("NOW()"))
	changed := false
	if update.Title != nil {
		b, changed = b.Set("title", *update.Title), true
	}
	if update.Username != nil {
		b, changed = b.Set("username", *update.Username), true
	}
	if update.EncryptedPassword != nil {
		b, changed = b.Set("encrypted_password", *update.EncryptedPassword), true
	}
	if update.WebsiteURL != nil {
		b, changed = b.Set("website_url", *update.WebsiteURL), true
	}
	if update.Notes != nil {
		b, changed = b.Set("notes", *update.Notes), true
	}
	if !changed {
		return models.Password{}, ErrNothingToUpdate
	}

	query, args, err := b.
		Where(sq.Eq{"password_id": passwordID}).
		Where(sq.Eq{"user_id": userID}).
		Suffix(returning(passwordColumns)).
		ToSql()
	if err != nil {
		return models.Password{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanPassword(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*passwordRepository.UpdatePassword").Int64("password_id", passwordID).Msg("error updating password")
		return models.Password{}, writeError(err)
	}

	return updated, nil
}

func (r *passwordRepository) DeletePassword(ctx context.Context, userID, passwordID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("passwords").
		Where(sq.Eq{"password_id": passwordID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = requireAffected(r.db.ExecContext(ctx, query, args...)); err != nil {
		log.Err(err).Str("func", "*passwordRepository.DeletePassword").Int64("password_id", passwordID).Msg("error deleting password")
		return err
	}

	return nil
}
