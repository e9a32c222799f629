package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.Email, &u.FullName, &u.PasswordHash, &u.IsActive, &u.IsVerified, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// CreateUser persists a new account and returns it with server-assigned
// fields. A duplicate email yields [ErrAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	created, err := scanUser(r.db.QueryRowContext(ctx, createUser, user.Email, user.PasswordHash, user.FullName))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, writeError(err)
	}

	return created, nil
}

// FindUserByEmail returns the account registered under email or
// [ErrNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByID returns the account with the given id or [ErrNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) findOne(ctx context.Context, fn, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.withRetry(ctx, func() error {
		var scanErr error
		user, scanErr = scanUser(r.db.QueryRowContext(ctx, query, arg))
		return scanErr
	})
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error finding user")
		return models.User{}, readError(err)
	}

	return user, nil
}

// UpdateUser applies the non-nil fields of update and stamps updated_at.
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return models.User{}, ErrNothingToUpdate
	}

	b := psql.Update("users").Set("updated_at", sq.Expr("NOW()"))
	if update.Email != nil {
		b = b.Set("email", *update.Email)
	}
	if update.FullName != nil {
		b = b.Set("full_name", *update.FullName)
	}
	if update.PasswordHash != nil {
		b = b.Set("password_hash", *update.PasswordHash)
	}

	query, args, err := b.Where(sq.Eq{"user_id": userID}).Suffix(returning(userColumns)).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", userID).Msg("error updating user")
		return models.User{}, writeError(err)
	}

	return updated, nil
}

// DeleteUser removes the account; owned rows go with it via ON DELETE CASCADE.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := requireAffected(r.db.ExecContext(ctx, deleteUser, userID)); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("error deleting user")
		return err
	}

	return nil
}

// ListUsers returns one page of accounts, newest first.
func (r *userRepository) ListUsers(ctx context.Context, page models.Page) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := pageOf(psql.Select(userColumns...).From("users"), page, "user_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	users, err := queryList(ctx, r.db, query, args, scanUser)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, err
	}

	return users, nil
}
