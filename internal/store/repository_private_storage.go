package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/models"
)

type privateStorageRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewPrivateStorageRepository(db *DB, logger *logger.Logger) PrivateStorageRepository {
	logger.Debug().Msg("creating private storage repository")
	return &privateStorageRepository{
		db:     db,
		logger: logger,
	}
}

func scanPrivateStorage(row rowScanner) (models.PrivateStorage, error) {
	var s models.PrivateStorage
	err := row.Scan(&s.StorageID, &s.UserID, &s.PatternHash, &s.PinHash, &s.IsLocked, &s.LastAccessed)
	return s, err
}

func scanPrivateItem(row rowScanner) (models.PrivateItem, error) {
	var (
		item models.PrivateItem
		raw  []byte
	)
	if err := row.Scan(&item.ItemID, &item.StorageID, &item.ItemType, &item.EncryptedData, &raw, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return models.PrivateItem{}, err
	}

	metadata, err := decodeJSONB(raw)
	if err != nil {
		return models.PrivateItem{}, err
	}
	item.Metadata = metadata

	return item, nil
}

// GetPrivateStorage returns the storage of userID or [ErrNotFound] when it
// was never set up.
func (r *privateStorageRepository) GetPrivateStorage(ctx context.Context, userID int64) (models.PrivateStorage, error) {
	log := logger.FromContext(ctx)

	var storage models.PrivateStorage
	err := r.db.withRetry(ctx, func() error {
		var scanErr error
		storage, scanErr = scanPrivateStorage(r.db.QueryRowContext(ctx, findPrivateStorage, userID))
		return scanErr
	})
	if err != nil {
		log.Err(err).Str("func", "*privateStorageRepository.GetPrivateStorage").Int64("user_id", userID).Msg("error getting private storage")
		return models.PrivateStorage{}, readError(err)
	}

	return storage, nil
}

// CreatePrivateStorage inserts the storage of a user. A second storage for
// the same user yields [ErrAlreadyExists].
func (r *privateStorageRepository) CreatePrivateStorage(ctx context.Context, storage models.PrivateStorage) (models.PrivateStorage, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createPrivateStorage, storage.UserID, storage.PatternHash, storage.PinHash, storage.IsLocked, storage.LastAccessed)
	created, err := scanPrivateStorage(row)
	if err != nil {
		log.Err(err).Str("func", "*privateStorageRepository.CreatePrivateStorage").Int64("user_id", storage.UserID).Msg("error creating private storage")
		return models.PrivateStorage{}, writeError(err)
	}

	return created, nil
}

func (r *privateStorageRepository) SetPrivateStorageLocked(ctx context.Context, userID int64, locked bool, at time.Time) error {
	log := logger.FromContext(ctx)

	if err := requireAffected(r.db.ExecContext(ctx, setPrivateStorageLocked, userID, locked, at)); err != nil {
		log.Err(err).Str("func", "*privateStorageRepository.SetPrivateStorageLocked").Int64("user_id", userID).Msg("error updating private storage lock")
		return err
	}

	return nil
}

func (r *privateStorageRepository) CreatePrivateItem(ctx context.Context, item models.PrivateItem) (models.PrivateItem, error) {
	log := logger.FromContext(ctx)

	metadata, err := encodeJSONB(item.Metadata)
	if err != nil {
		return models.PrivateItem{}, err
	}

	created, err := scanPrivateItem(r.db.QueryRowContext(ctx, createPrivateItem, item.StorageID, item.ItemType, item.EncryptedData, metadata))
	if err != nil {
		log.Err(err).Str("func", "*privateStorageRepository.CreatePrivateItem").Int64("storage_id", item.StorageID).Msg("error creating private item")
		return models.PrivateItem{}, writeError(err)
	}

	return created, nil
}

// ListPrivateItems returns the items of a storage, newest first, optionally
// restricted to one item type.
func (r *privateStorageRepository) ListPrivateItems(ctx context.Context, storageID int64, itemType *string) ([]models.PrivateItem, error) {
	log := logger.FromContext(ctx)

	b := psql.Select(privateItemColumns...).From("private_items").Where(sq.Eq{"storage_id": storageID})
	if itemType != nil {
		b = b.Where(sq.Eq{"item_type": *itemType})
	}

	query, args, err := b.OrderBy("created_at DESC", "item_id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	items, err := queryList(ctx, r.db, query, args, scanPrivateItem)
	if err != nil {
		log.Err(err).Str("func", "*privateStorageRepository.ListPrivateItems").Int64("storage_id", storageID).Msg("error listing private items")
		return nil, err
	}

	return items, nil
}

func (r *privateStorageRepository) DeletePrivateItem(ctx context.Context, storageID, itemID int64) error {
	log := logger.FromContext(ctx)

	if err := requireAffected(r.db.ExecContext(ctx, deletePrivateItem, itemID, storageID)); err != nil {
		log.Err(err).Str("func", "*privateStorageRepository.DeletePrivateItem").Int64("item_id", itemID).Msg("error deleting private item")
		return err
	}

	return nil
}
