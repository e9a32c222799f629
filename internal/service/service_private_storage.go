package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-god/internal/crypto"
	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/internal/store"
	"github.com/MKhiriev/go-pass-god/internal/validators"
	"github.com/MKhiriev/go-pass-god/models"
)

// privateStorageService guards a second vault behind a PIN or an unlock
// pattern. PIN and pattern are kept as hash records; item payloads are
// sealed by the secret cipher.
type privateStorageService struct {
	repository store.PrivateStorageRepository
	hasher     crypto.Hasher
	cipher     crypto.Cipher
	validator  validators.Validator

	now    func() time.Time
	logger *logger.Logger
}

func NewPrivateStorageService(repository store.PrivateStorageRepository, hasher crypto.Hasher, cipher crypto.Cipher, validator validators.Validator, logger *logger.Logger) PrivateStorageService {
	return &privateStorageService{
		repository: repository,
		hasher:     hasher,
		cipher:     cipher,
		validator:  validator,
		now:        time.Now,
		logger:     logger,
	}
}

// Status reports an uninitialized storage as locked.
func (s *privateStorageService) Status(ctx context.Context, userID int64) (models.PrivateStorageStatus, error) {
	storage, err := s.repository.GetPrivateStorage(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return models.PrivateStorageStatus{IsInitialized: false, IsLocked: true}, nil
	}
	if err != nil {
		return models.PrivateStorageStatus{}, fmt.Errorf("getting private storage failed: %w", err)
	}
	return models.PrivateStorageStatus{IsInitialized: true, IsLocked: storage.IsLocked}, nil
}

// Setup initializes the storage in the locked state. Setting it up twice
// returns store.ErrAlreadyExists.
func (s *privateStorageService) Setup(ctx context.Context, userID int64, req models.LockRequest) (models.PrivateStorageStatus, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid private storage setup provided")
		return models.PrivateStorageStatus{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	storage := models.PrivateStorage{UserID: userID, IsLocked: true, LastAccessed: s.now().UTC()}

	if present(req.Pin) {
		record, err := s.hasher.Hash(*req.Pin)
		if err != nil {
			return models.PrivateStorageStatus{}, fmt.Errorf("hashing PIN failed: %w", err)
		}
		storage.PinHash = &record
	}
	if present(req.Pattern) {
		record, err := s.hasher.Hash(*req.Pattern)
		if err != nil {
			return models.PrivateStorageStatus{}, fmt.Errorf("hashing pattern failed: %w", err)
		}
		storage.PatternHash = &record
	}

	created, err := s.repository.CreatePrivateStorage(ctx, storage)
	if err != nil {
		log.Err(err).Msg("creating private storage failed")
		return models.PrivateStorageStatus{}, fmt.Errorf("creating private storage failed: %w", err)
	}

	log.Info().Int64("storage_id", created.StorageID).Msg("private storage set up")
	return models.PrivateStorageStatus{IsInitialized: true, IsLocked: created.IsLocked}, nil
}

// Unlock opens the storage with the pattern when one is both supplied and
// configured, otherwise with the PIN under the same condition.
func (s *privateStorageService) Unlock(ctx context.Context, userID int64, req models.LockRequest) error {
	log := logger.FromContext(ctx)

	storage, err := s.repository.GetPrivateStorage(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrStorageNotFound
	}
	if err != nil {
		return fmt.Errorf("getting private storage failed: %w", err)
	}

	switch {
	case present(req.Pattern) && storage.PatternHash != nil:
		if !s.hasher.Verify(*req.Pattern, *storage.PatternHash) {
			log.Info().Msg("private storage unlock with wrong pattern")
			return ErrInvalidPattern
		}
	case present(req.Pin) && storage.PinHash != nil:
		if !s.hasher.Verify(*req.Pin, *storage.PinHash) {
			log.Info().Msg("private storage unlock with wrong PIN")
			return ErrInvalidPIN
		}
	default:
		return ErrInvalidUnlockMethod
	}

	if err = s.repository.SetPrivateStorageLocked(ctx, userID, false, s.now().UTC()); err != nil {
		return fmt.Errorf("unlocking private storage failed: %w", err)
	}
	return nil
}

func (s *privateStorageService) Lock(ctx context.Context, userID int64) error {
	err := s.repository.SetPrivateStorageLocked(ctx, userID, true, s.now().UTC())
	if errors.Is(err, store.ErrNotFound) {
		return ErrStorageNotFound
	}
	if err != nil {
		return fmt.Errorf("locking private storage failed: %w", err)
	}
	return nil
}

func (s *privateStorageService) CreateItem(ctx context.Context, userID int64, in models.PrivateItemInput) (models.PrivateItem, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, in); err != nil {
		log.Err(err).Msg("invalid private item provided")
		return models.PrivateItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	storage, err := s.unlocked(ctx, userID)
	if err != nil {
		return models.PrivateItem{}, err
	}

	sealed, err := s.cipher.EncryptString(in.Data)
	if err != nil {
		log.Err(err).Msg("encrypting private item failed")
		return models.PrivateItem{}, fmt.Errorf("encrypting private item failed: %w", err)
	}

	created, err := s.repository.CreatePrivateItem(ctx, models.PrivateItem{
		StorageID:     storage.StorageID,
		ItemType:      in.ItemType,
		EncryptedData: sealed,
		Metadata:      in.Metadata,
	})
	if err != nil {
		log.Err(err).Msg("storing private item failed")
		return models.PrivateItem{}, fmt.Errorf("storing private item failed: %w", err)
	}

	created.Data = in.Data
	return created, nil
}

// ListItems returns the items with their payloads decrypted. Items that no
// longer open under the current key fail the whole call.
func (s *privateStorageService) ListItems(ctx context.Context, userID int64, itemType *string) ([]models.PrivateItem, error) {
	storage, err := s.unlocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.repository.ListPrivateItems(ctx, storage.StorageID, itemType)
	if err != nil {
		return nil, fmt.Errorf("listing private items failed: %w", err)
	}

	for i := range items {
		items[i].Data, err = s.cipher.DecryptString(items[i].EncryptedData)
		if err != nil {
			logger.FromContext(ctx).Err(err).Int64("item_id", items[i].ItemID).Msg("decrypting private item failed")
			return nil, err
		}
	}
	return items, nil
}

func (s *privateStorageService) DeleteItem(ctx context.Context, userID, itemID int64) error {
	storage, err := s.unlocked(ctx, userID)
	if err != nil {
		return err
	}

	if err = s.repository.DeletePrivateItem(ctx, storage.StorageID, itemID); err != nil {
		return fmt.Errorf("deleting private item failed: %w", err)
	}
	return nil
}

func (s *privateStorageService) unlocked(ctx context.Context, userID int64) (models.PrivateStorage, error) {
	storage, err := s.repository.GetPrivateStorage(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return models.PrivateStorage{}, ErrStorageLocked
	}
	if err != nil {
		return models.PrivateStorage{}, fmt.Errorf("getting private storage failed: %w", err)
	}
	if storage.IsLocked {
		return models.PrivateStorage{}, ErrStorageLocked
	}
	return storage, nil
}

func present(s *string) bool {
	return s != nil && *s != ""
}
