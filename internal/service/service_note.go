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

type noteService struct {
	noteRepository store.NoteRepository
	cipher         crypto.Cipher
	validator      validators.Validator

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, cipher crypto.Cipher, validator validators.Validator, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		cipher:         cipher,
		validator:      validator,
		logger:         logger,
	}
}

func (s *noteService) Create(ctx context.Context, userID int64, in models.NoteInput) (models.SecureNote, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, in); err != nil {
		log.Err(err).Msg("invalid note provided")
		return models.SecureNote{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	sealed, err := s.cipher.EncryptString(in.Content)
	if err != nil {
		log.Err(err).Msg("encrypting note failed")
		return models.SecureNote{}, fmt.Errorf("encrypting note failed: %w", err)
	}

	created, err := s.noteRepository.CreateNote(ctx, models.SecureNote{
		UserID:           userID,
		Title:            in.Title,
		EncryptedContent: sealed,
	})
	if err != nil {
		log.Err(err).Msg("storing note failed")
		return models.SecureNote{}, fmt.Errorf("storing note failed: %w", err)
	}
	return created, nil
}

func (s *noteService) List(ctx context.Context, userID int64, page models.Page) ([]models.SecureNote, error) {
	notes, err := s.noteRepository.ListNotes(ctx, userID, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing notes failed")
		return nil, fmt.Errorf("listing notes failed: %w", err)
	}
	return notes, nil
}

// Get returns the note with its content decrypted.
func (s *noteService) Get(ctx context.Context, userID, noteID int64) (models.SecureNote, error) {
	note, err := s.noteRepository.GetNote(ctx, userID, noteID)
	if err != nil {
		return models.SecureNote{}, fmt.Errorf("getting note failed: %w", err)
	}

	note.Content, err = s.cipher.DecryptString(note.EncryptedContent)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("note_id", noteID).Msg("decrypting note failed")
		return models.SecureNote{}, err
	}
	return note, nil
}

func (s *noteService) Update(ctx context.Context, userID, noteID int64, upd models.NoteUpdate) (models.SecureNote, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, upd); err != nil {
		log.Err(err).Msg("invalid note update provided")
		return models.SecureNote{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	var sealed *string
	if upd.Content != nil {
		token, err := s.cipher.EncryptString(*upd.Content)
		if err != nil {
			log.Err(err).Msg("encrypting note failed")
			return models.SecureNote{}, fmt.Errorf("encrypting note failed: %w", err)
		}
		sealed = &token
	}

	updated, err := s.noteRepository.UpdateNote(ctx, userID, noteID, upd.Title, sealed)
	if err != nil {
		log.Err(err).Int64("note_id", noteID).Msg("updating note failed")
		return models.SecureNote{}, fmt.Errorf("updating note failed: %w", err)
	}
	return updated, nil
}

func (s *noteService) Delete(ctx context.Context, userID, noteID int64) error {
	if err := s.noteRepository.DeleteNote(ctx, userID, noteID); err != nil {
		return fmt.Errorf("deleting note failed: %w", err)
	}
	return nil
}
