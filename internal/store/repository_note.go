package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/models"
)

type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

func scanNote(row rowScanner) (models.SecureNote, error) {
	var n models.SecureNote
	err := row.Scan(&n.NoteID, &n.UserID, &n.Title, &n.EncryptedContent, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}

func (r *noteRepository) CreateNote(ctx context.Context, note models.SecureNote) (models.SecureNote, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("secure_notes").
		Columns("user_id", "title", "encrypted_content").
		Values(note.UserID, note.Title, note.EncryptedContent).
		Suffix(returning(noteColumns)).
		ToSql()
	if err != nil {
		return models.SecureNote{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error creating note")
		return models.SecureNote{}, writeError(err)
	}

	return created, nil
}

func (r *noteRepository) ListNotes(ctx context.Context, userID int64, page models.Page) ([]models.SecureNote, error) {
	log := logger.FromContext(ctx)

	query, args, err := pageOf(psql.Select(noteColumns...).From("secure_notes").Where(sq.Eq{"user_id": userID}), page, "note_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	notes, err := queryList(ctx, r.db, query, args, scanNote)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Int64("user_id", userID).Msg("error listing notes")
		return nil, err
	}

	return notes, nil
}

func (r *noteRepository) GetNote(ctx context.Context, userID, noteID int64) (models.SecureNote, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(noteColumns...).From("secure_notes").
		Where(sq.Eq{"note_id": noteID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.SecureNote{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.SecureNote
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		note, scanErr = scanNote(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNote").Int64("note_id", noteID).Msg("error getting note")
		return models.SecureNote{}, readError(err)
	}

	return note, nil
}

func (r *noteRepository) UpdateNote(ctx context.Context, userID, noteID int64, title, encryptedContent *string) (models.SecureNote, error) {
	log := logger.FromContext(ctx)

	if title == nil && encryptedContent == nil {
		return models.SecureNote{}, ErrNothingToUpdate
	}

	b := psql.Update("secure_notes").Set("updated_at", sq.Expr("NOW()"))
	if title != nil {
		b = b.Set("title", *title)
	}
	if encryptedContent != nil {
		b = b.Set("encrypted_content", *encryptedContent)
	}

	query, args, err := b.
		Where(sq.Eq{"note_id": noteID}).
		Where(sq.Eq{"user_id": userID}).
		Suffix(returning(noteColumns)).
		ToSql()
	if err != nil {
		return models.SecureNote{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Int64("note_id", noteID).Msg("error updating note")
		return models.SecureNote{}, writeError(err)
	}

	return updated, nil
}

func (r *noteRepository) DeleteNote(ctx context.Context, userID, noteID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("secure_notes").
		Where(sq.Eq{"note_id": noteID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = requireAffected(r.db.ExecContext(ctx, query, args...)); err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Int64("note_id", noteID).Msg("error deleting note")
		return err
	}

	return nil
}
