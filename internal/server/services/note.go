package services

import (
	"context"
	"database/sql"
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/notesgraph/internal/common"
	"github.com/dmitrijs2005/notesgraph/internal/dbx"
	"github.com/dmitrijs2005/notesgraph/internal/server/models"
	"github.com/dmitrijs2005/notesgraph/internal/server/repositories/repomanager"
)

type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNoteService(db *sql.DB, m repomanager.RepositoryManager) *NoteService {
	return &NoteService{
		db:          db,
		repomanager: m,
	}
}

func validateTitle(title string) error {
	if utf8.RuneCountInString(title) > common.MaxNoteTitleLength {
		return fmt.Errorf("%w: title longer than %d characters", common.ErrorValidation, common.MaxNoteTitleLength)
	}
	return nil
}

// Create stores a note owned by userID.
func (s *NoteService) Create(ctx context.Context, title, body string, userID int64) (*models.Note, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	note := &models.Note{Title: title, Body: body, UserID: userID}

	note, err := s.repomanager.Notes(s.db).Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}

	return note, nil
}

// Get returns the note with exactly the given id.
func (s *NoteService) Get(ctx context.Context, id int64) (*models.Note, error) {
	return s.repomanager.Notes(s.db).GetByID(ctx, id)
}

// Update applies the non-nil fields to an existing note and returns the result.
func (s *NoteService) Update(ctx context.Context, id int64, title, body *string) (*models.Note, error) {
	if title != nil {
		if err := validateTitle(*title); err != nil {
			return nil, err
		}
	}

	var note *models.Note

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Notes(tx)

		var err error
		note, err = repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if title != nil {
			note.Title = *title
		}
		if body != nil {
			note.Body = *body
		}

		return repo.Update(ctx, note)
	})

	if err != nil {
		return nil, fmt.Errorf("error updating note: %w", err)
	}

	return note, nil
}

// Delete removes a note and returns its last state.
func (s *NoteService) Delete(ctx context.Context, id int64) (*models.Note, error) {
	var note *models.Note

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Notes(tx)

		var err error
		note, err = repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		return repo.Delete(ctx, id)
	})

	if err != nil {
		return nil, fmt.Errorf("error deleting note: %w", err)
	}

	return note, nil
}

func (s *NoteService) List(ctx context.Context, limit, offset int) ([]*models.Note, error) {
	return s.repomanager.Notes(s.db).List(ctx, limit, offset)
}

func (s *NoteService) Count(ctx context.Context) (int, error) {
	return s.repomanager.Notes(s.db).Count(ctx)
}

func (s *NoteService) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*models.Note, error) {
	return s.repomanager.Notes(s.db).ListByUser(ctx, userID, limit, offset)
}

func (s *NoteService) CountByUser(ctx context.Context, userID int64) (int, error) {
	return s.repomanager.Notes(s.db).CountByUser(ctx, userID)
}
