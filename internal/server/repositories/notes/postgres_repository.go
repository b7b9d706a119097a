// Package notes provides the PostgreSQL-backed note repository.
package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notesgraph/internal/common"
	"github.com/dmitrijs2005/notesgraph/internal/dbx"
	"github.com/dmitrijs2005/notesgraph/internal/server/models"
)

// PostgresRepository implements note storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectColumns = `SELECT id, COALESCE(title, ''), COALESCE(body, ''), user_id FROM notes`

// Create inserts the note and fills in its generated ID.
// An unknown owner surfaces as common.ErrorConstraintViolation.
func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	query :=
		`INSERT INTO notes (title, body, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, note.Title, note.Body, note.UserID).Scan(&note.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", dbx.TranslateError(err))
	}

	return note, nil
}

// GetByID returns the note with exactly the given id or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	note := &models.Note{}
	err := r.db.QueryRowContext(ctx, selectColumns+` WHERE id = $1`, id).
		Scan(&note.ID, &note.Title, &note.Body, &note.UserID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

// Update overwrites title and body of an existing note.
func (r *PostgresRepository) Update(ctx context.Context, note *models.Note) error {
	query := `UPDATE notes SET title = $1, body = $2 WHERE id = $3`

	res, err := r.db.ExecContext(ctx, query, note.Title, note.Body, note.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", dbx.TranslateError(err))
	}
	return expectOneRow(res)
}

// Delete removes the note with the given id.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// List returns a page of notes ordered by id.
func (r *PostgresRepository) List(ctx context.Context, limit, offset int) ([]*models.Note, error) {
	return r.query(ctx, selectColumns+` ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
}

// ListByUser returns a page of the notes owned by userID ordered by id.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*models.Note, error) {
	return r.query(ctx, selectColumns+` WHERE user_id = $1 ORDER BY id LIMIT $2 OFFSET $3`, userID, limit, offset)
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]*models.Note, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}
	defer rows.Close()

	var result []*models.Note
	for rows.Next() {
		var item models.Note
		if err := rows.Scan(&item.ID, &item.Title, &item.Body, &item.UserID); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
