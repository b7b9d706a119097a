package notes

import (
	"context"

	"github.com/dmitrijs2005/notesgraph/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	GetByID(ctx context.Context, id int64) (*models.Note, error)
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*models.Note, error)
	Count(ctx context.Context) (int, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*models.Note, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
}
