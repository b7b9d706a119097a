// Package users declares the repository contract for user accounts and its
// PostgreSQL implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/notesgraph/internal/server/models"
)

// Repository defines persistence operations for users.
type Repository interface {
	// Create inserts the user and fills in its generated ID. A taken
	// username yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByLogin returns common.ErrorNotFound when no user has that username.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)

	// GetByID returns common.ErrorNotFound when the id is unknown.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// List returns users ordered by id, starting at offset.
	List(ctx context.Context, limit, offset int) ([]*models.User, error)

	Count(ctx context.Context) (int, error)
}
