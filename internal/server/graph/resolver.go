// Package graph defines the GraphQL schema of the notes server and the
// resolvers that back its queries and mutations.
package graph

import (
	"context"

	"github.com/dmitrijs2005/notesgraph/internal/logging"
	"github.com/dmitrijs2005/notesgraph/internal/server/models"
	"github.com/dmitrijs2005/notesgraph/internal/server/services"
)

type UserService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*services.TokenPair, error)
	Authorize(token string) (string, error)
	RefreshToken(refreshToken string) (string, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context, limit, offset int) ([]*models.User, error)
	Count(ctx context.Context) (int, error)
}

type NoteService interface {
	Create(ctx context.Context, title, body string, userID int64) (*models.Note, error)
	Get(ctx context.Context, id int64) (*models.Note, error)
	Update(ctx context.Context, id int64, title, body *string) (*models.Note, error)
	Delete(ctx context.Context, id int64) (*models.Note, error)
	List(ctx context.Context, limit, offset int) ([]*models.Note, error)
	Count(ctx context.Context) (int, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*models.Note, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
}

// Resolver holds the dependencies shared by all field resolvers.
type Resolver struct {
	users UserService
	notes NoteService
	log   logging.Logger
}

func NewResolver(us UserService, ns NoteService, l logging.Logger) *Resolver {
	return &Resolver{
		users: us,
		notes: ns,
		log:   l.With("module", "graph"),
	}
}

// authInfo is the failure variant of ProtectedNote.
type authInfo struct {
	Message string
}

// authorize checks the bearer token carried by the request.
func (r *Resolver) authorize(ctx context.Context) (string, error) {
	return r.users.Authorize(BearerTokenFromContext(ctx))
}

// connection resolves one page of a list given its total size and a page fetcher.
func (r *Resolver) connection(ctx context.Context, args map[string]interface{},
	count func(ctx context.Context) (int, error),
	fetch func(ctx context.Context, limit, offset int) ([]interface{}, error),
) (interface{}, error) {
	a, err := parseConnectionArgs(args)
	if err != nil {
		return nil, err
	}

	total, err := count(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	w := a.window(total)

	var nodes []interface{}
	if w.end > w.start {
		nodes, err = fetch(ctx, w.end-w.start, w.start)
		if err != nil {
			return nil, r.fail(ctx, err)
		}
	}

	return newConnection(nodes, w, total), nil
}

func usersToNodes(users []*models.User) []interface{} {
	out := make([]interface{}, len(users))
	for i, u := range users {
		out[i] = u
	}
	return out
}

func notesToNodes(notes []*models.Note) []interface{} {
	out := make([]interface{}, len(notes))
	for i, n := range notes {
		out[i] = n
	}
	return out
}
