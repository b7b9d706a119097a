package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/notesgraph/internal/common"
	"github.com/dmitrijs2005/notesgraph/internal/logging"
	"github.com/dmitrijs2005/notesgraph/internal/server/models"
	"github.com/dmitrijs2005/notesgraph/internal/server/services"
	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/require"
)

const (
	validToken   = "valid-access"
	expiredToken = "expired-access"
	refreshToken = "valid-refresh"
)

type fakeUsers struct {
	users       []*models.User
	registerErr error
	countErr    error
	lastEmail   string
}

func (f *fakeUsers) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	for _, u := range f.users {
		if u.UserName == username {
			return nil, fmt.Errorf("error creating user: %w", common.ErrorAlreadyExists)
		}
	}
	f.lastEmail = email
	u := &models.User{ID: int64(len(f.users) + 1), UserName: username, Email: email, Password: "hash:" + password}
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUsers) Authenticate(ctx context.Context, username, password string) (*services.TokenPair, error) {
	for _, u := range f.users {
		if u.UserName == username && u.Password == "hash:"+password {
			return &services.TokenPair{AccessToken: validToken, RefreshToken: refreshToken}, nil
		}
	}
	return nil, common.ErrorUnauthorized
}

func (f *fakeUsers) Authorize(token string) (string, error) {
	switch token {
	case validToken:
		return "alice", nil
	case expiredToken:
		return "", fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrTokenExpired)
	}
	return "", fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrInvalidToken)
}

func (f *fakeUsers) RefreshToken(token string) (string, error) {
	if token == refreshToken {
		return "new-access", nil
	}
	return "", fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrInvalidToken)
}

func (f *fakeUsers) GetByID(ctx context.Context, id int64) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsers) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	return page(f.users, limit, offset), nil
}

func (f *fakeUsers) Count(ctx context.Context) (int, error) {
	return len(f.users), f.countErr
}

type fakeNotes struct {
	notes   []*models.Note
	created []*models.Note
	getErr  error
}

func (f *fakeNotes) find(id int64) (int, *models.Note) {
	for i, n := range f.notes {
		if n.ID == id {
			return i, n
		}
	}
	return -1, nil
}

func (f *fakeNotes) Create(ctx context.Context, title, body string, userID int64) (*models.Note, error) {
	if len(title) > common.MaxNoteTitleLength {
		return nil, fmt.Errorf("%w: title longer than %d characters", common.ErrorValidation, common.MaxNoteTitleLength)
	}
	if userID > 100 {
		return nil, fmt.Errorf("error creating note: db error: %w", common.ErrorConstraintViolation)
	}
	n := &models.Note{ID: int64(len(f.notes) + 1), Title: title, Body: body, UserID: userID}
	f.notes = append(f.notes, n)
	f.created = append(f.created, n)
	return n, nil
}

func (f *fakeNotes) Get(ctx context.Context, id int64) (*models.Note, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if _, n := f.find(id); n != nil {
		return n, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeNotes) Update(ctx context.Context, id int64, title, body *string) (*models.Note, error) {
	_, n := f.find(id)
	if n == nil {
		return nil, fmt.Errorf("error updating note: %w", common.ErrorNotFound)
	}
	if title != nil {
		n.Title = *title
	}
	if body != nil {
		n.Body = *body
	}
	return n, nil
}

func (f *fakeNotes) Delete(ctx context.Context, id int64) (*models.Note, error) {
	i, n := f.find(id)
	if n == nil {
		return nil, fmt.Errorf("error deleting note: %w", common.ErrorNotFound)
	}
	f.notes = append(f.notes[:i], f.notes[i+1:]...)
	return n, nil
}

func (f *fakeNotes) List(ctx context.Context, limit, offset int) ([]*models.Note, error) {
	return page(f.notes, limit, offset), nil
}

func (f *fakeNotes) Count(ctx context.Context) (int, error) {
	return len(f.notes), nil
}

func (f *fakeNotes) byUser(userID int64) []*models.Note {
	var out []*models.Note
	for _, n := range f.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

func (f *fakeNotes) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*models.Note, error) {
	return page(f.byUser(userID), limit, offset), nil
}

func (f *fakeNotes) CountByUser(ctx context.Context, userID int64) (int, error) {
	return len(f.byUser(userID)), nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}

// fixture is a schema over seeded fakes: users alice(1) and bob(2),
// notes 1..3 owned by alice, bob, alice.
type fixture struct {
	schema graphql.Schema
	users  *fakeUsers
	notes  *fakeNotes
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users: &fakeUsers{users: []*models.User{
			{ID: 1, UserName: "alice", Email: "alice@example.com", Password: "hash:pw"},
			{ID: 2, UserName: "bob", Password: "hash:pw2"},
		}},
		notes: &fakeNotes{notes: []*models.Note{
			{ID: 1, Title: "first", Body: "one", UserID: 1},
			{ID: 2, Title: "second", Body: "two", UserID: 2},
			{ID: 3, Title: "third", Body: "three", UserID: 1},
		}},
	}

	schema, err := NewSchema(NewResolver(f.users, f.notes, logging.Nop{}))
	require.NoError(t, err)
	f.schema = schema
	return f
}

// do executes a request, optionally authenticated with token, and returns
// the data as JSON together with the raw result.
func (f *fixture) do(t *testing.T, token, query string, vars map[string]interface{}) (string, *graphql.Result) {
	t.Helper()
	ctx := context.Background()
	if token != "" {
		ctx = WithBearerToken(ctx, token)
	}
	res := graphql.Do(graphql.Params{
		Schema:         f.schema,
		RequestString:  query,
		VariableValues: vars,
		Context:        ctx,
	})
	data, err := json.Marshal(res.Data)
	require.NoError(t, err)
	return string(data), res
}

func errorCode(t *testing.T, res *graphql.Result) string {
	t.Helper()
	require.NotEmpty(t, res.Errors)
	code, _ := res.Errors[0].Extensions["code"].(string)
	return code
}
