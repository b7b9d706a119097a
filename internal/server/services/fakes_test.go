package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/notesgraph/internal/common"
	"github.com/dmitrijs2005/notesgraph/internal/dbx"
	"github.com/dmitrijs2005/notesgraph/internal/server/models"
	notesrepo "github.com/dmitrijs2005/notesgraph/internal/server/repositories/notes"
	usersrepo "github.com/dmitrijs2005/notesgraph/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

// fakeUsersRepo keeps users in memory, keyed by id.
type fakeUsersRepo struct {
	users     map[int64]*models.User
	nextID    int64
	createErr error
	getErr    error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, existing := range f.users {
		if existing.UserName == u.UserName {
			return nil, common.ErrorAlreadyExists
		}
	}
	u.ID = f.nextID
	f.nextID++
	cp := *u
	f.users[u.ID] = &cp
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if u.UserName == login {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsersRepo) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	var out []*models.User
	for id := int64(1); id < f.nextID; id++ {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return page(out, limit, offset), nil
}

func (f *fakeUsersRepo) Count(ctx context.Context) (int, error) {
	return len(f.users), nil
}

// fakeNotesRepo keeps notes in memory and records writes.
type fakeNotesRepo struct {
	notes     map[int64]*models.Note
	nextID    int64
	createErr error
	updateErr error
	deleteErr error
	updated   []*models.Note
	deleted   []int64
}

func newFakeNotesRepo(notes ...*models.Note) *fakeNotesRepo {
	f := &fakeNotesRepo{notes: map[int64]*models.Note{}, nextID: 1}
	for _, n := range notes {
		f.notes[n.ID] = n
		if n.ID >= f.nextID {
			f.nextID = n.ID + 1
		}
	}
	return f
}

func (f *fakeNotesRepo) Create(ctx context.Context, n *models.Note) (*models.Note, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	n.ID = f.nextID
	f.nextID++
	cp := *n
	f.notes[n.ID] = &cp
	return n, nil
}

func (f *fakeNotesRepo) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	n, ok := f.notes[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *n
	return &cp, nil
}

func (f *fakeNotesRepo) Update(ctx context.Context, n *models.Note) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	cp := *n
	f.notes[n.ID] = &cp
	f.updated = append(f.updated, &cp)
	return nil
}

func (f *fakeNotesRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.notes, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeNotesRepo) sorted() []*models.Note {
	var out []*models.Note
	for id := int64(1); id < f.nextID; id++ {
		if n, ok := f.notes[id]; ok {
			out = append(out, n)
		}
	}
	return out
}

func (f *fakeNotesRepo) List(ctx context.Context, limit, offset int) ([]*models.Note, error) {
	return page(f.sorted(), limit, offset), nil
}

func (f *fakeNotesRepo) Count(ctx context.Context) (int, error) {
	return len(f.notes), nil
}

func (f *fakeNotesRepo) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*models.Note, error) {
	var out []*models.Note
	for _, n := range f.sorted() {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return page(out, limit, offset), nil
}

func (f *fakeNotesRepo) CountByUser(ctx context.Context, userID int64) (int, error) {
	n, _ := f.ListByUser(ctx, userID, len(f.notes), 0)
	return len(n), nil
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

type fakeRepoManager struct {
	u *fakeUsersRepo
	n *fakeNotesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Notes(db dbx.DBTX) notesrepo.Repository       { return m.n }
