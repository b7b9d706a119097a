package services

import (
	"context"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/notesgraph/internal/common"
	"github.com/dmitrijs2005/notesgraph/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoteService(t *testing.T, notes ...*models.Note) (*NoteService, *fakeNotesRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newSQLMockDB(t)
	repo := newFakeNotesRepo(notes...)
	return NewNoteService(db, &fakeRepoManager{n: repo}), repo, mock
}

func ptr(s string) *string { return &s }

func TestNoteCreate(t *testing.T) {
	s, repo, _ := newNoteService(t)

	n, err := s.Create(context.Background(), "title", "body", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n.ID)
	assert.Equal(t, &models.Note{ID: 1, Title: "title", Body: "body", UserID: 2}, repo.notes[1])
}

func TestNoteCreate_TitleTooLong(t *testing.T) {
	s, repo, _ := newNoteService(t)

	_, err := s.Create(context.Background(), strings.Repeat("x", common.MaxNoteTitleLength+1), "b", 1)
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.Empty(t, repo.notes)

	_, err = s.Create(context.Background(), strings.Repeat("ü", common.MaxNoteTitleLength), "b", 1)
	assert.NoError(t, err)
}

func TestNoteCreate_UnknownOwner(t *testing.T) {
	s, repo, _ := newNoteService(t)
	repo.createErr = common.ErrorConstraintViolation

	_, err := s.Create(context.Background(), "t", "b", 99)
	assert.ErrorIs(t, err, common.ErrorConstraintViolation)
}

func TestNoteGet_ExactMatch(t *testing.T) {
	s, _, _ := newNoteService(t,
		&models.Note{ID: 10, Title: "ten", UserID: 1},
		&models.Note{ID: 11, Title: "eleven", UserID: 1},
	)

	n, err := s.Get(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, "eleven", n.Title)

	_, err = s.Get(context.Background(), 1)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestNoteUpdate_PartialFields(t *testing.T) {
	tests := []struct {
		name      string
		title     *string
		body      *string
		wantTitle string
		wantBody  string
	}{
		{name: "title only", title: ptr("new"), wantTitle: "new", wantBody: "old body"},
		{name: "body only", body: ptr("new body"), wantTitle: "old", wantBody: "new body"},
		{name: "both", title: ptr("t"), body: ptr("b"), wantTitle: "t", wantBody: "b"},
		{name: "neither", wantTitle: "old", wantBody: "old body"},
		{name: "empty title", title: ptr(""), wantTitle: "", wantBody: "old body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo, mock := newNoteService(t, &models.Note{ID: 3, Title: "old", Body: "old body", UserID: 1})
			mock.ExpectBegin()
			mock.ExpectCommit()

			n, err := s.Update(context.Background(), 3, tt.title, tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, n.Title)
			assert.Equal(t, tt.wantBody, n.Body)
			assert.Equal(t, int64(1), n.UserID)
			assert.Equal(t, n, repo.notes[3])
		})
	}
}

func TestNoteUpdate_NotFound(t *testing.T) {
	s, repo, mock := newNoteService(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := s.Update(context.Background(), 5, ptr("x"), nil)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Empty(t, repo.updated)
}

func TestNoteUpdate_WriteError(t *testing.T) {
	s, repo, mock := newNoteService(t, &models.Note{ID: 3, Title: "old", UserID: 1})
	repo.updateErr = errBoom
	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := s.Update(context.Background(), 3, nil, ptr("b"))
	assert.ErrorIs(t, err, errBoom)
	assert.ErrorContains(t, err, "error updating note")
}

func TestNoteUpdate_TitleTooLong(t *testing.T) {
	s, _, _ := newNoteService(t, &models.Note{ID: 3, UserID: 1})

	_, err := s.Update(context.Background(), 3, ptr(strings.Repeat("x", 101)), nil)
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestNoteDelete(t *testing.T) {
	s, repo, mock := newNoteService(t, &models.Note{ID: 7, Title: "bye", Body: "b", UserID: 2})
	mock.ExpectBegin()
	mock.ExpectCommit()

	n, err := s.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, &models.Note{ID: 7, Title: "bye", Body: "b", UserID: 2}, n)
	assert.Equal(t, []int64{7}, repo.deleted)
	assert.NotContains(t, repo.notes, int64(7))
}

func TestNoteDelete_NotFound(t *testing.T) {
	s, repo, mock := newNoteService(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := s.Delete(context.Background(), 7)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Empty(t, repo.deleted)
}

func TestNoteDelete_BeginError(t *testing.T) {
	s, _, mock := newNoteService(t, &models.Note{ID: 7, UserID: 2})
	mock.ExpectBegin().WillReturnError(errBoom)

	_, err := s.Delete(context.Background(), 7)
	assert.ErrorIs(t, err, errBoom)
}

func TestNoteListing(t *testing.T) {
	s, _, _ := newNoteService(t,
		&models.Note{ID: 1, UserID: 1},
		&models.Note{ID: 2, UserID: 2},
		&models.Note{ID: 3, UserID: 1},
	)
	ctx := context.Background()

	total, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	all, err := s.List(ctx, 10, 1)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(2), all[0].ID)

	own, err := s.ListByUser(ctx, 1, 10, 0)
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, int64(3), own[1].ID)

	n, err := s.CountByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
