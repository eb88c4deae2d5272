package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeos/internal/model"
	repo "lifeos/internal/note/repository"
	"lifeos/pkg/database"
	"lifeos/pkg/log"
)

func newTestRepo(t *testing.T) repo.Repository {
	t.Helper()
	return New(database.OpenTest(t, model.All()...), log.NewNop())
}

func TestNoteCRUD(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateNote(ctx, model.Note{UserID: 1, Title: "Groceries", Content: "milk"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := r.GetOneNote(ctx, repo.GetOneNoteOptions{ID: created.ID, UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got.Title)

	other, err := r.GetOneNote(ctx, repo.GetOneNoteOptions{ID: created.ID, UserID: 2})
	require.NoError(t, err)
	assert.Zero(t, other.ID)

	got.Content = "milk, eggs"
	updated, err := r.UpdateNote(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, "milk, eggs", updated.Content)

	require.NoError(t, r.DeleteNote(ctx, created.ID))
	gone, err := r.GetOneNote(ctx, repo.GetOneNoteOptions{ID: created.ID})
	require.NoError(t, err)
	assert.Zero(t, gone.ID)
}

func TestListNotes_PinnedFirstAndQuery(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.CreateNote(ctx, model.Note{UserID: 1, Title: "Books", Content: "Dune"})
	require.NoError(t, err)
	pinned, err := r.CreateNote(ctx, model.Note{UserID: 1, Title: "Ideas", Pinned: true})
	require.NoError(t, err)
	_, err = r.CreateNote(ctx, model.Note{UserID: 2, Title: "Other user"})
	require.NoError(t, err)

	notes, total, err := r.ListNotes(ctx, repo.ListNotesOptions{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, notes, 2)
	assert.Equal(t, pinned.ID, notes[0].ID)

	notes, total, err = r.ListNotes(ctx, repo.ListNotesOptions{UserID: 1, Query: "dune"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, notes, 1)
	assert.Equal(t, "Books", notes[0].Title)
}
