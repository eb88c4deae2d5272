package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "lifeos/internal/item/repository"
	"lifeos/internal/model"
	"lifeos/pkg/database"
	"lifeos/pkg/log"
)

func newTestRepo(t *testing.T) repo.Repository {
	t.Helper()
	db := database.OpenTest(t, model.All()...)
	return New(db, log.NewNop())
}

func date(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return &d
}

func TestCreateItem_WithChildren(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateItem(ctx, repo.CreateItemOptions{
		Item: model.Item{UserID: 1, Title: "Launch", ItemType: model.ItemTypeTask, State: model.ItemStateActive, DueDate: date(t, "2025-01-10")},
		Children: []model.Item{
			{Title: "Draft", ItemType: model.ItemTypeTask, State: model.ItemStateActive},
			{Title: "Review", ItemType: model.ItemTypeTask, State: model.ItemStateActive},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.True(t, created.IsParent)
	require.Len(t, created.Children, 2)
	assert.Equal(t, "Draft", created.Children[0].Title)
	assert.Equal(t, uint(1), created.Children[0].UserID)
	assert.Equal(t, created.ID, *created.Children[0].ParentItemID)
}

func TestGetOneItem_NotFoundReturnsZero(t *testing.T) {
	r := newTestRepo(t)

	got, err := r.GetOneItem(context.Background(), repo.GetOneItemOptions{ID: 42, UserID: 1})
	require.NoError(t, err)
	assert.Zero(t, got.ID)
}

func TestGetOneItem_ScopedByUser(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateItem(ctx, repo.CreateItemOptions{Item: model.Item{UserID: 1, Title: "Mine"}})
	require.NoError(t, err)

	other, err := r.GetOneItem(ctx, repo.GetOneItemOptions{ID: created.ID, UserID: 2})
	require.NoError(t, err)
	assert.Zero(t, other.ID)

	mine, err := r.GetOneItem(ctx, repo.GetOneItemOptions{ID: created.ID, UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Mine", mine.Title)
}

func TestListItems_TopLevelFiltersAndTotal(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.CreateItem(ctx, repo.CreateItemOptions{
		Item:     model.Item{UserID: 1, Title: "Parent", ItemType: model.ItemTypeTask},
		Children: []model.Item{{Title: "Child", ItemType: model.ItemTypeTask}},
	})
	require.NoError(t, err)
	_, err = r.CreateItem(ctx, repo.CreateItemOptions{Item: model.Item{UserID: 1, Title: "Run", ItemType: model.ItemTypeHabit}})
	require.NoError(t, err)
	_, err = r.CreateItem(ctx, repo.CreateItemOptions{Item: model.Item{UserID: 2, Title: "Other", ItemType: model.ItemTypeTask}})
	require.NoError(t, err)

	items, total, err := r.ListItems(ctx, repo.ListItemsOptions{UserID: 1, TopLevelOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, "Run", items[0].Title, "newest first")

	habits, total, err := r.ListItems(ctx, repo.ListItemsOptions{UserID: 1, ItemType: string(model.ItemTypeHabit)})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, habits, 1)
}

func TestUpdateItem_ReconcilesChildren(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateItem(ctx, repo.CreateItemOptions{
		Item: model.Item{UserID: 1, Title: "Parent"},
		Children: []model.Item{
			{Title: "keep"},
			{Title: "drop"},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Children, 2)

	keep := created.Children[0]
	keep.Title = "kept"
	parent := created
	parent.Title = "Parent v2"

	updated, err := r.UpdateItem(ctx, repo.UpdateItemOptions{
		Item: parent,
		SubItems: &repo.SubItemChanges{
			Update:    []model.Item{keep},
			Create:    []model.Item{{Title: "new"}},
			DeleteIDs: []uint{created.Children[1].ID},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Parent v2", updated.Title)
	require.Len(t, updated.Children, 2)
	assert.Equal(t, "kept", updated.Children[0].Title)
	assert.Equal(t, "new", updated.Children[1].Title)
	assert.True(t, updated.IsParent)

	cleared, err := r.UpdateItem(ctx, repo.UpdateItemOptions{
		Item:     updated,
		SubItems: &repo.SubItemChanges{DeleteIDs: []uint{updated.Children[0].ID, updated.Children[1].ID}},
	})
	require.NoError(t, err)
	assert.Empty(t, cleared.Children)
	assert.False(t, cleared.IsParent)
}

func TestDeleteItem_RemovesChildrenAndCompletions(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateItem(ctx, repo.CreateItemOptions{
		Item:     model.Item{UserID: 1, Title: "Parent"},
		Children: []model.Item{{Title: "child"}},
	})
	require.NoError(t, err)
	require.NoError(t, r.CreateCompletion(ctx, created.ID, "2025-01-10"))
	require.NoError(t, r.CreateCompletion(ctx, created.Children[0].ID, "2025-01-10"))

	require.NoError(t, r.DeleteItem(ctx, created.ID))

	gone, err := r.GetOneItem(ctx, repo.GetOneItemOptions{ID: created.ID})
	require.NoError(t, err)
	assert.Zero(t, gone.ID)

	child, err := r.GetOneItem(ctx, repo.GetOneItemOptions{ID: created.Children[0].ID})
	require.NoError(t, err)
	assert.Zero(t, child.ID)
}

func TestOverdueCandidatesAndMarkOverdue(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	past, err := r.CreateItem(ctx, repo.CreateItemOptions{Item: model.Item{UserID: 1, Title: "past", State: model.ItemStateActive, DueDate: date(t, "2025-01-05")}})
	require.NoError(t, err)
	_, err = r.CreateItem(ctx, repo.CreateItemOptions{Item: model.Item{UserID: 1, Title: "future", State: model.ItemStateActive, DueDate: date(t, "2025-01-20")}})
	require.NoError(t, err)
	_, err = r.CreateItem(ctx, repo.CreateItemOptions{Item: model.Item{UserID: 1, Title: "backlog", State: model.ItemStateBacklog, DueDate: date(t, "2025-01-05")}})
	require.NoError(t, err)
	_, err = r.CreateItem(ctx, repo.CreateItemOptions{Item: model.Item{UserID: 1, Title: "done", State: model.ItemStateActive, IsCompleted: true, DueDate: date(t, "2025-01-05")}})
	require.NoError(t, err)

	candidates, err := r.ListOverdueCandidates(ctx, repo.ListOverdueCandidatesOptions{UserID: 1, Before: *date(t, "2025-01-10")})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, past.ID, candidates[0].ID)

	require.NoError(t, r.MarkOverdue(ctx, []uint{past.ID}))
	require.NoError(t, r.MarkOverdue(ctx, nil))

	again, err := r.ListOverdueCandidates(ctx, repo.ListOverdueCandidatesOptions{Before: *date(t, "2025-01-10")})
	require.NoError(t, err)
	assert.Empty(t, again)

	flagged, err := r.GetOneItem(ctx, repo.GetOneItemOptions{ID: past.ID})
	require.NoError(t, err)
	assert.True(t, flagged.IsOverdue)
}
