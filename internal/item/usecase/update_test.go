package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeos/internal/item"
	"lifeos/internal/model"
)

func TestUpdate_OverdueFlagIsSticky(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	task := mustCreate(t, uc, item.CreateItemInput{Title: "Report", DueDate: "2025-01-05"})
	_, err := uc.Update(ctx, testScope, item.UpdateItemInput{ID: task.ID, IsOverdue: ptr(true)})
	require.NoError(t, err)

	out, err := uc.Update(ctx, testScope, item.UpdateItemInput{ID: task.ID, DueDate: ptr("2025-01-20"), DueTime: ptr("09:00")})
	require.NoError(t, err)
	assert.True(t, out.Item.IsOverdue)
	assert.Equal(t, "2025-01-20", dateKey(out.Item.DueDate))
	assert.Equal(t, "09:00", out.Item.DueTime)

	out, err = uc.Update(ctx, testScope, item.UpdateItemInput{ID: task.ID, IsOverdue: ptr(false)})
	require.NoError(t, err)
	assert.False(t, out.Item.IsOverdue)
}

func TestUpdate_PartialFields(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	task := mustCreate(t, uc, item.CreateItemInput{Title: "Report", Description: "Q4", DueDate: "2025-01-05", Priority: "high"})

	out, err := uc.Update(ctx, testScope, item.UpdateItemInput{ID: task.ID, Title: ptr("Report v2"), DueDate: ptr(""), Duration: ptr("2h")})
	require.NoError(t, err)
	assert.Equal(t, "Report v2", out.Item.Title)
	assert.Equal(t, "Q4", out.Item.Description)
	assert.Equal(t, "high", out.Item.Priority)
	assert.Nil(t, out.Item.DueDate)
	assert.Equal(t, 120, out.Item.DurationMinutes)

	_, err = uc.Update(ctx, testScope, item.UpdateItemInput{ID: task.ID, State: ptr("done")})
	assert.ErrorIs(t, err, item.ErrInvalidState)
}

func TestUpdate_ReconcilesSubItems(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	parent := mustCreate(t, uc, item.CreateItemInput{
		Title:    "Trip",
		DueDate:  "2025-02-01",
		SubItems: []item.SubItemInput{{Title: "Book flight"}, {Title: "Book hotel"}},
	})
	keepID := parent.Children[0].ID

	out, err := uc.Update(ctx, testScope, item.UpdateItemInput{
		ID: parent.ID,
		SubItems: &[]item.SubItemInput{
			{ID: &keepID, Title: "Book flight (aisle)", DueDate: ptr("2025-01-20")},
			{Title: "Pack"},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Item.Children, 2)
	assert.Equal(t, keepID, out.Item.Children[0].ID)
	assert.Equal(t, "Book flight (aisle)", out.Item.Children[0].Title)
	assert.Equal(t, "2025-01-20", dateKey(out.Item.Children[0].DueDate))
	assert.Equal(t, "Pack", out.Item.Children[1].Title)
	assert.Equal(t, model.ItemStateActive, out.Item.Children[1].State)

	out, err = uc.Update(ctx, testScope, item.UpdateItemInput{ID: parent.ID, SubItems: &[]item.SubItemInput{}})
	require.NoError(t, err)
	assert.Empty(t, out.Item.Children)
	assert.False(t, out.Item.IsParent)
}

func TestUpdate_ForeignSubItemRejected(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	a := mustCreate(t, uc, item.CreateItemInput{Title: "A", SubItems: []item.SubItemInput{{Title: "a1"}}})
	b := mustCreate(t, uc, item.CreateItemInput{Title: "B"})
	foreign := a.Children[0].ID

	_, err := uc.Update(ctx, testScope, item.UpdateItemInput{ID: b.ID, SubItems: &[]item.SubItemInput{{ID: &foreign, Title: "stolen"}}})
	assert.ErrorIs(t, err, item.ErrSubItemNotFound)
}

func TestDeleteAndList(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	keep := mustCreate(t, uc, item.CreateItemInput{Title: "keep", ItemType: "habit"})
	drop := mustCreate(t, uc, item.CreateItemInput{Title: "drop", SubItems: []item.SubItemInput{{Title: "child"}}})

	require.NoError(t, uc.Delete(ctx, testScope, drop.ID))
	assert.ErrorIs(t, uc.Delete(ctx, testScope, drop.ID), item.ErrItemNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, model.Scope{UserID: 2}, keep.ID), item.ErrItemNotFound)

	list, err := uc.List(ctx, testScope, item.ListItemsInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Items, 1)
	assert.Equal(t, keep.ID, list.Items[0].ID)

	_, err = uc.List(ctx, testScope, item.ListItemsInput{ItemType: "event"})
	assert.ErrorIs(t, err, item.ErrInvalidItemType)
}

func TestUpdate_StateKeepsCompletionInStep(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	task := mustCreate(t, uc, item.CreateItemInput{Title: "Report", DueDate: "2025-01-20"})

	out, err := uc.Update(ctx, testScope, item.UpdateItemInput{ID: task.ID, State: ptr("completed")})
	require.NoError(t, err)
	assert.Equal(t, model.ItemStateCompleted, out.Item.State)
	assert.True(t, out.Item.IsCompleted)
	require.NotNil(t, out.Item.CompletedAt)

	out, err = uc.Update(ctx, testScope, item.UpdateItemInput{ID: task.ID, State: ptr("active")})
	require.NoError(t, err)
	assert.False(t, out.Item.IsCompleted)
	assert.Nil(t, out.Item.CompletedAt)
}

func TestUpdate_CompletedStateBlockedByOpenChildren(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	parent := mustCreate(t, uc, item.CreateItemInput{
		Title:    "Trip",
		DueDate:  "2025-02-01",
		SubItems: []item.SubItemInput{{Title: "Book flight"}, {Title: "Book hotel"}},
	})

	_, err := uc.Update(ctx, testScope, item.UpdateItemInput{ID: parent.ID, State: ptr("completed")})
	var blocked *item.IncompleteChildrenError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, 2, blocked.Count)

	got, err := uc.Detail(ctx, testScope, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ItemStateActive, got.Item.State)
	assert.False(t, got.Item.IsCompleted)

	out, err := uc.Update(ctx, testScope, item.UpdateItemInput{ID: parent.ID, State: ptr("completed"), SubItems: &[]item.SubItemInput{}})
	require.NoError(t, err)
	assert.True(t, out.Item.IsCompleted)
}
