package repository

import (
	"time"

	"lifeos/internal/model"
)

// CreateItemOptions inserts Item and its Children in one transaction.
type CreateItemOptions struct {
	Item     model.Item
	Children []model.Item
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
// All non-zero fields are applied as AND conditions.
type GetOneItemOptions struct {
	ID     uint
	UserID uint
}

// ListItemsOptions holds filter and pagination parameters for listing Items.
type ListItemsOptions struct {
	UserID       uint
	TopLevelOnly bool
	ItemType     string
	State        string
	Limit        int
	Offset       int
	OrderBy      string
}

// SubItemChanges reconciles children of an item.
type SubItemChanges struct {
	Create    []model.Item
	Update    []model.Item
	DeleteIDs []uint
}

// UpdateItemOptions saves every column of Item and applies SubItems when set.
type UpdateItemOptions struct {
	Item     model.Item
	SubItems *SubItemChanges
}

// ListOverdueCandidatesOptions selects active, dated, incomplete, unflagged
// items due before Before. UserID 0 means every user.
type ListOverdueCandidatesOptions struct {
	UserID uint
	Before time.Time
}

// SetCompletedOptions stores a one-shot completion transition.
type SetCompletedOptions struct {
	ID          uint
	IsCompleted bool
	CompletedAt *time.Time
	State       model.ItemState
}

// AdvanceItemOptions moves an advancing item to its next due date and logs
// a completion for CompletionDate.
type AdvanceItemOptions struct {
	ID             uint
	NextDueDate    time.Time
	CompletionDate string
}
