package repository

import (
	"context"

	"lifeos/internal/model"
)

// Repository is the composed interface for the item domain data store.
type Repository interface {
	ItemRepository
	CompletionRepository
}

// ItemRepository defines all data access methods for the Item entity.
// Loaded items always carry their completions and children.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (model.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.Item, int, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
	DeleteItem(ctx context.Context, id uint) error

	ListOverdueCandidates(ctx context.Context, opt ListOverdueCandidatesOptions) ([]model.Item, error)
	MarkOverdue(ctx context.Context, ids []uint) error
}

// CompletionRepository persists completion state changes.
type CompletionRepository interface {
	SetCompleted(ctx context.Context, opt SetCompletedOptions) error
	CreateCompletion(ctx context.Context, itemID uint, date string) error
	DeleteCompletion(ctx context.Context, itemID uint, date string) error
	AdvanceItem(ctx context.Context, opt AdvanceItemOptions) error
}
