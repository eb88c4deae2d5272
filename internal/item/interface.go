package item

import (
	"context"

	"lifeos/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateItemInput) (CreateItemOutput, error)
	List(ctx context.Context, sc model.Scope, input ListItemsInput) (ListItemsOutput, error)
	Detail(ctx context.Context, sc model.Scope, id uint) (DetailItemOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateItemInput) (UpdateItemOutput, error)
	Delete(ctx context.Context, sc model.Scope, id uint) error

	// Toggle flips the completion of an item for a calendar date using the
	// completion policy that matches the item's recurrence.
	Toggle(ctx context.Context, sc model.Scope, input ToggleInput) (ToggleOutput, error)
}
