package usecase

import (
	"context"

	"lifeos/internal/item"
	repo "lifeos/internal/item/repository"
	"lifeos/internal/model"
)

// List returns a page of the caller's top-level items, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input item.ListItemsInput) (item.ListItemsOutput, error) {
	if input.ItemType != "" {
		if _, err := parseItemType(input.ItemType); err != nil {
			return item.ListItemsOutput{}, err
		}
	}
	if input.State != "" {
		if _, err := parseState(input.State); err != nil {
			return item.ListItemsOutput{}, err
		}
	}

	items, total, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		UserID:       sc.UserID,
		TopLevelOnly: true,
		ItemType:     input.ItemType,
		State:        input.State,
		Limit:        input.Limit,
		Offset:       input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}

	return item.ListItemsOutput{
		Items:  items,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
