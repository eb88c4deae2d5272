package usecase

import (
	"context"
	"strings"

	"lifeos/internal/list"
	repo "lifeos/internal/list/repository"
	"lifeos/internal/model"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input list.CreateListInput) (list.CreateListOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return list.CreateListOutput{}, list.ErrTitleRequired
	}

	entries := make([]model.ListEntry, 0, len(input.Entries))
	for _, text := range input.Entries {
		text = strings.TrimSpace(text)
		if text == "" {
			return list.CreateListOutput{}, list.ErrTextRequired
		}
		entries = append(entries, model.ListEntry{Text: text, Position: len(entries)})
	}

	created, err := uc.repo.CreateList(ctx, model.List{
		UserID:  sc.UserID,
		Title:   title,
		Pinned:  input.Pinned,
		Entries: entries,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateList: %v", err)
		return list.CreateListOutput{}, err
	}
	return list.CreateListOutput{List: created}, nil
}

// List returns a page of the caller's lists, pinned first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input list.ListListsInput) (list.ListListsOutput, error) {
	lists, total, err := uc.repo.ListLists(ctx, repo.ListListsOptions{
		UserID: sc.UserID,
		Query:  input.Query,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListLists: %v", err)
		return list.ListListsOutput{}, err
	}

	return list.ListListsOutput{
		Lists:  lists,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
