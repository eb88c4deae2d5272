package usecase

import (
	"context"
	"strings"

	"lifeos/internal/list"
	repo "lifeos/internal/list/repository"
	"lifeos/internal/model"
)

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id uint) (list.DetailListOutput, error) {
	l, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return list.DetailListOutput{}, err
	}
	return list.DetailListOutput{List: l}, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input list.UpdateListInput) (list.UpdateListOutput, error) {
	existing, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return list.UpdateListOutput{}, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return list.UpdateListOutput{}, list.ErrTitleRequired
		}
		existing.Title = title
	}
	if input.Pinned != nil {
		existing.Pinned = *input.Pinned
	}

	updated, err := uc.repo.UpdateList(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateList: %v", err)
		return list.UpdateListOutput{}, err
	}
	updated.Entries = existing.Entries
	return list.UpdateListOutput{List: updated}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id uint) error {
	if _, err := uc.getOwned(ctx, sc, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteList(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteList: %v", err)
		return err
	}
	return nil
}

// getOwned loads a list owned by the caller. Other users' lists are reported as missing.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id uint) (model.List, error) {
	l, err := uc.repo.GetOneList(ctx, repo.GetOneListOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwned GetOneList: %v", err)
		return model.List{}, err
	}
	if l.ID == 0 {
		return model.List{}, list.ErrListNotFound
	}
	return l, nil
}
