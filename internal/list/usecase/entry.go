package usecase

import (
	"context"
	"strings"

	"lifeos/internal/list"
	repo "lifeos/internal/list/repository"
	"lifeos/internal/model"
)

func (uc *implUseCase) AddEntry(ctx context.Context, sc model.Scope, input list.AddEntryInput) (list.UpdateListOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return list.UpdateListOutput{}, list.ErrTextRequired
	}
	if _, err := uc.getOwned(ctx, sc, input.ListID); err != nil {
		return list.UpdateListOutput{}, err
	}

	if _, err := uc.repo.CreateEntry(ctx, model.ListEntry{ListID: input.ListID, Text: text}); err != nil {
		uc.l.Errorf(ctx, "uc.AddEntry CreateEntry: %v", err)
		return list.UpdateListOutput{}, err
	}
	return uc.reload(ctx, sc, input.ListID)
}

func (uc *implUseCase) UpdateEntry(ctx context.Context, sc model.Scope, input list.UpdateEntryInput) (list.UpdateListOutput, error) {
	owner, err := uc.getOwned(ctx, sc, input.ListID)
	if err != nil {
		return list.UpdateListOutput{}, err
	}
	entry, ok := owner.Entry(input.EntryID)
	if !ok {
		return list.UpdateListOutput{}, list.ErrEntryNotFound
	}

	if input.Text != nil {
		text := strings.TrimSpace(*input.Text)
		if text == "" {
			return list.UpdateListOutput{}, list.ErrTextRequired
		}
		entry.Text = text
	}
	if input.Checked != nil {
		entry.Checked = *input.Checked
	}

	if _, err := uc.repo.UpdateEntry(ctx, entry); err != nil {
		uc.l.Errorf(ctx, "uc.UpdateEntry UpdateEntry: %v", err)
		return list.UpdateListOutput{}, err
	}
	return uc.reload(ctx, sc, input.ListID)
}

func (uc *implUseCase) DeleteEntry(ctx context.Context, sc model.Scope, input list.DeleteEntryInput) (list.UpdateListOutput, error) {
	owner, err := uc.getOwned(ctx, sc, input.ListID)
	if err != nil {
		return list.UpdateListOutput{}, err
	}
	if _, ok := owner.Entry(input.EntryID); !ok {
		return list.UpdateListOutput{}, list.ErrEntryNotFound
	}

	if err := uc.repo.DeleteEntry(ctx, repo.DeleteEntryOptions{ListID: input.ListID, EntryID: input.EntryID}); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteEntry DeleteEntry: %v", err)
		return list.UpdateListOutput{}, err
	}
	return uc.reload(ctx, sc, input.ListID)
}

// ClearChecked removes every checked entry from the list.
func (uc *implUseCase) ClearChecked(ctx context.Context, sc model.Scope, id uint) (list.UpdateListOutput, error) {
	if _, err := uc.getOwned(ctx, sc, id); err != nil {
		return list.UpdateListOutput{}, err
	}

	n, err := uc.repo.DeleteCheckedEntries(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ClearChecked DeleteCheckedEntries: %v", err)
		return list.UpdateListOutput{}, err
	}
	uc.l.Infof(ctx, "uc.ClearChecked: removed %d entries from list %d", n, id)
	return uc.reload(ctx, sc, id)
}

func (uc *implUseCase) reload(ctx context.Context, sc model.Scope, id uint) (list.UpdateListOutput, error) {
	l, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return list.UpdateListOutput{}, err
	}
	return list.UpdateListOutput{List: l}, nil
}
