package usecase

import (
	"context"

	"lifeos/internal/checklist"
	"lifeos/internal/model"
	"lifeos/internal/note"
)

func (uc *implUseCase) CheckItem(ctx context.Context, sc model.Scope, input note.CheckItemInput) (note.UpdateNoteOutput, error) {
	existing, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return note.UpdateNoteOutput{}, err
	}

	content, n := checklist.SetChecked(existing.Content, input.Text, input.Checked)
	if n == 0 {
		return note.UpdateNoteOutput{}, note.ErrChecklistItem
	}
	existing.Content = content

	updated, err := uc.repo.UpdateNote(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CheckItem UpdateNote: %v", err)
		return note.UpdateNoteOutput{}, err
	}
	return note.UpdateNoteOutput{Note: updated}, nil
}
