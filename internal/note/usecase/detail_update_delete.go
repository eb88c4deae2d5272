package usecase

import (
	"context"
	"strings"

	"lifeos/internal/model"
	"lifeos/internal/note"
	repo "lifeos/internal/note/repository"
)

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id uint) (note.DetailNoteOutput, error) {
	n, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return note.DetailNoteOutput{}, err
	}
	return note.DetailNoteOutput{Note: n}, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input note.UpdateNoteInput) (note.UpdateNoteOutput, error) {
	existing, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return note.UpdateNoteOutput{}, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return note.UpdateNoteOutput{}, note.ErrTitleRequired
		}
		existing.Title = title
	}
	if input.Content != nil {
		existing.Content = *input.Content
	}
	if input.Pinned != nil {
		existing.Pinned = *input.Pinned
	}

	n, err := uc.repo.UpdateNote(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateNote: %v", err)
		return note.UpdateNoteOutput{}, err
	}
	return note.UpdateNoteOutput{Note: n}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id uint) error {
	if _, err := uc.getOwned(ctx, sc, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteNote(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteNote: %v", err)
		return err
	}
	return nil
}

// getOwned loads a note owned by the caller. Other users' notes are reported as missing.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id uint) (model.Note, error) {
	n, err := uc.repo.GetOneNote(ctx, repo.GetOneNoteOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwned GetOneNote: %v", err)
		return model.Note{}, err
	}
	if n.ID == 0 {
		return model.Note{}, note.ErrNoteNotFound
	}
	return n, nil
}
