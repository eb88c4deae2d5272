package usecase

import (
	"context"
	"strings"

	"lifeos/internal/model"
	"lifeos/internal/note"
	repo "lifeos/internal/note/repository"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input note.CreateNoteInput) (note.CreateNoteOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return note.CreateNoteOutput{}, note.ErrTitleRequired
	}

	n, err := uc.repo.CreateNote(ctx, model.Note{
		UserID:  sc.UserID,
		Title:   title,
		Content: input.Content,
		Pinned:  input.Pinned,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateNote: %v", err)
		return note.CreateNoteOutput{}, err
	}
	return note.CreateNoteOutput{Note: n}, nil
}

// List returns a page of the caller's notes, pinned first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input note.ListNotesInput) (note.ListNotesOutput, error) {
	notes, total, err := uc.repo.ListNotes(ctx, repo.ListNotesOptions{
		UserID: sc.UserID,
		Query:  input.Query,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListNotes: %v", err)
		return note.ListNotesOutput{}, err
	}

	return note.ListNotesOutput{
		Notes:  notes,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
