package note

import (
	"context"

	"lifeos/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateNoteInput) (CreateNoteOutput, error)
	List(ctx context.Context, sc model.Scope, input ListNotesInput) (ListNotesOutput, error)
	Detail(ctx context.Context, sc model.Scope, id uint) (DetailNoteOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateNoteInput) (UpdateNoteOutput, error)
	Delete(ctx context.Context, sc model.Scope, id uint) error

	// CheckItem ticks or unticks markdown checklist lines in the note content.
	CheckItem(ctx context.Context, sc model.Scope, input CheckItemInput) (UpdateNoteOutput, error)
}
