package list

import (
	"context"

	"lifeos/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateListInput) (CreateListOutput, error)
	List(ctx context.Context, sc model.Scope, input ListListsInput) (ListListsOutput, error)
	Detail(ctx context.Context, sc model.Scope, id uint) (DetailListOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateListInput) (UpdateListOutput, error)
	Delete(ctx context.Context, sc model.Scope, id uint) error

	// Entry operations return the whole list after the change.
	AddEntry(ctx context.Context, sc model.Scope, input AddEntryInput) (UpdateListOutput, error)
	UpdateEntry(ctx context.Context, sc model.Scope, input UpdateEntryInput) (UpdateListOutput, error)
	DeleteEntry(ctx context.Context, sc model.Scope, input DeleteEntryInput) (UpdateListOutput, error)
	ClearChecked(ctx context.Context, sc model.Scope, id uint) (UpdateListOutput, error)
}
