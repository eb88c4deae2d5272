package repository

import (
	"context"

	"lifeos/internal/model"
)

// Repository is the composed interface for the note domain data store.
type Repository interface {
	NoteRepository
}

// NoteRepository defines all data access methods for the Note entity.
type NoteRepository interface {
	CreateNote(ctx context.Context, n model.Note) (model.Note, error)
	GetOneNote(ctx context.Context, opt GetOneNoteOptions) (model.Note, error)
	ListNotes(ctx context.Context, opt ListNotesOptions) ([]model.Note, int, error)
	UpdateNote(ctx context.Context, n model.Note) (model.Note, error)
	DeleteNote(ctx context.Context, id uint) error
}
