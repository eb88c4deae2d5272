package note

import "lifeos/internal/model"

// --- UseCase Inputs ---

type CreateNoteInput struct {
	Title   string
	Content string
	Pinned  bool
}

// ListNotesInput filters notes. Query matches title or content.
type ListNotesInput struct {
	Query  string
	Limit  int
	Offset int
}

// UpdateNoteInput is a partial update. Nil fields are left unchanged.
type UpdateNoteInput struct {
	ID      uint
	Title   *string
	Content *string
	Pinned  *bool
}

// CheckItemInput sets the state of checklist lines whose text contains Text.
type CheckItemInput struct {
	ID      uint
	Text    string
	Checked bool
}

// --- UseCase Outputs ---

type CreateNoteOutput struct {
	Note model.Note
}

type ListNotesOutput struct {
	Notes  []model.Note
	Total  int
	Limit  int
	Offset int
}

type DetailNoteOutput struct {
	Note model.Note
}

type UpdateNoteOutput struct {
	Note model.Note
}
