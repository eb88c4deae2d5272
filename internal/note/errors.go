package note

import "errors"

var (
	ErrNoteNotFound  = errors.New("note not found")
	ErrTitleRequired = errors.New("title is required")
	ErrChecklistItem = errors.New("checklist item not found")
)
