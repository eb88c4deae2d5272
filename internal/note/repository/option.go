package repository

// GetOneNoteOptions holds filter parameters for fetching a single Note.
// All non-zero fields are applied as AND conditions.
type GetOneNoteOptions struct {
	ID     uint
	UserID uint
}

// ListNotesOptions holds filter and pagination parameters for listing Notes.
type ListNotesOptions struct {
	UserID  uint
	Query   string
	Limit   int
	Offset  int
	OrderBy string
}
