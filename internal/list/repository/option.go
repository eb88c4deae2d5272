package repository

// GetOneListOptions holds filter parameters for fetching a single List.
// All non-zero fields are applied as AND conditions.
type GetOneListOptions struct {
	ID     uint
	UserID uint
}

// ListListsOptions holds filter and pagination parameters for listing Lists.
type ListListsOptions struct {
	UserID  uint
	Query   string
	Limit   int
	Offset  int
	OrderBy string
}

type DeleteEntryOptions struct {
	ListID  uint
	EntryID uint
}
