package list

import "lifeos/internal/model"

// --- UseCase Inputs ---

// CreateListInput creates a list with optional initial entries, in order.
type CreateListInput struct {
	Title   string
	Pinned  bool
	Entries []string
}

// ListListsInput filters lists. Query matches the title.
type ListListsInput struct {
	Query  string
	Limit  int
	Offset int
}

// UpdateListInput is a partial update. Nil fields are left unchanged.
type UpdateListInput struct {
	ID     uint
	Title  *string
	Pinned *bool
}

type AddEntryInput struct {
	ListID uint
	Text   string
}

// UpdateEntryInput renames or checks off one entry. Nil fields are left unchanged.
type UpdateEntryInput struct {
	ListID  uint
	EntryID uint
	Text    *string
	Checked *bool
}

type DeleteEntryInput struct {
	ListID  uint
	EntryID uint
}

// --- UseCase Outputs ---

type CreateListOutput struct {
	List model.List
}

type ListListsOutput struct {
	Lists  []model.List
	Total  int
	Limit  int
	Offset int
}

type DetailListOutput struct {
	List model.List
}

type UpdateListOutput struct {
	List model.List
}
