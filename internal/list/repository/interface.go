package repository

import (
	"context"

	"lifeos/internal/model"
)

// Repository is the composed interface for the list domain data store.
type Repository interface {
	ListRepository
	EntryRepository
}

// ListRepository defines data access for List rows. Reads preload entries.
type ListRepository interface {
	CreateList(ctx context.Context, l model.List) (model.List, error)
	GetOneList(ctx context.Context, opt GetOneListOptions) (model.List, error)
	ListLists(ctx context.Context, opt ListListsOptions) ([]model.List, int, error)
	UpdateList(ctx context.Context, l model.List) (model.List, error)
	DeleteList(ctx context.Context, id uint) error
}

// EntryRepository defines data access for the entries of one list.
type EntryRepository interface {
	// CreateEntry appends e after the list's last entry.
	CreateEntry(ctx context.Context, e model.ListEntry) (model.ListEntry, error)
	UpdateEntry(ctx context.Context, e model.ListEntry) (model.ListEntry, error)
	DeleteEntry(ctx context.Context, opt DeleteEntryOptions) error
	// DeleteCheckedEntries removes every checked entry and returns how many went.
	DeleteCheckedEntries(ctx context.Context, listID uint) (int, error)
}
