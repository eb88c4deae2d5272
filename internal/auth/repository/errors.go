package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert")
	ErrFailedToGet    = errors.New("failed to get")
	ErrFailedToDelete = errors.New("failed to delete")
	ErrDuplicate      = errors.New("duplicate record")
)
