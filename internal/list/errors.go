package list

import "errors"

var (
	ErrListNotFound  = errors.New("list not found")
	ErrEntryNotFound = errors.New("list entry not found")
	ErrTitleRequired = errors.New("title is required")
	ErrTextRequired  = errors.New("entry text is required")
)
