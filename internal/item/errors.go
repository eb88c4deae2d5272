package item

import (
	"errors"
	"fmt"
)

var (
	ErrItemNotFound       = errors.New("item not found")
	ErrSubItemNotFound    = errors.New("sub-item does not belong to this item")
	ErrInvalidPayload     = errors.New("invalid payload")
	ErrTitleRequired      = errors.New("title is required")
	ErrInvalidItemType    = errors.New("itemType must be one of task, habit, reminder")
	ErrInvalidState       = errors.New("state must be one of backlog, active, completed")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTime        = errors.New("invalid time, expected HH:MM")
	ErrInvalidRecurrence  = errors.New("invalid recurrence type")
	ErrInvalidSchedule    = errors.New("invalid schedule type")
	ErrIncompleteChildren = errors.New("cannot complete item with incomplete sub-items")
)

// IncompleteChildrenError blocks completing a parent while Count children are open.
type IncompleteChildrenError struct {
	Count int
}

func (e *IncompleteChildrenError) Error() string {
	return fmt.Sprintf("%s (%d remaining)", ErrIncompleteChildren.Error(), e.Count)
}

func (e *IncompleteChildrenError) Unwrap() error {
	return ErrIncompleteChildren
}
