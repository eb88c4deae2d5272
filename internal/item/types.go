package item

import (
	"time"

	"lifeos/internal/model"
)

// --- UseCase Inputs ---

// CreateItemInput creates a top-level item. DueDate accepts YYYY-MM-DD or a
// relative expression such as "tomorrow" or "next friday".
type CreateItemInput struct {
	Title              string
	Description        string
	ItemType           string
	State              string
	DueDate            string
	DueTime            string
	ScheduleType       string
	ScheduleDays       string
	ScheduledTime      string
	RecurrenceType     string
	RecurrenceInterval int
	RecurrenceAnchor   string
	ShowOnCalendar     bool
	Priority           string
	Complexity         string
	Energy             string
	Duration           string
	SubItems           []SubItemInput
}

// SubItemInput describes a child item. ID is set for existing children.
type SubItemInput struct {
	ID          *uint
	Title       string
	Description string
	DueDate     *string
	DueTime     *string
	Priority    string
	Duration    string
}

type ListItemsInput struct {
	ItemType string
	State    string
	Limit    int
	Offset   int
}

// UpdateItemInput is a partial update. Nil fields are left unchanged; an
// empty DueDate clears the date. A nil SubItems leaves children untouched.
type UpdateItemInput struct {
	ID                 uint
	Title              *string
	Description        *string
	ItemType           *string
	State              *string
	DueDate            *string
	DueTime            *string
	ScheduleType       *string
	ScheduleDays       *string
	ScheduledTime      *string
	RecurrenceType     *string
	RecurrenceInterval *int
	RecurrenceAnchor   *string
	ShowOnCalendar     *bool
	IsOverdue          *bool
	Priority           *string
	Complexity         *string
	Energy             *string
	Duration           *string
	SubItems           *[]SubItemInput
}

// ToggleInput toggles completion for Date (YYYY-MM-DD). An empty Date means today.
type ToggleInput struct {
	ID   uint
	Date string
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item model.Item
}

type ListItemsOutput struct {
	Items  []model.Item
	Total  int
	Limit  int
	Offset int
}

type DetailItemOutput struct {
	Item model.Item
}

type UpdateItemOutput struct {
	Item model.Item
}

type ToggleOutput struct {
	Completed   bool
	Advanced    bool
	NextDueDate *time.Time
}
