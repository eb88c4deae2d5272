package model

import (
	"time"
)

type ItemType string

const (
	ItemTypeTask     ItemType = "task"
	ItemTypeHabit    ItemType = "habit"
	ItemTypeReminder ItemType = "reminder"
)

// ItemState is the three-state lifecycle. The older
// unscheduled/scheduled/in_progress states are not used.
type ItemState string

const (
	ItemStateBacklog   ItemState = "backlog"
	ItemStateActive    ItemState = "active"
	ItemStateCompleted ItemState = "completed"
)

const (
	ScheduleDaily        = "daily"
	ScheduleWeekdays     = "weekdays"
	ScheduleWeekends     = "weekends"
	ScheduleSpecificDays = "specific_days"
	ScheduleWeekly       = "weekly"
)

const (
	RecurrenceDaily               = "daily"
	RecurrenceWeekly              = "weekly"
	RecurrenceMonthly             = "monthly"
	RecurrenceEveryNDays          = "every_n_days"
	RecurrenceEveryNWeeks         = "every_n_weeks"
	RecurrenceDaysAfterCompletion = "days_after_completion"
)

// MaxDurationMinutes caps the derived timeline length of an item.
const MaxDurationMinutes = 240

// Item is a task, habit or reminder.
type Item struct {
	ID           uint  `gorm:"primarykey"`
	UserID       uint  `gorm:"index;not null"`
	ParentItemID *uint `gorm:"index"`

	Title       string `gorm:"not null"`
	Description string
	ItemType    ItemType  `gorm:"not null;default:task"`
	State       ItemState `gorm:"not null;default:backlog"`

	DueDate       *time.Time
	DueTime       string
	ScheduleType  string
	ScheduleDays  string
	ScheduledTime string

	RecurrenceType     string
	RecurrenceInterval int
	RecurrenceAnchor   string

	IsCompleted    bool `gorm:"default:false"`
	CompletedAt    *time.Time
	IsOverdue      bool `gorm:"default:false;index"`
	ShowOnCalendar bool `gorm:"default:false"`
	IsParent       bool `gorm:"default:false"`

	Priority        string
	Complexity      string
	Energy          string
	Duration        string
	DurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time

	Completions []ItemCompletion `gorm:"foreignKey:ItemID"`
	Children    []Item           `gorm:"foreignKey:ParentItemID"`
}

// ItemCompletion records that an item was completed for one calendar date.
type ItemCompletion struct {
	ID             uint   `gorm:"primarykey"`
	ItemID         uint   `gorm:"not null;uniqueIndex:idx_item_completion_date"`
	CompletionDate string `gorm:"type:varchar(10);not null;uniqueIndex:idx_item_completion_date"`
	CreatedAt      time.Time
}

// HasCompletionOn reports whether a completion row exists for the YYYY-MM-DD date key.
func (i Item) HasCompletionOn(dateKey string) bool {
	for _, c := range i.Completions {
		if c.CompletionDate == dateKey {
			return true
		}
	}
	return false
}

// IncompleteChildren counts children that are not completed.
func (i Item) IncompleteChildren() int {
	n := 0
	for _, child := range i.Children {
		if !child.IsCompleted {
			n++
		}
	}
	return n
}
