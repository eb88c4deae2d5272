package calendar

import (
	"time"

	"lifeos/internal/model"
	"lifeos/pkg/gcalendar"
)

// Bucket names one display group of the calendar view.
type Bucket string

const (
	BucketReminders       Bucket = "reminders"
	BucketOverdue         Bucket = "overdue"
	BucketScheduled       Bucket = "scheduled"
	BucketScheduledNoTime Bucket = "scheduledNoTime"
	BucketPinned          Bucket = "pinned"
	BucketBacklog         Bucket = "backlog"
	BucketHabits          Bucket = "habits"
)

// Buckets holds the categorized items of one date. An item may appear in
// more than one bucket (overdue and scheduled).
type Buckets struct {
	Reminders       []model.Item
	Overdue         []model.Item
	Scheduled       []model.Item
	ScheduledNoTime []model.Item
	Pinned          []model.Item
	Backlog         []model.Item
	Habits          []model.Item
}

// Add appends it to the bucket named b.
func (bs *Buckets) Add(b Bucket, it model.Item) {
	switch b {
	case BucketReminders:
		bs.Reminders = append(bs.Reminders, it)
	case BucketOverdue:
		bs.Overdue = append(bs.Overdue, it)
	case BucketScheduled:
		bs.Scheduled = append(bs.Scheduled, it)
	case BucketScheduledNoTime:
		bs.ScheduledNoTime = append(bs.ScheduledNoTime, it)
	case BucketPinned:
		bs.Pinned = append(bs.Pinned, it)
	case BucketBacklog:
		bs.Backlog = append(bs.Backlog, it)
	case BucketHabits:
		bs.Habits = append(bs.Habits, it)
	}
}

// --- UseCase Inputs ---

// ItemsInput selects the date to categorize. Today overrides the server's
// current date for overdue detection; both are YYYY-MM-DD.
type ItemsInput struct {
	Date  string
	Today string
}

type EventsInput struct {
	Date string
}

// CreateEventInput creates an event on Date. Without StartTime the event is
// all-day; without EndTime a timed event lasts DurationMinutes (default 60).
type CreateEventInput struct {
	CalendarID      string
	Summary         string
	Description     string
	Date            string
	StartTime       string
	EndTime         string
	DurationMinutes int
}

type DeleteEventInput struct {
	CalendarID string
	EventID    string
}

// --- UseCase Outputs ---

type ItemsOutput struct {
	Date    time.Time
	Today   time.Time
	Buckets Buckets
}

type EventsOutput struct {
	Events []gcalendar.Event
}

type CreateEventOutput struct {
	Event gcalendar.Event
}
