package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lifeos/internal/calendar"
	"lifeos/internal/model"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func dayPtr(s string) *time.Time {
	d := day(s)
	return &d
}

func TestClassify(t *testing.T) {
	// 2025-01-10 is a Friday.
	target := day("2025-01-10")

	tests := []struct {
		name string
		item model.Item
		want []calendar.Bucket
	}{
		{
			name: "weekday habit on friday",
			item: model.Item{ItemType: model.ItemTypeHabit, ScheduleType: model.ScheduleWeekdays},
			want: []calendar.Bucket{calendar.BucketHabits},
		},
		{
			name: "weekend habit on friday",
			item: model.Item{ItemType: model.ItemTypeHabit, ScheduleType: model.ScheduleWeekends},
			want: nil,
		},
		{
			name: "habit without schedule is daily",
			item: model.Item{ItemType: model.ItemTypeHabit},
			want: []calendar.Bucket{calendar.BucketHabits},
		},
		{
			name: "habit ignores backlog and overdue",
			item: model.Item{ItemType: model.ItemTypeHabit, ScheduleType: model.ScheduleDaily, State: model.ItemStateBacklog, IsOverdue: true},
			want: []calendar.Bucket{calendar.BucketHabits},
		},
		{
			name: "reminder due earlier",
			item: model.Item{ItemType: model.ItemTypeReminder, State: model.ItemStateActive, DueDate: dayPtr("2025-01-08"), IsOverdue: true},
			want: []calendar.Bucket{calendar.BucketReminders},
		},
		{
			name: "reminder due later is scheduled nowhere",
			item: model.Item{ItemType: model.ItemTypeReminder, State: model.ItemStateActive, DueDate: dayPtr("2025-01-11")},
			want: nil,
		},
		{
			name: "completed pinned",
			item: model.Item{ItemType: model.ItemTypeTask, IsCompleted: true, ShowOnCalendar: true, DueDate: dayPtr("2025-01-10")},
			want: []calendar.Bucket{calendar.BucketPinned},
		},
		{
			name: "completed hidden",
			item: model.Item{ItemType: model.ItemTypeTask, IsCompleted: true, State: model.ItemStateActive, DueDate: dayPtr("2025-01-10")},
			want: nil,
		},
		{
			name: "backlog only",
			item: model.Item{ItemType: model.ItemTypeTask, State: model.ItemStateBacklog, DueDate: dayPtr("2025-01-10"), ShowOnCalendar: true},
			want: []calendar.Bucket{calendar.BucketBacklog},
		},
		{
			name: "overdue dated today with time",
			item: model.Item{ItemType: model.ItemTypeTask, State: model.ItemStateActive, DueDate: dayPtr("2025-01-10"), DueTime: "09:00", IsOverdue: true},
			want: []calendar.Bucket{calendar.BucketOverdue, calendar.BucketScheduled},
		},
		{
			name: "overdue dated earlier",
			item: model.Item{ItemType: model.ItemTypeTask, State: model.ItemStateActive, DueDate: dayPtr("2025-01-02"), IsOverdue: true, ShowOnCalendar: true},
			want: []calendar.Bucket{calendar.BucketOverdue},
		},
		{
			name: "active due today without time",
			item: model.Item{ItemType: model.ItemTypeTask, State: model.ItemStateActive, DueDate: dayPtr("2025-01-10")},
			want: []calendar.Bucket{calendar.BucketScheduledNoTime},
		},
		{
			name: "weekly recurring task on a listed day",
			item: model.Item{ItemType: model.ItemTypeTask, State: model.ItemStateActive, DueDate: dayPtr("2025-01-03"), RecurrenceType: model.RecurrenceWeekly, RecurrenceAnchor: "mon,FRI", DueTime: "08:00"},
			want: []calendar.Bucket{calendar.BucketScheduled},
		},
		{
			name: "monthly recurring reminder on its day",
			item: model.Item{ItemType: model.ItemTypeReminder, State: model.ItemStateActive, RecurrenceType: model.RecurrenceMonthly, RecurrenceAnchor: "10"},
			want: []calendar.Bucket{calendar.BucketScheduledNoTime},
		},
		{
			name: "advancing task shows only its live due date",
			item: model.Item{ItemType: model.ItemTypeTask, State: model.ItemStateActive, DueDate: dayPtr("2025-01-13"), RecurrenceType: model.RecurrenceEveryNDays, RecurrenceInterval: 3},
			want: nil,
		},
		{
			name: "task schedule fields do not place it on the calendar",
			item: model.Item{ItemType: model.ItemTypeTask, State: model.ItemStateActive, DueDate: dayPtr("2025-01-20"), ScheduleType: model.ScheduleWeekdays},
			want: nil,
		},
		{
			name: "task recurrence decides over its schedule",
			item: model.Item{ItemType: model.ItemTypeTask, State: model.ItemStateActive, DueDate: dayPtr("2025-01-20"), ScheduleType: model.ScheduleDaily, RecurrenceType: model.RecurrenceWeekly, RecurrenceAnchor: "Mon"},
			want: nil,
		},
		{
			name: "scheduled task still lands on its due date",
			item: model.Item{ItemType: model.ItemTypeTask, State: model.ItemStateActive, DueDate: dayPtr("2025-01-10"), ScheduleType: model.ScheduleWeekends},
			want: []calendar.Bucket{calendar.BucketScheduledNoTime},
		},
		{
			name: "pinned when nothing else matched",
			item: model.Item{ItemType: model.ItemTypeTask, State: model.ItemStateActive, DueDate: dayPtr("2025-01-20"), ShowOnCalendar: true},
			want: []calendar.Bucket{calendar.BucketPinned},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.item, target))
		})
	}
}

func TestWeeklyTaskIgnoresItsSchedule(t *testing.T) {
	task := model.Item{
		ItemType:         model.ItemTypeTask,
		State:            model.ItemStateActive,
		DueDate:          dayPtr("2025-01-20"),
		ScheduleType:     model.ScheduleDaily,
		RecurrenceType:   model.RecurrenceWeekly,
		RecurrenceAnchor: "Mon",
	}

	assert.Nil(t, classify(task, day("2025-01-14")))
	assert.Equal(t, []calendar.Bucket{calendar.BucketScheduledNoTime}, classify(task, day("2025-01-13")))
}

func TestWeekdayHabitOccursMondayToFriday(t *testing.T) {
	habit := model.Item{ItemType: model.ItemTypeHabit, ScheduleType: model.ScheduleWeekdays}
	start := day("2025-01-06") // Monday

	for i := 0; i < 14; i++ {
		d := start.AddDate(0, 0, i)
		got := len(classify(habit, d)) == 1
		want := d.Weekday() != time.Saturday && d.Weekday() != time.Sunday
		assert.Equal(t, want, got, d.Format("Mon 2006-01-02"))
	}
}

func TestSortBuckets(t *testing.T) {
	b := calendar.Buckets{
		Scheduled: []model.Item{{ID: 1, DueTime: "14:00"}, {ID: 2}, {ID: 3, DueTime: "08:30"}},
		Overdue:   []model.Item{{ID: 4, DueDate: dayPtr("2025-01-05")}, {ID: 5}, {ID: 6, DueDate: dayPtr("2025-01-01")}},
		Habits:    []model.Item{{ID: 7}, {ID: 8, ScheduledTime: "06:00"}},
		Pinned:    []model.Item{{ID: 9}, {ID: 10}},
	}

	sortBuckets(&b)

	assert.Equal(t, []uint{3, 1, 2}, ids(b.Scheduled))
	assert.Equal(t, []uint{5, 6, 4}, ids(b.Overdue))
	assert.Equal(t, []uint{8, 7}, ids(b.Habits))
	assert.Equal(t, []uint{9, 10}, ids(b.Pinned))
}

func ids(items []model.Item) []uint {
	out := make([]uint, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
