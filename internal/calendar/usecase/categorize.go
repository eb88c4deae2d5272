package usecase

import (
	"time"

	"lifeos/internal/calendar"
	"lifeos/internal/model"
	"lifeos/internal/recurrence"
	"lifeos/pkg/datemath"
)

// classify returns the buckets an item belongs to on date. It expects the
// overdue flag to be up to date. Precedence:
//  1. habits: only when the schedule occurs on date
//  2. reminders due on or before date
//  3. completed items: pinned when shown on the calendar
//  4. backlog
//  5. overdue, then keep going
//  6. tasks and reminders recurring daily, weekly or monthly on date: scheduled
//  7. active items due on date: scheduled
//  8. pinned when nothing else matched
func classify(it model.Item, date time.Time) []calendar.Bucket {
	key := datemath.Key(date)

	if it.ItemType == model.ItemTypeHabit {
		if recurrence.HabitSchedule(it).OccursOn(date) {
			return []calendar.Bucket{calendar.BucketHabits}
		}
		return nil
	}

	if it.ItemType == model.ItemTypeReminder && it.DueDate != nil && datemath.Key(*it.DueDate) <= key {
		return []calendar.Bucket{calendar.BucketReminders}
	}

	if it.IsCompleted {
		if it.ShowOnCalendar {
			return []calendar.Bucket{calendar.BucketPinned}
		}
		return nil
	}

	if it.State == model.ItemStateBacklog {
		return []calendar.Bucket{calendar.BucketBacklog}
	}

	var tags []calendar.Bucket
	if it.IsOverdue {
		tags = append(tags, calendar.BucketOverdue)
	}

	if rule := recurrence.ForCalendar(it); rule != nil && rule.OccursOn(date) {
		return append(tags, scheduledBucket(it))
	}

	if it.State == model.ItemStateActive && it.DueDate != nil && datemath.Key(*it.DueDate) == key {
		return append(tags, scheduledBucket(it))
	}

	if it.ShowOnCalendar && len(tags) == 0 {
		return []calendar.Bucket{calendar.BucketPinned}
	}
	return tags
}

func scheduledBucket(it model.Item) calendar.Bucket {
	if it.DueTime != "" {
		return calendar.BucketScheduled
	}
	return calendar.BucketScheduledNoTime
}

// categorize places every item in its buckets, keeping input order.
func categorize(items []model.Item, date time.Time) calendar.Buckets {
	var buckets calendar.Buckets
	for _, it := range items {
		for _, b := range classify(it, date) {
			buckets.Add(b, it)
		}
	}
	return buckets
}
