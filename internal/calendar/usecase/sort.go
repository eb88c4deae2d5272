package usecase

import (
	"slices"
	"strings"
	"time"

	"lifeos/internal/calendar"
	"lifeos/internal/model"
)

const endOfDay = "23:59"

// sortBuckets orders scheduled by due time, overdue by due date and habits
// by scheduled time. Other buckets keep store order.
func sortBuckets(b *calendar.Buckets) {
	slices.SortStableFunc(b.Scheduled, func(x, y model.Item) int {
		return strings.Compare(clockOrEndOfDay(x.DueTime), clockOrEndOfDay(y.DueTime))
	})
	slices.SortStableFunc(b.Overdue, func(x, y model.Item) int {
		return dueOrZero(x).Compare(dueOrZero(y))
	})
	slices.SortStableFunc(b.Habits, func(x, y model.Item) int {
		return strings.Compare(clockOrEndOfDay(x.ScheduledTime), clockOrEndOfDay(y.ScheduledTime))
	})
}

func clockOrEndOfDay(v string) string {
	if v == "" {
		return endOfDay
	}
	return v
}

func dueOrZero(it model.Item) time.Time {
	if it.DueDate == nil {
		return time.Time{}
	}
	return *it.DueDate
}
