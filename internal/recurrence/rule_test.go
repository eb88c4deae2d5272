package recurrence_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeos/internal/model"
	"lifeos/internal/recurrence"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

// 2025-01-06 is a Monday.
func week() []time.Time {
	start := date("2025-01-06")
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

func TestWeekdaysScheduleOverAYear(t *testing.T) {
	rule := recurrence.FromSchedule(model.ScheduleWeekdays, "")
	require.NotNil(t, rule)

	d := date("2025-01-01")
	for i := 0; i < 366; i++ {
		wd := d.Weekday()
		want := wd != time.Saturday && wd != time.Sunday
		assert.Equal(t, want, rule.OccursOn(d), "date %s", d.Format("2006-01-02"))
		d = d.AddDate(0, 0, 1)
	}
}

func TestScheduleRules(t *testing.T) {
	tests := []struct {
		name         string
		scheduleType string
		scheduleDays string
		want         [7]bool // Mon..Sun
	}{
		{name: "daily", scheduleType: "daily", want: [7]bool{true, true, true, true, true, true, true}},
		{name: "weekends", scheduleType: "weekends", want: [7]bool{false, false, false, false, false, true, true}},
		{name: "specific days", scheduleType: "specific_days", scheduleDays: "Mon,Wed,Sun", want: [7]bool{true, false, true, false, false, false, true}},
		{name: "specific days with spaces", scheduleType: "specific_days", scheduleDays: " Tue , Sat", want: [7]bool{false, true, false, false, false, true, false}},
		{name: "weekly monday indexed", scheduleType: "weekly", scheduleDays: "0,4,6", want: [7]bool{true, false, false, false, true, false, true}},
		{name: "weekly ignores junk", scheduleType: "weekly", scheduleDays: "x,9,2", want: [7]bool{false, false, true, false, false, false, false}},
		{name: "unknown type occurs", scheduleType: "fortnightly", want: [7]bool{true, true, true, true, true, true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := recurrence.FromSchedule(tt.scheduleType, tt.scheduleDays)
			require.NotNil(t, rule)
			assert.True(t, recurrence.IsPerDate(rule))
			for i, d := range week() {
				assert.Equal(t, tt.want[i], rule.OccursOn(d), "%s on %s", tt.name, d.Weekday())
			}
		})
	}

	assert.Nil(t, recurrence.FromSchedule("", ""))
}

func TestPerDateRecurrence(t *testing.T) {
	t.Run("daily", func(t *testing.T) {
		rule := recurrence.FromRecurrence(model.RecurrenceDaily, 0, "")
		assert.True(t, rule.OccursOn(date("2025-03-09")))
	})

	t.Run("weekly by day names", func(t *testing.T) {
		rule := recurrence.FromRecurrence(model.RecurrenceWeekly, 0, "Monday,Friday")
		assert.True(t, rule.OccursOn(date("2025-01-06")))
		assert.False(t, rule.OccursOn(date("2025-01-07")))
		assert.True(t, rule.OccursOn(date("2025-01-10")))
	})

	t.Run("monthly by day of month", func(t *testing.T) {
		rule := recurrence.FromRecurrence(model.RecurrenceMonthly, 0, "15")
		assert.True(t, rule.OccursOn(date("2025-02-15")))
		assert.False(t, rule.OccursOn(date("2025-02-16")))
	})

	t.Run("monthly with bad anchor never occurs", func(t *testing.T) {
		rule := recurrence.FromRecurrence(model.RecurrenceMonthly, 0, "mid")
		assert.False(t, rule.OccursOn(date("2025-02-15")))
	})

	t.Run("none", func(t *testing.T) {
		assert.Nil(t, recurrence.FromRecurrence("", 0, ""))
		assert.Nil(t, recurrence.FromRecurrence("yearly", 0, ""))
	})
}

func TestAdvancingNextDue(t *testing.T) {
	current := date("2025-01-10")
	completedOn := date("2025-01-12")

	tests := []struct {
		name           string
		recurrenceType string
		interval       int
		current        *time.Time
		want           string
	}{
		{name: "every 3 days from due date", recurrenceType: model.RecurrenceEveryNDays, interval: 3, current: &current, want: "2025-01-13"},
		{name: "every 2 weeks from due date", recurrenceType: model.RecurrenceEveryNWeeks, interval: 2, current: &current, want: "2025-01-24"},
		{name: "days after completion ignores due date", recurrenceType: model.RecurrenceDaysAfterCompletion, interval: 5, current: &current, want: "2025-01-17"},
		{name: "undated uses completion date", recurrenceType: model.RecurrenceEveryNDays, interval: 1, want: "2025-01-13"},
		{name: "zero interval treated as one", recurrenceType: model.RecurrenceEveryNWeeks, interval: 0, current: &current, want: "2025-01-17"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := recurrence.FromRecurrence(tt.recurrenceType, tt.interval, "")
			adv, ok := recurrence.AsAdvancer(rule)
			require.True(t, ok)
			assert.False(t, rule.OccursOn(current))
			assert.Equal(t, tt.want, adv.NextDue(tt.current, completedOn).Format("2006-01-02"))
		})
	}

	_, ok := recurrence.AsAdvancer(recurrence.FromRecurrence(model.RecurrenceDaily, 0, ""))
	assert.False(t, ok)
}

func TestForItem(t *testing.T) {
	habit := model.Item{ItemType: model.ItemTypeHabit}
	rule := recurrence.ForItem(habit)
	require.NotNil(t, rule)
	assert.True(t, rule.OccursOn(date("2025-01-11")), "habit without schedule defaults to daily")

	scheduledTask := model.Item{ItemType: model.ItemTypeTask, ScheduleType: model.ScheduleWeekends}
	assert.True(t, recurrence.IsPerDate(recurrence.ForItem(scheduledTask)))

	advancingTask := model.Item{ItemType: model.ItemTypeTask, RecurrenceType: model.RecurrenceEveryNDays, RecurrenceInterval: 2}
	_, ok := recurrence.AsAdvancer(recurrence.ForItem(advancingTask))
	assert.True(t, ok)

	assert.Nil(t, recurrence.ForItem(model.Item{ItemType: model.ItemTypeTask}))

	both := model.Item{ItemType: model.ItemTypeTask, ScheduleType: model.ScheduleDaily, RecurrenceType: model.RecurrenceEveryNDays, RecurrenceInterval: 3}
	_, ok = recurrence.AsAdvancer(recurrence.ForItem(both))
	assert.True(t, ok, "advancing recurrence wins over schedule fields")
}

func TestForCalendar(t *testing.T) {
	scheduledOnly := model.Item{ItemType: model.ItemTypeTask, ScheduleType: model.ScheduleDaily}
	assert.Nil(t, recurrence.ForCalendar(scheduledOnly))

	weekly := model.Item{ItemType: model.ItemTypeTask, ScheduleType: model.ScheduleDaily, RecurrenceType: model.RecurrenceWeekly, RecurrenceAnchor: "Mon"}
	rule := recurrence.ForCalendar(weekly)
	require.NotNil(t, rule)
	assert.True(t, rule.OccursOn(date("2025-01-13")))
	assert.False(t, rule.OccursOn(date("2025-01-14")))

	advancing := model.Item{ItemType: model.ItemTypeTask, RecurrenceType: model.RecurrenceEveryNDays, RecurrenceInterval: 2}
	assert.Nil(t, recurrence.ForCalendar(advancing))
}

func TestHabitSchedule(t *testing.T) {
	assert.True(t, recurrence.HabitSchedule(model.Item{ItemType: model.ItemTypeHabit}).OccursOn(date("2025-01-14")))
	assert.False(t, recurrence.HabitSchedule(model.Item{ItemType: model.ItemTypeHabit, ScheduleType: model.ScheduleWeekends}).OccursOn(date("2025-01-14")))
}
