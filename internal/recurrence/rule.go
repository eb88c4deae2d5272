// Package recurrence evaluates item recurrence. Habit schedules, per-date
// task recurrence and advancing recurrence are all expressed as a Rule.
package recurrence

import (
	"strconv"
	"strings"
	"time"

	"lifeos/internal/model"
	"lifeos/pkg/datemath"
)

// Mode tells how completion is tracked for items following a rule.
type Mode int

const (
	// ModePerDate items log one completion row per calendar date.
	ModePerDate Mode = iota + 1
	// ModeAdvancing items keep a single live due date that moves forward on completion.
	ModeAdvancing
)

// Rule decides whether an item occurs on a calendar date.
type Rule interface {
	Mode() Mode
	OccursOn(date time.Time) bool
}

// Advancer is implemented by advancing rules.
type Advancer interface {
	Rule
	// NextDue returns the due date that follows a completion made on completedOn.
	NextDue(current *time.Time, completedOn time.Time) time.Time
}

// ForItem returns the rule that governs completion of item, or nil for
// one-shot items. An advancing recurrence wins over a schedule, so the due
// date keeps moving even when schedule fields are also set.
func ForItem(item model.Item) Rule {
	rec := FromRecurrence(item.RecurrenceType, item.RecurrenceInterval, item.RecurrenceAnchor)
	if _, ok := AsAdvancer(rec); ok {
		return rec
	}
	if item.ScheduleType != "" || item.ItemType == model.ItemTypeHabit {
		return HabitSchedule(item)
	}
	return rec
}

// HabitSchedule returns the occurrence rule built from the item's schedule
// fields. Items without a schedule type occur daily.
func HabitSchedule(item model.Item) Rule {
	if item.ScheduleType == "" {
		return daily{}
	}
	return FromSchedule(item.ScheduleType, item.ScheduleDays)
}

// ForCalendar returns the per-date task recurrence (daily, weekly, monthly)
// that places a non-habit item on a calendar date, or nil. Schedule fields
// are not consulted.
func ForCalendar(item model.Item) Rule {
	if rule := FromRecurrence(item.RecurrenceType, item.RecurrenceInterval, item.RecurrenceAnchor); IsPerDate(rule) {
		return rule
	}
	return nil
}

// FromSchedule builds a habit-style schedule rule. Unknown non-empty types occur every day.
func FromSchedule(scheduleType, scheduleDays string) Rule {
	switch scheduleType {
	case "":
		return nil
	case model.ScheduleDaily:
		return daily{}
	case model.ScheduleWeekdays:
		return weekdays{}
	case model.ScheduleWeekends:
		return weekends{}
	case model.ScheduleSpecificDays:
		return namedDays{days: parseDayNames(scheduleDays)}
	case model.ScheduleWeekly:
		return mondayIndexedDays{days: parseMondayIndexes(scheduleDays)}
	default:
		return daily{}
	}
}

// FromRecurrence builds a task/reminder recurrence rule. It returns nil for
// an empty or unknown recurrence type.
func FromRecurrence(recurrenceType string, interval int, anchor string) Rule {
	switch recurrenceType {
	case model.RecurrenceDaily:
		return daily{}
	case model.RecurrenceWeekly:
		return namedDays{days: parseDayNames(anchor)}
	case model.RecurrenceMonthly:
		day, err := strconv.Atoi(strings.TrimSpace(anchor))
		if err != nil {
			day = 0
		}
		return dayOfMonth{day: day}
	case model.RecurrenceEveryNDays:
		return advancing{days: 1, interval: interval}
	case model.RecurrenceEveryNWeeks:
		return advancing{days: 7, interval: interval}
	case model.RecurrenceDaysAfterCompletion:
		return advancing{days: 1, interval: interval, fromCompletion: true}
	default:
		return nil
	}
}

// IsPerDate reports whether r tracks completion per date.
func IsPerDate(r Rule) bool {
	return r != nil && r.Mode() == ModePerDate
}

// AsAdvancer returns r as an Advancer when it is an advancing rule.
func AsAdvancer(r Rule) (Advancer, bool) {
	if r == nil || r.Mode() != ModeAdvancing {
		return nil, false
	}
	a, ok := r.(Advancer)
	return a, ok
}

type daily struct{}

func (daily) Mode() Mode                { return ModePerDate }
func (daily) OccursOn(_ time.Time) bool { return true }

type weekdays struct{}

func (weekdays) Mode() Mode { return ModePerDate }
func (weekdays) OccursOn(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

type weekends struct{}

func (weekends) Mode() Mode { return ModePerDate }
func (weekends) OccursOn(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// namedDays matches day names such as "Mon,Wed".
type namedDays struct {
	days map[time.Weekday]bool
}

func (namedDays) Mode() Mode { return ModePerDate }
func (n namedDays) OccursOn(date time.Time) bool {
	return n.days[date.Weekday()]
}

// mondayIndexedDays matches integers in a 0=Monday..6=Sunday frame.
type mondayIndexedDays struct {
	days map[int]bool
}

func (mondayIndexedDays) Mode() Mode { return ModePerDate }
func (m mondayIndexedDays) OccursOn(date time.Time) bool {
	return m.days[datemath.MondayIndex(date.Weekday())]
}

type dayOfMonth struct {
	day int
}

func (dayOfMonth) Mode() Mode { return ModePerDate }
func (d dayOfMonth) OccursOn(date time.Time) bool {
	return d.day > 0 && date.Day() == d.day
}

type advancing struct {
	days           int
	interval       int
	fromCompletion bool
}

func (advancing) Mode() Mode { return ModeAdvancing }

// OccursOn is always false: an advancing item only shows its single live due date.
func (advancing) OccursOn(_ time.Time) bool { return false }

func (a advancing) NextDue(current *time.Time, completedOn time.Time) time.Time {
	interval := a.interval
	if interval < 1 {
		interval = 1
	}
	base := completedOn
	if current != nil && !a.fromCompletion {
		base = *current
	}
	base = datemath.CalendarDate(base, time.UTC)
	return base.AddDate(0, 0, a.days*interval)
}

func parseDayNames(raw string) map[time.Weekday]bool {
	days := make(map[time.Weekday]bool)
	for _, token := range strings.Split(raw, ",") {
		if wd, ok := datemath.ParseWeekday(token); ok {
			days[wd] = true
		}
	}
	return days
}

func parseMondayIndexes(raw string) map[int]bool {
	days := make(map[int]bool)
	for _, token := range strings.Split(raw, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil || idx < 0 || idx > 6 {
			continue
		}
		days[idx] = true
	}
	return days
}
