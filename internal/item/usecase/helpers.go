package usecase

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"lifeos/internal/item"
	"lifeos/internal/model"
)

var (
	clockRe    = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	durationRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(hours|hour|hrs|hr|h|minutes|minute|mins|min|m)\b`)
)

func parseItemType(v string) (model.ItemType, error) {
	switch t := model.ItemType(strings.ToLower(strings.TrimSpace(v))); t {
	case "":
		return model.ItemTypeTask, nil
	case model.ItemTypeTask, model.ItemTypeHabit, model.ItemTypeReminder:
		return t, nil
	default:
		return "", item.ErrInvalidItemType
	}
}

func parseState(v string) (model.ItemState, error) {
	switch s := model.ItemState(strings.ToLower(strings.TrimSpace(v))); s {
	case model.ItemStateBacklog, model.ItemStateActive, model.ItemStateCompleted:
		return s, nil
	default:
		return "", item.ErrInvalidState
	}
}

// defaultState is active for dated items and backlog otherwise.
func defaultState(due *time.Time) model.ItemState {
	if due != nil {
		return model.ItemStateActive
	}
	return model.ItemStateBacklog
}

// validateClock accepts an empty value or HH:MM.
func validateClock(v string) error {
	if v == "" || clockRe.MatchString(v) {
		return nil
	}
	return item.ErrInvalidTime
}

func validateSchedule(v string) error {
	switch v {
	case "", model.ScheduleDaily, model.ScheduleWeekdays, model.ScheduleWeekends,
		model.ScheduleSpecificDays, model.ScheduleWeekly:
		return nil
	default:
		return item.ErrInvalidSchedule
	}
}

func validateRecurrence(v string) error {
	switch v {
	case "", model.RecurrenceDaily, model.RecurrenceWeekly, model.RecurrenceMonthly,
		model.RecurrenceEveryNDays, model.RecurrenceEveryNWeeks, model.RecurrenceDaysAfterCompletion:
		return nil
	default:
		return item.ErrInvalidRecurrence
	}
}

// parseDurationMinutes derives minutes from strings such as "45", "1h 30m",
// "1.5h" or "90 min". Unparseable input yields 0.
func parseDurationMinutes(v string) int {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return 0
	}
	if n, err := strconv.Atoi(v); err == nil {
		return capMinutes(n)
	}

	total := 0.0
	for _, m := range durationRe.FindAllStringSubmatch(v, -1) {
		amount, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if strings.HasPrefix(m[2], "h") {
			total += amount * 60
		} else {
			total += amount
		}
	}
	return capMinutes(int(total + 0.5))
}

func capMinutes(n int) int {
	if n < 0 {
		return 0
	}
	if n > model.MaxDurationMinutes {
		return model.MaxDurationMinutes
	}
	return n
}

func coalesce(newVal *string, existing string) string {
	if newVal != nil {
		return *newVal
	}
	return existing
}
