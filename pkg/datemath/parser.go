package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser resolves dates relative to "now" in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns the calendar date of now in the parser's timezone.
func (p *Parser) Today(now time.Time) time.Time {
	return CalendarDate(now, p.location)
}

// Parse converts a relative date string to a calendar date.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))
	today := p.Today(baseTime)

	switch relative {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, today)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, today)
	}

	return time.Time{}, fmt.Errorf("unrecognized date expression: %q", relative)
}

// ParseDue accepts either an absolute YYYY-MM-DD date or a relative expression.
func (p *Parser) ParseDue(value string, baseTime time.Time) (ParseResult, error) {
	if d, err := ParseDate(value); err == nil {
		return ParseResult{Date: d}, nil
	}
	d, err := p.Parse(value, baseTime)
	if err != nil {
		return ParseResult{}, err
	}
	return ParseResult{Date: d, Relative: true}, nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, today time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return today.AddDate(0, 0, amount), nil
	case strings.HasPrefix(unit, "week"):
		return today.AddDate(0, 0, amount*7), nil
	default:
		return today.AddDate(0, amount, 0), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, today time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	target, ok := ParseWeekday(dayName)
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(target - today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return today.AddDate(0, 0, daysUntil), nil
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(Layout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return d, nil
}

// CalendarDate returns the calendar date of t as observed in loc.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Key formats a calendar date as YYYY-MM-DD.
func Key(t time.Time) string {
	return t.UTC().Format(Layout)
}

// ParseWeekday accepts full or 3-letter English day names, case-insensitively.
func ParseWeekday(name string) (time.Weekday, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) < 3 {
		return 0, false
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, true
		}
	}
	return 0, false
}

// MondayIndex returns the weekday in a 0=Monday..6=Sunday frame.
func MondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
