package usecase

import (
	"context"
	"regexp"
	"slices"
	"strings"
	"time"

	"lifeos/internal/calendar"
	"lifeos/internal/model"
	"lifeos/pkg/gcalendar"
)

const defaultEventMinutes = 60

var clockRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Events lists the events of every configured calendar on input.Date.
// A calendar that fails is logged and skipped.
func (uc *implUseCase) Events(ctx context.Context, sc model.Scope, input calendar.EventsInput) (calendar.EventsOutput, error) {
	date, err := parseRequiredDate(input.Date)
	if err != nil {
		return calendar.EventsOutput{}, err
	}
	if uc.events == nil {
		return calendar.EventsOutput{Events: []gcalendar.Event{}}, nil
	}

	loc := uc.dateMath.Location()
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)

	events := []gcalendar.Event{}
	for _, id := range uc.calendarIDs {
		got, err := uc.events.ListEvents(ctx, gcalendar.ListEventsRequest{
			CalendarID: id,
			TimeMin:    start,
			TimeMax:    end,
		})
		if err != nil {
			uc.l.Warnf(ctx, "uc.Events: calendar %s failed, skipping: %v", id, err)
			continue
		}
		events = append(events, got...)
	}

	slices.SortStableFunc(events, func(a, b gcalendar.Event) int {
		return a.StartTime.Compare(b.StartTime)
	})
	return calendar.EventsOutput{Events: events}, nil
}

// CreateEvent creates an event on the requested or first configured calendar.
func (uc *implUseCase) CreateEvent(ctx context.Context, sc model.Scope, input calendar.CreateEventInput) (calendar.CreateEventOutput, error) {
	if uc.events == nil {
		return calendar.CreateEventOutput{}, calendar.ErrCalendarNotConfigured
	}

	req, err := uc.buildEventRequest(input)
	if err != nil {
		return calendar.CreateEventOutput{}, err
	}

	event, err := uc.events.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateEvent: %v", err)
		return calendar.CreateEventOutput{}, err
	}
	return calendar.CreateEventOutput{Event: *event}, nil
}

// DeleteEvent removes an event from the requested or first configured calendar.
func (uc *implUseCase) DeleteEvent(ctx context.Context, sc model.Scope, input calendar.DeleteEventInput) error {
	if uc.events == nil {
		return calendar.ErrCalendarNotConfigured
	}
	if strings.TrimSpace(input.EventID) == "" {
		return calendar.ErrMissingEventID
	}

	calendarID := input.CalendarID
	if calendarID == "" {
		calendarID = uc.calendarIDs[0]
	}
	if err := uc.events.DeleteEvent(ctx, calendarID, input.EventID); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteEvent: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) buildEventRequest(input calendar.CreateEventInput) (gcalendar.CreateEventRequest, error) {
	summary := strings.TrimSpace(input.Summary)
	if summary == "" {
		return gcalendar.CreateEventRequest{}, calendar.ErrMissingSummary
	}
	date, err := parseRequiredDate(input.Date)
	if err != nil {
		return gcalendar.CreateEventRequest{}, err
	}

	calendarID := input.CalendarID
	if calendarID == "" {
		calendarID = uc.calendarIDs[0]
	}
	loc := uc.dateMath.Location()
	req := gcalendar.CreateEventRequest{
		CalendarID:  calendarID,
		Summary:     summary,
		Description: input.Description,
		Timezone:    loc.String(),
	}

	if input.StartTime == "" {
		req.AllDay = true
		req.StartTime = date
		req.EndTime = date.AddDate(0, 0, 1)
		return req, nil
	}

	start, err := atClock(date, input.StartTime, loc)
	if err != nil {
		return gcalendar.CreateEventRequest{}, err
	}
	var end time.Time
	if input.EndTime != "" {
		if end, err = atClock(date, input.EndTime, loc); err != nil {
			return gcalendar.CreateEventRequest{}, err
		}
	} else {
		minutes := input.DurationMinutes
		if minutes <= 0 {
			minutes = defaultEventMinutes
		}
		end = start.Add(time.Duration(minutes) * time.Minute)
	}
	if !end.After(start) {
		return gcalendar.CreateEventRequest{}, calendar.ErrInvalidEventRange
	}

	req.StartTime = start
	req.EndTime = end
	return req, nil
}

// atClock combines a calendar date and an HH:MM clock in loc.
func atClock(date time.Time, clock string, loc *time.Location) (time.Time, error) {
	if !clockRe.MatchString(clock) {
		return time.Time{}, calendar.ErrInvalidTime
	}
	t, _ := time.Parse("15:04", clock)
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}
