package http

import (
	"lifeos/internal/calendar"
	itemHTTP "lifeos/internal/item/delivery/http"
	"lifeos/internal/model"
	"lifeos/internal/recurrence"
	"lifeos/pkg/datemath"
	"lifeos/pkg/gcalendar"
	"lifeos/pkg/response"
)

// --- Request DTOs ---

type itemsReq struct {
	Date  string `form:"date"`
	Today string `form:"today"`
}

func (r itemsReq) toInput() calendar.ItemsInput {
	return calendar.ItemsInput{Date: r.Date, Today: r.Today}
}

type eventsReq struct {
	Date string `form:"date"`
}

func (r eventsReq) toInput() calendar.EventsInput {
	return calendar.EventsInput{Date: r.Date}
}

type createEventReq struct {
	CalendarID      string `json:"calendarId"`
	Summary         string `json:"summary"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

func (r createEventReq) toInput() calendar.CreateEventInput {
	return calendar.CreateEventInput{
		CalendarID:      r.CalendarID,
		Summary:         r.Summary,
		Description:     r.Description,
		Date:            r.Date,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		DurationMinutes: r.DurationMinutes,
	}
}

type deleteEventReq struct {
	CalendarID string
	EventID    string
}

func (r deleteEventReq) toInput() calendar.DeleteEventInput {
	return calendar.DeleteEventInput{CalendarID: r.CalendarID, EventID: r.EventID}
}

// --- Response DTOs ---

// calendarItemResp adds the completion state of per-date items on the viewed date.
type calendarItemResp struct {
	itemHTTP.ItemResp
	CompletedForDate bool `json:"completedForDate"`
}

func newCalendarItems(items []model.Item, dateKey string) []calendarItemResp {
	out := make([]calendarItemResp, len(items))
	for i, it := range items {
		completed := it.IsCompleted
		if recurrence.IsPerDate(recurrence.ForItem(it)) {
			completed = it.HasCompletionOn(dateKey)
		}
		out[i] = calendarItemResp{
			ItemResp:         itemHTTP.NewItemResp(it),
			CompletedForDate: completed,
		}
	}
	return out
}

type itemsResp struct {
	Date            response.Date      `json:"date"`
	Today           response.Date      `json:"today"`
	Reminders       []calendarItemResp `json:"reminders"`
	Overdue         []calendarItemResp `json:"overdue"`
	Scheduled       []calendarItemResp `json:"scheduled"`
	ScheduledNoTime []calendarItemResp `json:"scheduledNoTime"`
	Pinned          []calendarItemResp `json:"pinned"`
	Backlog         []calendarItemResp `json:"backlog"`
	Habits          []calendarItemResp `json:"habits"`
}

func (h *handler) newItemsResp(out calendar.ItemsOutput) itemsResp {
	key := datemath.Key(out.Date)
	b := out.Buckets
	return itemsResp{
		Date:            response.Date(out.Date),
		Today:           response.Date(out.Today),
		Reminders:       newCalendarItems(b.Reminders, key),
		Overdue:         newCalendarItems(b.Overdue, key),
		Scheduled:       newCalendarItems(b.Scheduled, key),
		ScheduledNoTime: newCalendarItems(b.ScheduledNoTime, key),
		Pinned:          newCalendarItems(b.Pinned, key),
		Backlog:         newCalendarItems(b.Backlog, key),
		Habits:          newCalendarItems(b.Habits, key),
	}
}

type eventResp struct {
	ID          string            `json:"id"`
	CalendarID  string            `json:"calendarId"`
	Summary     string            `json:"summary"`
	Description string            `json:"description"`
	Location    string            `json:"location"`
	Link        string            `json:"link"`
	AllDay      bool              `json:"allDay"`
	Start       response.DateTime `json:"start"`
	End         response.DateTime `json:"end"`
}

func newEventResp(e gcalendar.Event) eventResp {
	return eventResp{
		ID:          e.ID,
		CalendarID:  e.CalendarID,
		Summary:     e.Summary,
		Description: e.Description,
		Location:    e.Location,
		Link:        e.HtmlLink,
		AllDay:      e.AllDay,
		Start:       response.DateTime(e.StartTime),
		End:         response.DateTime(e.EndTime),
	}
}

type eventsResp struct {
	Events []eventResp `json:"events"`
}

func (h *handler) newEventsResp(out calendar.EventsOutput) eventsResp {
	events := make([]eventResp, len(out.Events))
	for i, e := range out.Events {
		events[i] = newEventResp(e)
	}
	return eventsResp{Events: events}
}

type createEventResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newCreateEventResp(out calendar.CreateEventOutput) createEventResp {
	return createEventResp{Event: newEventResp(out.Event)}
}
