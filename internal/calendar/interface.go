package calendar

import (
	"context"

	"lifeos/internal/model"
	"lifeos/pkg/gcalendar"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Items flags newly overdue items and returns the caller's items
	// categorized for the requested date.
	Items(ctx context.Context, sc model.Scope, input ItemsInput) (ItemsOutput, error)

	Events(ctx context.Context, sc model.Scope, input EventsInput) (EventsOutput, error)
	CreateEvent(ctx context.Context, sc model.Scope, input CreateEventInput) (CreateEventOutput, error)
	DeleteEvent(ctx context.Context, sc model.Scope, input DeleteEventInput) error

	// SweepOverdue flags newly overdue items of every user and returns how many were flagged.
	SweepOverdue(ctx context.Context) (int, error)
}

// EventClient is the external calendar provider.
type EventClient interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}
