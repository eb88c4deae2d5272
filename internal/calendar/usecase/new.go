package usecase

import (
	"time"

	"lifeos/internal/calendar"
	"lifeos/internal/item/repository"
	"lifeos/pkg/datemath"
	"lifeos/pkg/log"
)

const defaultCalendarID = "primary"

// implUseCase is the private implementation of calendar.UseCase.
type implUseCase struct {
	l           log.Logger
	repo        repository.ItemRepository
	events      calendar.EventClient
	calendarIDs []string
	dateMath    *datemath.Parser
	now         func() time.Time
}

// New creates a new calendar UseCase. events may be nil when no external
// calendar is configured; calendarIDs defaults to the primary calendar.
func New(
	l log.Logger,
	repo repository.ItemRepository,
	events calendar.EventClient,
	calendarIDs []string,
	dateMath *datemath.Parser,
) *implUseCase {
	if len(calendarIDs) == 0 {
		calendarIDs = []string{defaultCalendarID}
	}
	return &implUseCase{
		l:           l,
		repo:        repo,
		events:      events,
		calendarIDs: calendarIDs,
		dateMath:    dateMath,
		now:         time.Now,
	}
}
