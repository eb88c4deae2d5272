package usecase

import (
	"context"
	"strings"
	"time"

	"lifeos/internal/item"
	repo "lifeos/internal/item/repository"
	"lifeos/internal/model"
)

// Create validates the input and stores a top-level item with its sub-items.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input item.CreateItemInput) (item.CreateItemOutput, error) {
	now := uc.now()

	parent, err := uc.buildItem(sc, input, now)
	if err != nil {
		return item.CreateItemOutput{}, err
	}

	children := make([]model.Item, 0, len(input.SubItems))
	for _, sub := range input.SubItems {
		child, err := uc.buildChild(parent, sub, now)
		if err != nil {
			return item.CreateItemOutput{}, err
		}
		children = append(children, child)
	}
	if parent.IsCompleted {
		if err := guardChildren(model.Item{Children: children}); err != nil {
			return item.CreateItemOutput{}, err
		}
	}

	created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{Item: parent, Children: children})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateItemOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Create: item %d (%s) created with %d sub-items", created.ID, created.ItemType, len(created.Children))
	return item.CreateItemOutput{Item: created}, nil
}

func (uc *implUseCase) buildItem(sc model.Scope, input item.CreateItemInput, now time.Time) (model.Item, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Item{}, item.ErrTitleRequired
	}

	itemType, err := parseItemType(input.ItemType)
	if err != nil {
		return model.Item{}, err
	}

	due, err := uc.parseDueDate(input.DueDate, now)
	if err != nil {
		return model.Item{}, err
	}

	for _, clock := range []string{input.DueTime, input.ScheduledTime} {
		if err := validateClock(clock); err != nil {
			return model.Item{}, err
		}
	}
	if err := validateSchedule(input.ScheduleType); err != nil {
		return model.Item{}, err
	}
	if err := validateRecurrence(input.RecurrenceType); err != nil {
		return model.Item{}, err
	}

	state := defaultState(due)
	if input.State != "" {
		if state, err = parseState(input.State); err != nil {
			return model.Item{}, err
		}
	}

	it := model.Item{
		UserID:             sc.UserID,
		Title:              title,
		Description:        input.Description,
		ItemType:           itemType,
		State:              state,
		DueDate:            due,
		DueTime:            input.DueTime,
		ScheduleType:       input.ScheduleType,
		ScheduleDays:       input.ScheduleDays,
		ScheduledTime:      input.ScheduledTime,
		RecurrenceType:     input.RecurrenceType,
		RecurrenceInterval: input.RecurrenceInterval,
		RecurrenceAnchor:   input.RecurrenceAnchor,
		ShowOnCalendar:     input.ShowOnCalendar,
		Priority:           input.Priority,
		Complexity:         input.Complexity,
		Energy:             input.Energy,
		Duration:           input.Duration,
		DurationMinutes:    parseDurationMinutes(input.Duration),
	}
	if state == model.ItemStateCompleted {
		it.IsCompleted = true
		it.CompletedAt = &now
	}
	return it, nil
}

// buildChild creates a sub-item that inherits state and schedule type from parent.
func (uc *implUseCase) buildChild(parent model.Item, sub item.SubItemInput, now time.Time) (model.Item, error) {
	child := model.Item{
		UserID:       parent.UserID,
		ItemType:     model.ItemTypeTask,
		State:        parent.State,
		ScheduleType: parent.ScheduleType,
	}
	if err := uc.applySubItem(&child, sub, now); err != nil {
		return model.Item{}, err
	}
	return child, nil
}

// applySubItem copies the mutable sub-item fields onto child.
func (uc *implUseCase) applySubItem(child *model.Item, sub item.SubItemInput, now time.Time) error {
	child.Title = strings.TrimSpace(sub.Title)
	if child.Title == "" {
		return item.ErrTitleRequired
	}
	child.Description = sub.Description
	child.Priority = sub.Priority
	child.Duration = sub.Duration
	child.DurationMinutes = parseDurationMinutes(sub.Duration)

	if sub.DueDate != nil {
		due, err := uc.parseDueDate(*sub.DueDate, now)
		if err != nil {
			return err
		}
		child.DueDate = due
	}
	if sub.DueTime != nil {
		if err := validateClock(*sub.DueTime); err != nil {
			return err
		}
		child.DueTime = *sub.DueTime
	}
	return nil
}

// parseDueDate resolves an absolute or relative due date. Empty means no date.
func (uc *implUseCase) parseDueDate(v string, now time.Time) (*time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	res, err := uc.dateMath.ParseDue(v, now)
	if err != nil {
		return nil, item.ErrInvalidDate
	}
	return &res.Date, nil
}
