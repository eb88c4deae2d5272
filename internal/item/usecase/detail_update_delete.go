package usecase

import (
	"context"
	"strings"
	"time"

	"lifeos/internal/item"
	repo "lifeos/internal/item/repository"
	"lifeos/internal/model"
)

// Detail retrieves one of the caller's items. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id uint) (item.DetailItemOutput, error) {
	it, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return item.DetailItemOutput{}, err
	}
	return item.DetailItemOutput{Item: it}, nil
}

// Update applies a partial update and, when SubItems is set, reconciles the
// children in the same transaction. isOverdue only changes when sent explicitly.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
	existing, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return item.UpdateItemOutput{}, err
	}

	now := uc.now()
	it := existing
	if err := uc.applyUpdate(&it, input, now); err != nil {
		return item.UpdateItemOutput{}, err
	}

	var changes *repo.SubItemChanges
	if input.SubItems != nil {
		changes, err = uc.reconcileSubItems(existing, *input.SubItems, now)
		if err != nil {
			return item.UpdateItemOutput{}, err
		}
	}
	if input.State != nil {
		if err := syncCompletedState(&it, changes, now); err != nil {
			return item.UpdateItemOutput{}, err
		}
	}

	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{Item: it, SubItems: changes})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return item.UpdateItemOutput{}, err
	}
	return item.UpdateItemOutput{Item: updated}, nil
}

// Delete removes one of the caller's items with its children and completions.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id uint) error {
	if _, err := uc.getOwned(ctx, sc, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id uint) (model.Item, error) {
	it, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwned GetOneItem: %v", err)
		return model.Item{}, err
	}
	if it.ID == 0 {
		return model.Item{}, item.ErrItemNotFound
	}
	return it, nil
}

func (uc *implUseCase) applyUpdate(it *model.Item, input item.UpdateItemInput, now time.Time) error {
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return item.ErrTitleRequired
		}
		it.Title = title
	}
	it.Description = coalesce(input.Description, it.Description)

	if input.ItemType != nil {
		t, err := parseItemType(*input.ItemType)
		if err != nil {
			return err
		}
		it.ItemType = t
	}
	if input.State != nil {
		s, err := parseState(*input.State)
		if err != nil {
			return err
		}
		it.State = s
	}
	if input.DueDate != nil {
		due, err := uc.parseDueDate(*input.DueDate, now)
		if err != nil {
			return err
		}
		it.DueDate = due
	}

	for _, clock := range []*string{input.DueTime, input.ScheduledTime} {
		if clock != nil {
			if err := validateClock(*clock); err != nil {
				return err
			}
		}
	}
	it.DueTime = coalesce(input.DueTime, it.DueTime)
	it.ScheduledTime = coalesce(input.ScheduledTime, it.ScheduledTime)

	if input.ScheduleType != nil {
		if err := validateSchedule(*input.ScheduleType); err != nil {
			return err
		}
		it.ScheduleType = *input.ScheduleType
	}
	it.ScheduleDays = coalesce(input.ScheduleDays, it.ScheduleDays)

	if input.RecurrenceType != nil {
		if err := validateRecurrence(*input.RecurrenceType); err != nil {
			return err
		}
		it.RecurrenceType = *input.RecurrenceType
	}
	if input.RecurrenceInterval != nil {
		it.RecurrenceInterval = *input.RecurrenceInterval
	}
	it.RecurrenceAnchor = coalesce(input.RecurrenceAnchor, it.RecurrenceAnchor)

	if input.ShowOnCalendar != nil {
		it.ShowOnCalendar = *input.ShowOnCalendar
	}
	if input.IsOverdue != nil {
		it.IsOverdue = *input.IsOverdue
	}

	it.Priority = coalesce(input.Priority, it.Priority)
	it.Complexity = coalesce(input.Complexity, it.Complexity)
	it.Energy = coalesce(input.Energy, it.Energy)
	if input.Duration != nil {
		it.Duration = *input.Duration
		it.DurationMinutes = parseDurationMinutes(*input.Duration)
	}
	return nil
}

// syncCompletedState keeps isCompleted and completedAt in step with a state
// change. Completing through the state field is refused while children are
// open, the same as a toggle.
func syncCompletedState(it *model.Item, changes *repo.SubItemChanges, now time.Time) error {
	if it.State != model.ItemStateCompleted {
		it.IsCompleted = false
		it.CompletedAt = nil
		return nil
	}
	if it.IsCompleted {
		return nil
	}
	check := *it
	if changes != nil {
		check.Children = append(append([]model.Item{}, changes.Create...), changes.Update...)
	}
	if err := guardChildren(check); err != nil {
		return err
	}
	it.IsCompleted = true
	it.CompletedAt = &now
	return nil
}

// reconcileSubItems maps the desired children onto creates, updates and
// deletes. Existing children missing from subs are deleted.
func (uc *implUseCase) reconcileSubItems(parent model.Item, subs []item.SubItemInput, now time.Time) (*repo.SubItemChanges, error) {
	existing := make(map[uint]model.Item, len(parent.Children))
	for _, child := range parent.Children {
		existing[child.ID] = child
	}

	changes := &repo.SubItemChanges{}
	seen := make(map[uint]bool, len(subs))
	for _, sub := range subs {
		if sub.ID == nil {
			child, err := uc.buildChild(parent, sub, now)
			if err != nil {
				return nil, err
			}
			changes.Create = append(changes.Create, child)
			continue
		}

		child, ok := existing[*sub.ID]
		if !ok {
			return nil, item.ErrSubItemNotFound
		}
		if err := uc.applySubItem(&child, sub, now); err != nil {
			return nil, err
		}
		changes.Update = append(changes.Update, child)
		seen[child.ID] = true
	}

	for _, child := range parent.Children {
		if !seen[child.ID] {
			changes.DeleteIDs = append(changes.DeleteIDs, child.ID)
		}
	}
	return changes, nil
}
