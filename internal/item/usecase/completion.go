package usecase

import (
	"context"
	"time"

	"lifeos/internal/item"
	repo "lifeos/internal/item/repository"
	"lifeos/internal/model"
	"lifeos/internal/recurrence"
	"lifeos/pkg/datemath"
)

// completionPolicy flips the completion of one item for a calendar date.
type completionPolicy interface {
	toggle(ctx context.Context, it model.Item, date time.Time) (item.ToggleOutput, error)
}

// policyFor picks the completion policy matching the item's recurrence.
func (uc *implUseCase) policyFor(it model.Item) completionPolicy {
	rule := recurrence.ForItem(it)
	if recurrence.IsPerDate(rule) {
		return perDateLog{repo: uc.repo}
	}
	if adv, ok := recurrence.AsAdvancer(rule); ok {
		return advanceOnComplete{repo: uc.repo, rule: adv}
	}
	return oneShot{repo: uc.repo, now: uc.now}
}

// guardChildren blocks a transition to completed while children are open.
func guardChildren(it model.Item) error {
	if n := it.IncompleteChildren(); n > 0 {
		return &item.IncompleteChildrenError{Count: n}
	}
	return nil
}

// oneShot flips isCompleted and the lifecycle state.
type oneShot struct {
	repo repo.CompletionRepository
	now  func() time.Time
}

func (p oneShot) toggle(ctx context.Context, it model.Item, _ time.Time) (item.ToggleOutput, error) {
	if it.IsCompleted {
		state := model.ItemStateBacklog
		if it.DueDate != nil {
			state = model.ItemStateActive
		}
		if err := p.repo.SetCompleted(ctx, repo.SetCompletedOptions{ID: it.ID, State: state}); err != nil {
			return item.ToggleOutput{}, err
		}
		return item.ToggleOutput{Completed: false}, nil
	}

	if err := guardChildren(it); err != nil {
		return item.ToggleOutput{}, err
	}
	now := p.now()
	err := p.repo.SetCompleted(ctx, repo.SetCompletedOptions{
		ID:          it.ID,
		IsCompleted: true,
		CompletedAt: &now,
		State:       model.ItemStateCompleted,
	})
	if err != nil {
		return item.ToggleOutput{}, err
	}
	return item.ToggleOutput{Completed: true}, nil
}

// perDateLog adds or removes the completion row of one date.
type perDateLog struct {
	repo repo.CompletionRepository
}

func (p perDateLog) toggle(ctx context.Context, it model.Item, date time.Time) (item.ToggleOutput, error) {
	key := datemath.Key(date)
	if it.HasCompletionOn(key) {
		if err := p.repo.DeleteCompletion(ctx, it.ID, key); err != nil {
			return item.ToggleOutput{}, err
		}
		return item.ToggleOutput{Completed: false}, nil
	}

	if err := guardChildren(it); err != nil {
		return item.ToggleOutput{}, err
	}
	if err := p.repo.CreateCompletion(ctx, it.ID, key); err != nil {
		return item.ToggleOutput{}, err
	}
	return item.ToggleOutput{Completed: true}, nil
}

// advanceOnComplete logs the completion and moves the due date forward.
type advanceOnComplete struct {
	repo repo.CompletionRepository
	rule recurrence.Advancer
}

func (p advanceOnComplete) toggle(ctx context.Context, it model.Item, date time.Time) (item.ToggleOutput, error) {
	if err := guardChildren(it); err != nil {
		return item.ToggleOutput{}, err
	}

	next := p.rule.NextDue(it.DueDate, date)
	err := p.repo.AdvanceItem(ctx, repo.AdvanceItemOptions{
		ID:             it.ID,
		NextDueDate:    next,
		CompletionDate: datemath.Key(date),
	})
	if err != nil {
		return item.ToggleOutput{}, err
	}
	return item.ToggleOutput{Completed: true, Advanced: true, NextDueDate: &next}, nil
}
