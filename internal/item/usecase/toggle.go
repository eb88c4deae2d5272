package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"lifeos/internal/item"
	"lifeos/internal/model"
	"lifeos/pkg/datemath"
)

// Toggle flips the completion of an item for input.Date, or today when empty.
func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, input item.ToggleInput) (item.ToggleOutput, error) {
	it, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return item.ToggleOutput{}, err
	}

	date, err := uc.toggleDate(input.Date)
	if err != nil {
		return item.ToggleOutput{}, err
	}

	out, err := uc.policyFor(it).toggle(ctx, it, date)
	if err != nil {
		var blocked *item.IncompleteChildrenError
		if !errors.As(err, &blocked) {
			uc.l.Errorf(ctx, "uc.Toggle item %d: %v", it.ID, err)
		}
		return item.ToggleOutput{}, err
	}
	return out, nil
}

func (uc *implUseCase) toggleDate(v string) (time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return uc.dateMath.Today(uc.now()), nil
	}
	d, err := datemath.ParseDate(v)
	if err != nil {
		return time.Time{}, item.ErrInvalidDate
	}
	return d, nil
}
