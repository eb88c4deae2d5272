package usecase

import (
	"context"
	"strings"
	"time"

	"lifeos/internal/calendar"
	repo "lifeos/internal/item/repository"
	"lifeos/internal/model"
	"lifeos/pkg/datemath"
)

// Items categorizes the caller's top-level items for input.Date.
// Overdue detection uses today, never the viewed date.
func (uc *implUseCase) Items(ctx context.Context, sc model.Scope, input calendar.ItemsInput) (calendar.ItemsOutput, error) {
	date, err := parseRequiredDate(input.Date)
	if err != nil {
		return calendar.ItemsOutput{}, err
	}

	today := uc.dateMath.Today(uc.now())
	if strings.TrimSpace(input.Today) != "" {
		if today, err = datemath.ParseDate(input.Today); err != nil {
			return calendar.ItemsOutput{}, calendar.ErrInvalidDate
		}
	}

	items, _, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		UserID:       sc.UserID,
		TopLevelOnly: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Items ListItems: %v", err)
		return calendar.ItemsOutput{}, err
	}

	if err := uc.flagOverdue(ctx, items, today); err != nil {
		return calendar.ItemsOutput{}, err
	}

	buckets := categorize(items, date)
	sortBuckets(&buckets)

	return calendar.ItemsOutput{Date: date, Today: today, Buckets: buckets}, nil
}

func parseRequiredDate(v string) (time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return time.Time{}, calendar.ErrMissingDate
	}
	d, err := datemath.ParseDate(v)
	if err != nil {
		return time.Time{}, calendar.ErrInvalidDate
	}
	return d, nil
}
