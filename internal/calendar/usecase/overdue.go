package usecase

import (
	"context"
	"time"

	repo "lifeos/internal/item/repository"
	"lifeos/internal/model"
	"lifeos/pkg/datemath"
)

// isNewlyOverdue reports whether it has to be flagged overdue as of today.
func isNewlyOverdue(it model.Item, today time.Time) bool {
	return it.State == model.ItemStateActive &&
		it.DueDate != nil &&
		!it.IsCompleted &&
		!it.IsOverdue &&
		datemath.Key(*it.DueDate) < datemath.Key(today)
}

// flagOverdue persists the overdue flag for newly overdue items in one batch
// and mirrors it on items.
func (uc *implUseCase) flagOverdue(ctx context.Context, items []model.Item, today time.Time) error {
	var (
		ids     []uint
		indexes []int
	)
	for i, it := range items {
		if isNewlyOverdue(it, today) {
			ids = append(ids, it.ID)
			indexes = append(indexes, i)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	if err := uc.repo.MarkOverdue(ctx, ids); err != nil {
		uc.l.Errorf(ctx, "uc.flagOverdue MarkOverdue: %v", err)
		return err
	}
	for _, i := range indexes {
		items[i].IsOverdue = true
	}
	uc.l.Infof(ctx, "uc.flagOverdue: flagged %d items as overdue", len(ids))
	return nil
}

// SweepOverdue flags newly overdue items of every user as of the server's today.
func (uc *implUseCase) SweepOverdue(ctx context.Context) (int, error) {
	today := uc.dateMath.Today(uc.now())

	candidates, err := uc.repo.ListOverdueCandidates(ctx, repo.ListOverdueCandidatesOptions{Before: today})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SweepOverdue ListOverdueCandidates: %v", err)
		return 0, err
	}

	var ids []uint
	for _, it := range candidates {
		if isNewlyOverdue(it, today) {
			ids = append(ids, it.ID)
		}
	}
	if err := uc.repo.MarkOverdue(ctx, ids); err != nil {
		uc.l.Errorf(ctx, "uc.SweepOverdue MarkOverdue: %v", err)
		return 0, err
	}

	uc.l.Infof(ctx, "uc.SweepOverdue: flagged %d items as of %s", len(ids), datemath.Key(today))
	return len(ids), nil
}
