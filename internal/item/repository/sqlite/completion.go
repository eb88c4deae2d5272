package sqlite

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	repo "lifeos/internal/item/repository"
	"lifeos/internal/model"
)

// SetCompleted stores a one-shot completion transition.
func (r *implRepository) SetCompleted(ctx context.Context, opt repo.SetCompletedOptions) error {
	err := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ?", opt.ID).
		Updates(map[string]any{
			"is_completed": opt.IsCompleted,
			"completed_at": opt.CompletedAt,
			"state":        opt.State,
		}).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetCompleted"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// CreateCompletion logs a completion for date. An existing row for the same date is kept.
func (r *implRepository) CreateCompletion(ctx context.Context, itemID uint, date string) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.ItemCompletion{ItemID: itemID, CompletionDate: date}).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCompletion"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// DeleteCompletion removes the completion logged for date.
func (r *implRepository) DeleteCompletion(ctx context.Context, itemID uint, date string) error {
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND completion_date = ?", itemID, date).
		Delete(&model.ItemCompletion{}).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteCompletion"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// AdvanceItem moves the due date forward, resets completion and the overdue
// flag, and logs the completion, atomically.
func (r *implRepository) AdvanceItem(ctx context.Context, opt repo.AdvanceItemOptions) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Item{}).
			Where("id = ?", opt.ID).
			Updates(map[string]any{
				"due_date":     opt.NextDueDate,
				"is_completed": false,
				"completed_at": nil,
				"is_overdue":   false,
			}).Error
		if err != nil {
			return err
		}
		// One history row per item per date: a second completion on the same
		// day still advances the due date but logs nothing new.
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.ItemCompletion{ItemID: opt.ID, CompletionDate: opt.CompletionDate}).Error
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AdvanceItem"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
