package sqlite

import (
	"context"
	"time"

	"gorm.io/gorm"

	repo "lifeos/internal/list/repository"
	"lifeos/internal/model"
)

func (r *implRepository) CreateEntry(ctx context.Context, e model.ListEntry) (model.ListEntry, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last int
		err := tx.Model(&model.ListEntry{}).
			Where("list_id = ?", e.ListID).
			Select("COALESCE(MAX(position), -1)").
			Scan(&last).Error
		if err != nil {
			return err
		}
		e.Position = last + 1
		if err := tx.Create(&e).Error; err != nil {
			return err
		}
		return touchList(tx, e.ListID)
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEntry"), err)
		return model.ListEntry{}, repo.ErrFailedToInsert
	}
	return e, nil
}

func (r *implRepository) UpdateEntry(ctx context.Context, e model.ListEntry) (model.ListEntry, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&e).Error; err != nil {
			return err
		}
		return touchList(tx, e.ListID)
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEntry"), err)
		return model.ListEntry{}, repo.ErrFailedToUpdate
	}
	return e, nil
}

func (r *implRepository) DeleteEntry(ctx context.Context, opt repo.DeleteEntryOptions) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND list_id = ?", opt.EntryID, opt.ListID).
			Delete(&model.ListEntry{}).Error
		if err != nil {
			return err
		}
		return touchList(tx, opt.ListID)
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEntry"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) DeleteCheckedEntries(ctx context.Context, listID uint) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("list_id = ? AND checked = ?", listID, true).Delete(&model.ListEntry{})
		if res.Error != nil {
			return res.Error
		}
		n = res.RowsAffected
		return touchList(tx, listID)
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteCheckedEntries"), err)
		return 0, repo.ErrFailedToDelete
	}
	return int(n), nil
}

// touchList bumps updated_at so edited lists sort first.
func touchList(tx *gorm.DB, listID uint) error {
	return tx.Model(&model.List{}).Where("id = ?", listID).Update("updated_at", time.Now()).Error
}
