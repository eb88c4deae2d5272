package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	repo "lifeos/internal/item/repository"
	"lifeos/internal/model"
)

// CreateItem inserts an Item and its children and returns the loaded entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	parent := opt.Item
	parent.Completions = nil
	parent.Children = nil
	parent.IsParent = len(opt.Children) > 0

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&parent).Error; err != nil {
			return err
		}
		for _, child := range opt.Children {
			child.ParentItemID = &parent.ID
			child.UserID = parent.UserID
			if err := tx.Omit(clause.Associations).Create(&child).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}

	return r.GetOneItem(ctx, repo.GetOneItemOptions{ID: parent.ID})
}

// GetOneItem retrieves a single Item by the provided filters (AND condition).
// Returns zero-value Item (ID == 0) when not found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
	var item model.Item
	q := r.buildGetOneQuery(withRelations(r.db.WithContext(ctx)), opt)
	err := q.Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return item, nil
}

// ListItems returns a page of Items, newest first, and the total count.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, int, error) {
	var total int64
	if err := r.buildListFilter(r.db.WithContext(ctx), opt).Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	var items []model.Item
	if err := r.buildListQuery(withRelations(r.db.WithContext(ctx)), opt).Find(&items).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return items, int(total), nil
}

// UpdateItem saves every column of the item and reconciles its children.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	item := opt.Item
	item.Completions = nil
	item.Children = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(&item).Error; err != nil {
			return err
		}
		if opt.SubItems == nil {
			return nil
		}

		if ids := opt.SubItems.DeleteIDs; len(ids) > 0 {
			if err := tx.Where("item_id IN ?", ids).Delete(&model.ItemCompletion{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ? AND parent_item_id = ?", ids, item.ID).Delete(&model.Item{}).Error; err != nil {
				return err
			}
		}
		for _, child := range opt.SubItems.Update {
			child.Completions = nil
			child.Children = nil
			if err := tx.Omit(clause.Associations).Save(&child).Error; err != nil {
				return err
			}
		}
		for _, child := range opt.SubItems.Create {
			child.ParentItemID = &item.ID
			child.UserID = item.UserID
			if err := tx.Omit(clause.Associations).Create(&child).Error; err != nil {
				return err
			}
		}

		var children int64
		if err := tx.Model(&model.Item{}).Where("parent_item_id = ?", item.ID).Count(&children).Error; err != nil {
			return err
		}
		return tx.Model(&model.Item{}).Where("id = ?", item.ID).UpdateColumn("is_parent", children > 0).Error
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}

	return r.GetOneItem(ctx, repo.GetOneItemOptions{ID: item.ID})
}

// DeleteItem removes completions, then children, then the item itself.
func (r *implRepository) DeleteItem(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var childIDs []uint
		if err := tx.Model(&model.Item{}).Where("parent_item_id = ?", id).Pluck("id", &childIDs).Error; err != nil {
			return err
		}

		ids := append(childIDs, id)
		if err := tx.Where("item_id IN ?", ids).Delete(&model.ItemCompletion{}).Error; err != nil {
			return err
		}
		if len(childIDs) > 0 {
			if err := tx.Where("id IN ?", childIDs).Delete(&model.Item{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Item{}, id).Error
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ListOverdueCandidates returns top-level items that may need the overdue flag.
// Callers still apply the date check on the loaded rows.
func (r *implRepository) ListOverdueCandidates(ctx context.Context, opt repo.ListOverdueCandidatesOptions) ([]model.Item, error) {
	q := r.db.WithContext(ctx).
		Where("parent_item_id IS NULL").
		Where("state = ? AND due_date IS NOT NULL", model.ItemStateActive).
		Where("is_completed = ? AND is_overdue = ?", false, false)
	if opt.UserID != 0 {
		q = q.Where("user_id = ?", opt.UserID)
	}
	if !opt.Before.IsZero() {
		q = q.Where("due_date < ?", opt.Before)
	}

	var items []model.Item
	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListOverdueCandidates"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// MarkOverdue sets the sticky overdue flag on every id in one statement.
func (r *implRepository) MarkOverdue(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id IN ?", ids).
		UpdateColumn("is_overdue", true).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkOverdue"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
