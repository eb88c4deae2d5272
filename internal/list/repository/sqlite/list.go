package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	repo "lifeos/internal/list/repository"
	"lifeos/internal/model"
)

// CreateList inserts the list and its entries in one statement batch.
func (r *implRepository) CreateList(ctx context.Context, l model.List) (model.List, error) {
	if err := r.db.WithContext(ctx).Create(&l).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateList"), err)
		return model.List{}, repo.ErrFailedToInsert
	}
	return l, nil
}

// GetOneList returns a zero-value List (ID == 0) when not found.
func (r *implRepository) GetOneList(ctx context.Context, opt repo.GetOneListOptions) (model.List, error) {
	var l model.List
	err := r.buildGetOneQuery(r.db.WithContext(ctx), opt).Take(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.List{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneList"), err)
		return model.List{}, repo.ErrFailedToGet
	}
	return l, nil
}

func (r *implRepository) ListLists(ctx context.Context, opt repo.ListListsOptions) ([]model.List, int, error) {
	var total int64
	if err := r.buildListFilter(r.db.WithContext(ctx).Model(&model.List{}), opt).Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListLists"), err)
		return nil, 0, repo.ErrFailedToList
	}

	lists := []model.List{}
	if err := r.buildListQuery(r.db.WithContext(ctx), opt).Find(&lists).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListLists"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return lists, int(total), nil
}

// UpdateList saves the list row only. Entries change through EntryRepository.
func (r *implRepository) UpdateList(ctx context.Context, l model.List) (model.List, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(&l).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateList"), err)
		return model.List{}, repo.ErrFailedToUpdate
	}
	return l, nil
}

// DeleteList removes the list and its entries atomically.
func (r *implRepository) DeleteList(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", id).Delete(&model.ListEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.List{}, id).Error
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteList"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
