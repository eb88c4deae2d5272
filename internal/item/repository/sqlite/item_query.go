package sqlite

import (
	"gorm.io/gorm"

	repo "lifeos/internal/item/repository"
	"lifeos/internal/model"
)

const defaultOrder = "created_at DESC, id DESC"

// withRelations preloads completions and children (oldest first) with their completions.
func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Completions").
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Preload("Children.Completions")
}

// buildGetOneQuery applies every non-zero filter as an AND condition.
func (r *implRepository) buildGetOneQuery(db *gorm.DB, opt repo.GetOneItemOptions) *gorm.DB {
	if opt.ID != 0 {
		db = db.Where("id = ?", opt.ID)
	}
	if opt.UserID != 0 {
		db = db.Where("user_id = ?", opt.UserID)
	}
	return db
}

// buildListFilter applies ListItems filters without pagination, for counting.
func (r *implRepository) buildListFilter(db *gorm.DB, opt repo.ListItemsOptions) *gorm.DB {
	db = db.Model(&model.Item{}).Where("user_id = ?", opt.UserID)
	if opt.TopLevelOnly {
		db = db.Where("parent_item_id IS NULL")
	}
	if opt.ItemType != "" {
		db = db.Where("item_type = ?", opt.ItemType)
	}
	if opt.State != "" {
		db = db.Where("state = ?", opt.State)
	}
	return db
}

// buildListQuery adds ordering and pagination on top of buildListFilter.
func (r *implRepository) buildListQuery(db *gorm.DB, opt repo.ListItemsOptions) *gorm.DB {
	db = r.buildListFilter(db, opt)

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = defaultOrder
	}
	db = db.Order(orderBy)

	if opt.Limit > 0 {
		db = db.Limit(opt.Limit)
	}
	if opt.Offset > 0 {
		db = db.Offset(opt.Offset)
	}
	return db
}
