package sqlite

import (
	"strings"

	"gorm.io/gorm"

	repo "lifeos/internal/list/repository"
)

const (
	// Pinned lists first, then most recently edited.
	defaultOrder = "pinned DESC, updated_at DESC, id DESC"
	entryOrder   = "position ASC, id ASC"
)

func (r *implRepository) withEntries(db *gorm.DB) *gorm.DB {
	return db.Preload("Entries", func(db *gorm.DB) *gorm.DB {
		return db.Order(entryOrder)
	})
}

func (r *implRepository) buildGetOneQuery(db *gorm.DB, opt repo.GetOneListOptions) *gorm.DB {
	if opt.ID != 0 {
		db = db.Where("id = ?", opt.ID)
	}
	if opt.UserID != 0 {
		db = db.Where("user_id = ?", opt.UserID)
	}
	return r.withEntries(db)
}

func (r *implRepository) buildListFilter(db *gorm.DB, opt repo.ListListsOptions) *gorm.DB {
	db = db.Where("user_id = ?", opt.UserID)
	if q := strings.TrimSpace(opt.Query); q != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	return db
}

func (r *implRepository) buildListQuery(db *gorm.DB, opt repo.ListListsOptions) *gorm.DB {
	order := opt.OrderBy
	if order == "" {
		order = defaultOrder
	}
	db = r.withEntries(r.buildListFilter(db, opt)).Order(order)
	if opt.Limit > 0 {
		db = db.Limit(opt.Limit)
	}
	if opt.Offset > 0 {
		db = db.Offset(opt.Offset)
	}
	return db
}
