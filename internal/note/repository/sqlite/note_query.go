package sqlite

import (
	"strings"

	"gorm.io/gorm"

	repo "lifeos/internal/note/repository"
)

// Pinned notes first, then most recently edited.
const defaultOrder = "pinned DESC, updated_at DESC, id DESC"

func (r *implRepository) buildGetOneQuery(db *gorm.DB, opt repo.GetOneNoteOptions) *gorm.DB {
	if opt.ID != 0 {
		db = db.Where("id = ?", opt.ID)
	}
	if opt.UserID != 0 {
		db = db.Where("user_id = ?", opt.UserID)
	}
	return db
}

func (r *implRepository) buildListFilter(db *gorm.DB, opt repo.ListNotesOptions) *gorm.DB {
	db = db.Where("user_id = ?", opt.UserID)
	if q := strings.TrimSpace(opt.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", like, like)
	}
	return db
}

func (r *implRepository) buildListQuery(db *gorm.DB, opt repo.ListNotesOptions) *gorm.DB {
	order := opt.OrderBy
	if order == "" {
		order = defaultOrder
	}
	db = r.buildListFilter(db, opt).Order(order)
	if opt.Limit > 0 {
		db = db.Limit(opt.Limit)
	}
	if opt.Offset > 0 {
		db = db.Offset(opt.Offset)
	}
	return db
}
