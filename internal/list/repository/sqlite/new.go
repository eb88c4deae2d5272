package sqlite

import (
	"fmt"

	"gorm.io/gorm"

	"lifeos/internal/list/repository"
	"lifeos/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a gorm-backed Repository for the list domain.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("list/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("list/repository/sqlite.%s", method)
}
