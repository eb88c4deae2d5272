package sqlite

import (
	"fmt"

	"gorm.io/gorm"

	"lifeos/internal/note/repository"
	"lifeos/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a gorm-backed Repository for the note domain.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("note/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("note/repository/sqlite.%s", method)
}
