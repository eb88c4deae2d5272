package sqlite

import (
	"fmt"

	"gorm.io/gorm"

	"lifeos/internal/auth/repository"
	"lifeos/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a gorm-backed Repository for the auth domain.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("auth/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("auth/repository/sqlite.%s", method)
}
