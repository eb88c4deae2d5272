package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	repo "lifeos/internal/auth/repository"
	"lifeos/internal/model"
)

func (r *implRepository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	err := r.db.WithContext(ctx).Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return model.User{}, repo.ErrDuplicate
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return user, nil
}

func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	q := r.db.WithContext(ctx)
	if opt.ID != 0 {
		q = q.Where("id = ?", opt.ID)
	}
	if opt.Username != "" {
		q = q.Where("username = ?", opt.Username)
	}

	var user model.User
	err := q.Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return user, nil
}
