package sqlite

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	repo "lifeos/internal/auth/repository"
	"lifeos/internal/model"
)

func (r *implRepository) CreateSession(ctx context.Context, session model.Session) error {
	if err := r.db.WithContext(ctx).Create(&session).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSession"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

func (r *implRepository) GetSession(ctx context.Context, token string) (model.Session, error) {
	var session model.Session
	err := r.db.WithContext(ctx).Where("token = ?", token).Take(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Session{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSession"), err)
		return model.Session{}, repo.ErrFailedToGet
	}
	return session, nil
}

func (r *implRepository) DeleteSession(ctx context.Context, token string) error {
	if err := r.db.WithContext(ctx).Where("token = ?", token).Delete(&model.Session{}).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSession"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error) {
	res := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.Session{})
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteExpiredSessions"), res.Error)
		return 0, repo.ErrFailedToDelete
	}
	return int(res.RowsAffected), nil
}
