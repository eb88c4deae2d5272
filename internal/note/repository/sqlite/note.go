package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"lifeos/internal/model"
	repo "lifeos/internal/note/repository"
)

func (r *implRepository) CreateNote(ctx context.Context, n model.Note) (model.Note, error) {
	if err := r.db.WithContext(ctx).Create(&n).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateNote"), err)
		return model.Note{}, repo.ErrFailedToInsert
	}
	return n, nil
}

// GetOneNote returns a zero-value Note (ID == 0) when not found.
func (r *implRepository) GetOneNote(ctx context.Context, opt repo.GetOneNoteOptions) (model.Note, error) {
	var n model.Note
	err := r.buildGetOneQuery(r.db.WithContext(ctx), opt).Take(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Note{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneNote"), err)
		return model.Note{}, repo.ErrFailedToGet
	}
	return n, nil
}

func (r *implRepository) ListNotes(ctx context.Context, opt repo.ListNotesOptions) ([]model.Note, int, error) {
	var total int64
	if err := r.buildListFilter(r.db.WithContext(ctx).Model(&model.Note{}), opt).Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListNotes"), err)
		return nil, 0, repo.ErrFailedToList
	}

	notes := []model.Note{}
	if err := r.buildListQuery(r.db.WithContext(ctx), opt).Find(&notes).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListNotes"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return notes, int(total), nil
}

func (r *implRepository) UpdateNote(ctx context.Context, n model.Note) (model.Note, error) {
	if err := r.db.WithContext(ctx).Save(&n).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateNote"), err)
		return model.Note{}, repo.ErrFailedToUpdate
	}
	return n, nil
}

func (r *implRepository) DeleteNote(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Note{}, id).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteNote"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
