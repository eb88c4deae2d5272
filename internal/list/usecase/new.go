package usecase

import (
	"lifeos/internal/list/repository"
	"lifeos/pkg/log"
)

// implUseCase is the private implementation of list.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new list UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
