package usecase

import (
	"time"

	"lifeos/internal/item/repository"
	"lifeos/pkg/datemath"
	"lifeos/pkg/log"
)

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo     repository.Repository
	l        log.Logger
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates a new item UseCase implementation.
func New(repo repository.Repository, l log.Logger, dateMath *datemath.Parser) *implUseCase {
	return &implUseCase{
		repo:     repo,
		l:        l,
		dateMath: dateMath,
		now:      time.Now,
	}
}
