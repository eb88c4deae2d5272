package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"lifeos/internal/auth/repository"
	"lifeos/internal/model"
	"lifeos/pkg/log"
)

const (
	defaultSessionTTL = 30 * 24 * time.Hour
	defaultCacheSize  = 1000
	// cacheTTL bounds how long a revoked session can outlive its row on another instance.
	cacheTTL = 5 * time.Minute
)

// Config tunes session lifetime and the in-process session cache.
type Config struct {
	SessionTTL time.Duration
	CacheSize  int
}

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	repo       repository.Repository
	l          log.Logger
	sessionTTL time.Duration
	sessions   *expirable.LRU[string, model.Session]
	now        func() time.Time
}

// New creates a new auth UseCase implementation.
func New(repo repository.Repository, l log.Logger, cfg Config) *implUseCase {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	return &implUseCase{
		repo:       repo,
		l:          l,
		sessionTTL: cfg.SessionTTL,
		sessions:   expirable.NewLRU[string, model.Session](cfg.CacheSize, nil, cacheTTL),
		now:        time.Now,
	}
}
