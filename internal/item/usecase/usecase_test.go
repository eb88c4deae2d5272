package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lifeos/internal/item"
	"lifeos/internal/item/repository"
	"lifeos/internal/item/repository/sqlite"
	"lifeos/internal/model"
	"lifeos/pkg/database"
	"lifeos/pkg/datemath"
	"lifeos/pkg/log"
)

var (
	testNow   = time.Date(2025, 1, 12, 10, 0, 0, 0, time.UTC)
	testScope = model.Scope{UserID: 1}
)

func newTestUseCase(t *testing.T) (*implUseCase, repository.Repository) {
	t.Helper()

	db := database.OpenTest(t, model.All()...)
	r := sqlite.New(db, log.NewNop())
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	uc := New(r, log.NewNop(), parser)
	uc.now = func() time.Time { return testNow }
	return uc, r
}

func mustCreate(t *testing.T, uc *implUseCase, input item.CreateItemInput) model.Item {
	t.Helper()
	out, err := uc.Create(context.Background(), testScope, input)
	require.NoError(t, err)
	return out.Item
}

func ptr[T any](v T) *T { return &v }

func dateKey(d *time.Time) string {
	if d == nil {
		return ""
	}
	return datemath.Key(*d)
}
