package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmaurer/placedir/internal/domain"
	"github.com/jmaurer/placedir/internal/repo"
	"github.com/jmaurer/placedir/testutil"
)

func newSubscriptionRepo(t *testing.T) repo.SubscriptionRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewSubscriptionRepo(tx)
}

func TestSubscriptionRepo_CreateAndList(t *testing.T) {
	r := newSubscriptionRepo(t)
	ctx := context.Background()

	sub := domain.BboxSubscription{
		ID: "s1",
		Bbox: domain.BoundingBox{
			SouthWest: domain.Coordinate{Lat: 47.5, Lng: 10.5},
			NorthEast: domain.Coordinate{Lat: 48.5, Lng: 12.5},
		},
	}
	require.NoError(t, r.Create(ctx, sub))

	got, err := r.List(ctx)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, sub, got[0], "bbox corners survive the round-trip")
}

func TestSubscriptionRepo_Delete(t *testing.T) {
	r := newSubscriptionRepo(t)
	ctx := context.Background()

	sub := domain.BboxSubscription{ID: "s1"}
	require.NoError(t, r.Create(ctx, sub))
	require.NoError(t, r.Delete(ctx, "s1"))

	got, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSubscriptionRepo_Delete_NotFound(t *testing.T) {
	r := newSubscriptionRepo(t)

	err := r.Delete(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
