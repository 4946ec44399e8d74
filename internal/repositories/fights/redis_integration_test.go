package fights_test

import (
	"context"
	"testing"
	"time"

	simerr "github.com/KirkDiggler/skirmish/internal/errors"
	"github.com/KirkDiggler/skirmish/internal/repositories/fights"
	"github.com/KirkDiggler/skirmish/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	client := testutils.CreateTestRedisClientOrSkip(t)
	repo := fights.NewRedis(&fights.RedisConfig{Client: client, TTL: time.Minute})
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	first := testutils.CreateTestFightRecord("first", base)
	second := testutils.CreateTestFightRecord("second", base.Add(time.Second))

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	assert.True(t, simerr.Is(repo.Create(ctx, first), simerr.CodeAlreadyExists))

	got, err := repo.Get(ctx, "first")
	require.NoError(t, err)
	assert.Equal(t, first.Winner, got.Winner)
	assert.Equal(t, first.Elapsed, got.Elapsed)
	assert.Len(t, got.Members, len(first.Members))

	ttl, err := client.TTL(ctx, "fight:first").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	recent, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "second", recent[0].ID)

	require.NoError(t, repo.Delete(ctx, "second"))
	recent, err = repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "first", recent[0].ID)
}
