package storage

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creator-tips/internal/models"
)

func testCreatorCache(t *testing.T) (*CreatorCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewCreatorCache(NewRedisCacheFromClient(client), time.Minute), mr
}

func TestCreatorCache_MissThenHit(t *testing.T) {
	cache, _ := testCreatorCache(t)
	ctx := testContext(t)

	_, hit, err := cache.GetTop(ctx, 10)
	require.NoError(t, err)
	assert.False(t, hit, "empty cache should miss")

	creators := []*models.Creator{
		{Address: "0xaa", Handle: "alice", TotalTips: 120.5, TipCount: 12},
		{Address: "0xbb", Handle: "bob", TotalTips: 44, TipCount: 3},
	}
	require.NoError(t, cache.SetTop(ctx, 10, creators))

	got, hit, err := cache.GetTop(ctx, 10)
	require.NoError(t, err)
	require.True(t, hit)
	require.Len(t, got, 2)
	assert.Equal(t, "alice", got[0].Handle)
	assert.Equal(t, 120.5, got[0].TotalTips)
}

func TestCreatorCache_LimitsAreIndependent(t *testing.T) {
	cache, _ := testCreatorCache(t)
	ctx := testContext(t)

	require.NoError(t, cache.SetTop(ctx, 5, []*models.Creator{{Address: "0xaa"}}))

	_, hit, err := cache.GetTop(ctx, 10)
	require.NoError(t, err)
	assert.False(t, hit, "different limit should be a separate cache entry")
}

func TestCreatorCache_Invalidate(t *testing.T) {
	cache, _ := testCreatorCache(t)
	ctx := testContext(t)

	require.NoError(t, cache.SetTop(ctx, 5, []*models.Creator{{Address: "0xaa"}}))
	require.NoError(t, cache.SetTop(ctx, 10, []*models.Creator{{Address: "0xaa"}}))

	require.NoError(t, cache.Invalidate(ctx))

	for _, limit := range []int{5, 10} {
		_, hit, err := cache.GetTop(ctx, limit)
		require.NoError(t, err)
		assert.False(t, hit, "limit %d should be invalidated", limit)
	}
}

func TestCreatorCache_TTLExpiry(t *testing.T) {
	cache, mr := testCreatorCache(t)
	ctx := testContext(t)

	require.NoError(t, cache.SetTop(ctx, 5, []*models.Creator{{Address: "0xaa"}}))

	mr.FastForward(2 * time.Minute)

	_, hit, err := cache.GetTop(ctx, 5)
	require.NoError(t, err)
	assert.False(t, hit, "entry should expire after TTL")
}
