package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creator-tips/internal/models"
	"github.com/creator-tips/internal/types"
)

type fakeCreatorStore struct {
	byHandle  map[string]*models.Creator
	byAddress map[string]*models.Creator
	top       []*models.Creator
	topCalls  int
	upserted  []*models.Creator
	err       error
}

func (f *fakeCreatorStore) GetByHandle(_ context.Context, handle string) (*models.Creator, error) {
	return f.byHandle[handle], f.err
}

func (f *fakeCreatorStore) GetByAddress(_ context.Context, address string) (*models.Creator, error) {
	return f.byAddress[address], f.err
}

func (f *fakeCreatorStore) Top(_ context.Context, _ int) ([]*models.Creator, error) {
	f.topCalls++
	return f.top, f.err
}

func (f *fakeCreatorStore) UpsertProfile(_ context.Context, creator *models.Creator) error {
	f.upserted = append(f.upserted, creator)
	return f.err
}

type fakeLeaderboardCache struct {
	entries map[int][]*models.Creator
	getErr  error
	setErr  error
}

func newFakeLeaderboardCache() *fakeLeaderboardCache {
	return &fakeLeaderboardCache{entries: make(map[int][]*models.Creator)}
}

func (f *fakeLeaderboardCache) GetTop(_ context.Context, limit int) ([]*models.Creator, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	creators, ok := f.entries[limit]
	return creators, ok, nil
}

func (f *fakeLeaderboardCache) SetTop(_ context.Context, limit int, creators []*models.Creator) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[limit] = creators
	return nil
}

func TestCreatorService_GetByHandle_Absent(t *testing.T) {
	store := &fakeCreatorStore{byHandle: map[string]*models.Creator{}}
	svc := NewCreatorService(store, &fakeTipStore{}, nil, testLogger())

	creator, err := svc.GetByHandle(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, creator)
}

func TestCreatorService_Top_PopulatesCache(t *testing.T) {
	store := &fakeCreatorStore{top: []*models.Creator{{Handle: "alice"}}}
	cache := newFakeLeaderboardCache()
	svc := NewCreatorService(store, &fakeTipStore{}, cache, testLogger())

	got, err := svc.Top(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, store.topCalls)

	// Second call is served from the cache
	got, err = svc.Top(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, store.topCalls, "cache hit should not reach the store")
}

func TestCreatorService_Top_CacheFailureDegradesToStore(t *testing.T) {
	store := &fakeCreatorStore{top: []*models.Creator{{Handle: "alice"}}}
	cache := newFakeLeaderboardCache()
	cache.getErr = errors.New("redis down")
	svc := NewCreatorService(store, &fakeTipStore{}, cache, testLogger())

	got, err := svc.Top(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, store.topCalls)
}

func TestCreatorService_Top_NilCache(t *testing.T) {
	store := &fakeCreatorStore{top: []*models.Creator{{Handle: "alice"}}}
	svc := NewCreatorService(store, &fakeTipStore{}, nil, testLogger())

	got, err := svc.Top(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestCreatorService_Dashboard(t *testing.T) {
	tips := &fakeTipStore{byCreator: []*models.Tip{
		{TipperAddress: "0xaa", TipperHandle: "alice", Amount: 10},
		{TipperAddress: "0xaa", TipperHandle: "alice", Amount: 5},
		{TipperAddress: "0xbb", TipperHandle: "bob", Amount: 2},
	}}
	svc := NewCreatorService(&fakeCreatorStore{}, tips, nil, testLogger())

	got, err := svc.Dashboard(context.Background(), "0xcc")
	require.NoError(t, err)
	assert.Equal(t, float64(17), got.TotalAmount)
	assert.Equal(t, int64(3), got.TipCount)
	require.Len(t, got.TopSupporters, 2)
	assert.Equal(t, "alice", got.TopSupporters[0].Handle)
	assert.Equal(t, float64(15), got.TopSupporters[0].TotalAmount)
}

func TestCreatorService_Dashboard_StoreError(t *testing.T) {
	tips := &fakeTipStore{listErr: errors.New("connection refused")}
	svc := NewCreatorService(&fakeCreatorStore{}, tips, nil, testLogger())

	_, err := svc.Dashboard(context.Background(), "0xcc")

	var svcErr *types.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, types.ErrCodeStorage, svcErr.Code)
}

func TestCreatorService_SaveProfile(t *testing.T) {
	store := &fakeCreatorStore{}
	svc := NewCreatorService(store, &fakeTipStore{}, nil, testLogger())

	err := svc.SaveProfile(context.Background(), &models.Creator{
		Address: "0xaa",
		Handle:  "alice",
	})
	require.NoError(t, err)
	require.Len(t, store.upserted, 1)
	assert.Equal(t, "alice", store.upserted[0].Handle)
}
