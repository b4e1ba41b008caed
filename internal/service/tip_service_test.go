package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creator-tips/internal/logging"
	"github.com/creator-tips/internal/models"
	"github.com/creator-tips/internal/types"
)

type fakeTipStore struct {
	saved     []*models.Tip
	saveErr   error
	byTipper  []*models.Tip
	byCreator []*models.Tip
	listErr   error
}

func (f *fakeTipStore) Save(_ context.Context, tip *models.Tip) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saved = append(f.saved, tip)
	return "tip-1", nil
}

func (f *fakeTipStore) ListByTipper(_ context.Context, _ string, _ int) ([]*models.Tip, error) {
	return f.byTipper, f.listErr
}

func (f *fakeTipStore) ListByCreator(_ context.Context, _ string, _ int) ([]*models.Tip, error) {
	return f.byCreator, f.listErr
}

type fakeInvalidator struct {
	calls int
	err   error
}

func (f *fakeInvalidator) Invalidate(_ context.Context) error {
	f.calls++
	return f.err
}

func testLogger() *logging.Logger {
	l := logging.NewLogger(logging.LevelError, logging.FormatText)
	l.SetOutput(&strings.Builder{})
	return l
}

func validInput() *SubmitTipInput {
	return &SubmitTipInput{
		TipperAddress:  "0x1111111111111111111111111111111111111111",
		TipperHandle:   "alice",
		CreatorAddress: "0x2222222222222222222222222222222222222222",
		CreatorHandle:  "bob",
		Amount:         5,
		Token:          types.TokenUSDC,
		TxHash:         "0x" + strings.Repeat("ab", 32),
		Message:        "great stream",
	}
}

func TestTipService_SubmitTip(t *testing.T) {
	store := &fakeTipStore{}
	cache := &fakeInvalidator{}
	svc := NewTipService(store, cache, testLogger())

	id, err := svc.SubmitTip(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "tip-1", id)

	require.Len(t, store.saved, 1)
	assert.Equal(t, types.TipStatusCompleted, store.saved[0].Status)
	assert.Equal(t, 1, cache.calls, "leaderboard cache should be invalidated")
}

func TestTipService_SubmitTip_ValidationCollectsAllErrors(t *testing.T) {
	store := &fakeTipStore{}
	svc := NewTipService(store, nil, testLogger())

	input := validInput()
	input.Amount = 0
	input.TxHash = "invalid-hash"

	_, err := svc.SubmitTip(context.Background(), input)
	require.Error(t, err)

	var svcErr *types.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, types.ErrCodeValidation, svcErr.Code)
	assert.Equal(t, "Invalid tip data", svcErr.Message)
	assert.Equal(t, map[string]interface{}{
		"errors": []string{"Invalid amount", "Invalid transaction hash"},
	}, svcErr.Details)
	assert.Empty(t, store.saved, "invalid tip must not reach the store")
}

func TestTipService_SubmitTip_StoreError(t *testing.T) {
	store := &fakeTipStore{saveErr: errors.New("connection refused")}
	cache := &fakeInvalidator{}
	svc := NewTipService(store, cache, testLogger())

	_, err := svc.SubmitTip(context.Background(), validInput())

	var svcErr *types.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, types.ErrCodeStorage, svcErr.Code)
	assert.Equal(t, 0, cache.calls, "no invalidation when the write fails")
}

func TestTipService_SubmitTip_CacheFailureIsNonFatal(t *testing.T) {
	store := &fakeTipStore{}
	cache := &fakeInvalidator{err: errors.New("redis down")}
	svc := NewTipService(store, cache, testLogger())

	id, err := svc.SubmitTip(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "tip-1", id)
}

func TestTipService_ListTips(t *testing.T) {
	store := &fakeTipStore{
		byTipper:  []*models.Tip{{ID: "sent"}},
		byCreator: []*models.Tip{{ID: "received"}},
	}
	svc := NewTipService(store, nil, testLogger())

	got, err := svc.ListTips(context.Background(), "0xaa", "", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "sent", got[0].ID)

	got, err = svc.ListTips(context.Background(), "", "0xbb", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "received", got[0].ID)
}
