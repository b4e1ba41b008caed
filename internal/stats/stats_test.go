package stats

import (
	"testing"

	"github.com/creator-tips/internal/models"
	"github.com/creator-tips/internal/types"
)

func tip(tipper, handle string, amount float64) *models.Tip {
	return &models.Tip{
		TipperAddress:  tipper,
		TipperHandle:   handle,
		CreatorAddress: "0xcccccccccccccccccccccccccccccccccccccccc",
		Amount:         amount,
		Token:          types.TokenUSDC,
	}
}

func TestCompute_Empty(t *testing.T) {
	got := Compute(nil)

	if got.TotalAmount != 0 {
		t.Errorf("TotalAmount = %v, want 0", got.TotalAmount)
	}
	if got.TipCount != 0 {
		t.Errorf("TipCount = %v, want 0", got.TipCount)
	}
	if len(got.TopSupporters) != 0 {
		t.Errorf("TopSupporters = %v, want empty", got.TopSupporters)
	}
}

func TestCompute_GroupsByTipper(t *testing.T) {
	tips := []*models.Tip{
		tip("0xaa", "alice", 5),
		tip("0xbb", "bob", 2),
		tip("0xaa", "alice", 3),
	}

	got := Compute(tips)

	if got.TotalAmount != 10 {
		t.Errorf("TotalAmount = %v, want 10", got.TotalAmount)
	}
	if got.TipCount != 3 {
		t.Errorf("TipCount = %v, want 3", got.TipCount)
	}
	if len(got.TopSupporters) != 2 {
		t.Fatalf("TopSupporters = %v, want 2 entries", got.TopSupporters)
	}
	if got.TopSupporters[0].Address != "0xaa" || got.TopSupporters[0].TotalAmount != 8 {
		t.Errorf("top supporter = %+v, want 0xaa with 8", got.TopSupporters[0])
	}
	if got.TopSupporters[0].TipCount != 2 {
		t.Errorf("top supporter tip count = %d, want 2", got.TopSupporters[0].TipCount)
	}
}

func TestCompute_AnonymousFallback(t *testing.T) {
	got := Compute([]*models.Tip{tip("0xaa", "", 1)})

	if got.TopSupporters[0].Handle != "Anonymous" {
		t.Errorf("Handle = %q, want Anonymous", got.TopSupporters[0].Handle)
	}
}

func TestCompute_TruncatesToTopFive(t *testing.T) {
	tips := []*models.Tip{
		tip("0x01", "a", 1),
		tip("0x02", "b", 2),
		tip("0x03", "c", 3),
		tip("0x04", "d", 4),
		tip("0x05", "e", 5),
		tip("0x06", "f", 6),
		tip("0x07", "g", 7),
	}

	got := Compute(tips)

	if len(got.TopSupporters) != TopSupporterLimit {
		t.Fatalf("len(TopSupporters) = %d, want %d", len(got.TopSupporters), TopSupporterLimit)
	}
	if got.TopSupporters[0].Address != "0x07" {
		t.Errorf("top supporter = %s, want 0x07", got.TopSupporters[0].Address)
	}
	if got.TopSupporters[4].Address != "0x03" {
		t.Errorf("fifth supporter = %s, want 0x03", got.TopSupporters[4].Address)
	}
}

func TestCompute_TieBreakIsFirstAppearance(t *testing.T) {
	tips := []*models.Tip{
		tip("0xbb", "bob", 5),
		tip("0xaa", "alice", 5),
	}

	got := Compute(tips)

	if got.TopSupporters[0].Address != "0xbb" {
		t.Errorf("tie should preserve first appearance, got %s first", got.TopSupporters[0].Address)
	}
}

func TestCompute_RoundsAtTheEnd(t *testing.T) {
	// Three tips of 0.335: summed first (1.005) then rounded gives 1.0 or
	// 1.01 depending on float representation; per-tip rounding would give
	// 1.02. The reduction must not round per tip.
	tips := []*models.Tip{
		tip("0xaa", "alice", 0.335),
		tip("0xaa", "alice", 0.335),
		tip("0xaa", "alice", 0.335),
	}

	got := Compute(tips)

	if got.TotalAmount > 1.01 {
		t.Errorf("TotalAmount = %v, looks like per-tip rounding", got.TotalAmount)
	}
}
