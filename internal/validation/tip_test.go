package validation

import (
	"strings"
	"testing"

	"github.com/creator-tips/internal/models"
	"github.com/creator-tips/internal/types"
)

func validTip() *models.Tip {
	return &models.Tip{
		TipperAddress:  "0x1111111111111111111111111111111111111111",
		CreatorAddress: "0x2222222222222222222222222222222222222222",
		Amount:         10,
		Token:          types.TokenUSDC,
		TxHash:         "0x" + strings.Repeat("ab", 32),
		Message:        "great stream!",
	}
}

func TestValidateTip_Valid(t *testing.T) {
	if errs := ValidateTip(validTip()); len(errs) != 0 {
		t.Errorf("ValidateTip() = %v, want no errors", errs)
	}
}

func TestValidateTip_SingleFieldFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Tip)
		wantErr string
	}{
		{
			name:    "zero amount",
			mutate:  func(tip *models.Tip) { tip.Amount = 0 },
			wantErr: "Invalid amount",
		},
		{
			name:    "negative amount",
			mutate:  func(tip *models.Tip) { tip.Amount = -5 },
			wantErr: "Invalid amount",
		},
		{
			name:    "short creator address",
			mutate:  func(tip *models.Tip) { tip.CreatorAddress = "0x1234" },
			wantErr: "Invalid creator address",
		},
		{
			name:    "unprefixed creator address",
			mutate:  func(tip *models.Tip) { tip.CreatorAddress = strings.Repeat("ab", 20) },
			wantErr: "Invalid creator address",
		},
		{
			name:    "non-hex tx hash",
			mutate:  func(tip *models.Tip) { tip.TxHash = "invalid-hash" },
			wantErr: "Invalid transaction hash",
		},
		{
			name:    "tx hash too short",
			mutate:  func(tip *models.Tip) { tip.TxHash = "0x" + strings.Repeat("ab", 31) },
			wantErr: "Invalid transaction hash",
		},
		{
			name:    "unsupported token",
			mutate:  func(tip *models.Tip) { tip.Token = "DOGE" },
			wantErr: "Invalid token",
		},
		{
			name:    "oversized message",
			mutate:  func(tip *models.Tip) { tip.Message = strings.Repeat("x", MaxMessageLength+1) },
			wantErr: "Message too long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tip := validTip()
			tt.mutate(tip)

			errs := ValidateTip(tip)
			if len(errs) != 1 {
				t.Fatalf("ValidateTip() = %v, want exactly one error", errs)
			}
			if errs[0] != tt.wantErr {
				t.Errorf("ValidateTip() = %q, want %q", errs[0], tt.wantErr)
			}
		})
	}
}

func TestValidateTip_CollectsAllFailures(t *testing.T) {
	tip := &models.Tip{
		CreatorAddress: "not-an-address",
		Amount:         -1,
		Token:          "SHIB",
		TxHash:         "nope",
	}

	errs := ValidateTip(tip)
	if len(errs) != 4 {
		t.Fatalf("ValidateTip() collected %d errors (%v), want 4", len(errs), errs)
	}

	// Failures are reported in rule order
	want := []string{"Invalid amount", "Invalid creator address", "Invalid transaction hash", "Invalid token"}
	for i, w := range want {
		if errs[i] != w {
			t.Errorf("errs[%d] = %q, want %q", i, errs[i], w)
		}
	}
}

func TestIsTxHash(t *testing.T) {
	if !IsTxHash("0x" + strings.Repeat("0f", 32)) {
		t.Error("expected valid hash to pass")
	}
	if IsTxHash(strings.Repeat("0f", 32)) {
		t.Error("hash without 0x prefix should fail")
	}
	if IsTxHash("0x" + strings.Repeat("zz", 32)) {
		t.Error("non-hex hash should fail")
	}
}

func TestIsAddress(t *testing.T) {
	if !IsAddress("0xAbCd111111111111111111111111111111111111") {
		t.Error("expected mixed-case address to pass")
	}
	if IsAddress("AbCd111111111111111111111111111111111111") {
		t.Error("address without 0x prefix should fail")
	}
}
