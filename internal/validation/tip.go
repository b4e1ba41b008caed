// Package validation provides pure shape checks for inbound tip records.
package validation

import (
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/creator-tips/internal/models"
	"github.com/creator-tips/internal/types"
)

// txHashPattern matches a 0x-prefixed 32-byte transaction hash.
var txHashPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)

// MaxMessageLength bounds the optional tip message.
const MaxMessageLength = 200

// ValidateTip checks the shape of a candidate tip and returns every
// failure as a human-readable string. All rules are evaluated; nothing
// short-circuits. An empty slice means the tip is valid. No side effects.
func ValidateTip(tip *models.Tip) []string {
	var errs []string

	if tip.Amount <= 0 {
		errs = append(errs, "Invalid amount")
	}

	if !IsAddress(tip.CreatorAddress) {
		errs = append(errs, "Invalid creator address")
	}

	if !txHashPattern.MatchString(tip.TxHash) {
		errs = append(errs, "Invalid transaction hash")
	}

	if !types.IsAllowedToken(tip.Token) {
		errs = append(errs, "Invalid token")
	}

	if len(tip.Message) > MaxMessageLength {
		errs = append(errs, "Message too long")
	}

	return errs
}

// IsTxHash reports whether s is a well-formed transaction hash.
func IsTxHash(s string) bool {
	return txHashPattern.MatchString(s)
}

// IsAddress reports whether s is a well-formed 0x-prefixed wallet address.
// common.IsHexAddress alone also accepts unprefixed input, which the wire
// format does not.
func IsAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}
