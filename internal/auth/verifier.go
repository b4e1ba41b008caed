// Package auth verifies the wallet-auth payload attached to tip
// submissions.
package auth

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/creator-tips/internal/types"
	"github.com/creator-tips/internal/validation"
)

// Payload is the authentication block the mini-app client attaches to a
// tip, produced by the wallet SDK. Signature and Message are present only
// when the client performed a personal-sign challenge.
type Payload struct {
	Address   string `json:"address"`
	FID       int64  `json:"fid,omitempty"`
	Handle    string `json:"handle,omitempty"`
	Message   string `json:"message,omitempty"`
	Signature string `json:"signature,omitempty"`
}

// Verifier checks auth payloads. With RequireSignature unset it accepts
// any payload carrying a well-formed address, treating the wallet SDK's
// frame context as the source of truth; with it set it additionally
// recovers the EIP-191 signer and requires it to match the claimed
// address.
type Verifier struct {
	RequireSignature bool
}

// NewVerifier creates a payload verifier.
func NewVerifier(requireSignature bool) *Verifier {
	return &Verifier{RequireSignature: requireSignature}
}

// Verify checks the payload and returns an AUTH service error on failure.
func (v *Verifier) Verify(payload *Payload) error {
	if payload == nil || payload.Address == "" {
		return types.NewAuthError("Invalid authentication")
	}
	if !validation.IsAddress(payload.Address) {
		return types.NewAuthError("Invalid authentication")
	}

	if !v.RequireSignature {
		return nil
	}

	if payload.Signature == "" || payload.Message == "" {
		return types.NewAuthError("Invalid authentication")
	}
	ok, err := recoverMatches(payload.Address, payload.Message, payload.Signature)
	if err != nil || !ok {
		return types.NewAuthError("Invalid authentication")
	}
	return nil
}

// recoverMatches recovers the signer of an EIP-191 personal-sign message
// and compares it to the claimed address.
func recoverMatches(address, message, signature string) (bool, error) {
	signature = strings.TrimPrefix(signature, "0x")
	sig, err := hex.DecodeString(signature)
	if err != nil {
		return false, fmt.Errorf("invalid hex signature: %w", err)
	}
	if len(sig) != 65 {
		return false, fmt.Errorf("invalid signature length: %d", len(sig))
	}
	// Wallets return the recovery id as 27/28
	if sig[64] >= 27 {
		sig[64] -= 27
	}

	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	hash := crypto.Keccak256Hash([]byte(prefixed))

	pub, err := crypto.SigToPub(hash.Bytes(), sig)
	if err != nil {
		return false, err
	}
	recovered := crypto.PubkeyToAddress(*pub)
	return strings.EqualFold(recovered.Hex(), address), nil
}
