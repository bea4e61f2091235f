// Package wallet generates the random identifiers used by the simulator:
// wallet addresses, private keys, and transaction hashes. None of them are
// cryptographically derived from anything; they are uniformly random hex
// with the familiar shapes. Uniqueness is probabilistic only.
package wallet

import (
	"fmt"

	"github.com/torqlabs/torq-wallet/internal/common"
)

// GenerateAddress produces a 42-character wallet address: the "0x" prefix
// followed by 40 lowercase hex characters.
func GenerateAddress() (string, error) {
	s, err := common.MakeRandHexString(20)
	if err != nil {
		return "", fmt.Errorf("failed to generate address: %w", err)
	}
	return "0x" + s, nil
}

// GeneratePrivateKey produces a 64-character lowercase hex string. It is a
// cosmetic companion secret, shown to the user once at wallet creation.
func GeneratePrivateKey() (string, error) {
	s, err := common.MakeRandHexString(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate private key: %w", err)
	}
	return s, nil
}

// GenerateTxHash produces a transaction-hash-shaped identifier: "0x"
// followed by 64 lowercase hex characters.
func GenerateTxHash() (string, error) {
	s, err := common.MakeRandHexString(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate transaction hash: %w", err)
	}
	return "0x" + s, nil
}
