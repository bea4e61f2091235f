package models

import "time"

// TransactionKind classifies a ledger entry.
type TransactionKind string

const (
	// TxMined marks a mining reward credited from the mining pool.
	TxMined TransactionKind = "mine"

	// TxSent marks an outgoing transfer debited from the sender.
	TxSent TransactionKind = "send"

	// TxReceived exists in the stored format for compatibility but no
	// code path produces it; incoming amounts are derived from the feed.
	TxReceived TransactionKind = "receive"
)

// MiningPoolAddress is the reserved sender address on mining rewards.
// It is not bound to any account.
const MiningPoolAddress = "mining_pool"

// Transaction is an immutable ledger entry. Once appended it is never
// mutated or deleted. From/To reference wallet addresses by value; neither
// side owns the entry.
type Transaction struct {
	ID        string          `json:"id"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Amount    float64         `json:"amount"`
	Kind      TransactionKind `json:"type"`
	Timestamp time.Time       `json:"timestamp"`

	// Hash is an opaque random identifier in transaction-hash format.
	// It is cosmetic and not a digest of the entry's content.
	Hash string `json:"hash"`
}

// Involves reports whether addr is either side of the transaction.
func (t Transaction) Involves(addr string) bool {
	return t.From == addr || t.To == addr
}
