// Package ledger implements the global append-only transaction log and the
// per-address feed derived from it.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/torqlabs/torq-wallet/internal/kv"
	"github.com/torqlabs/torq-wallet/internal/models"
)

// Store is the append-only ledger. Entries are never mutated or deleted;
// the only write is Append.
type Store struct {
	kv kv.Store
}

func NewStore(store kv.Store) *Store {
	return &Store{kv: store}
}

// All returns the full log in insertion order. Records that no longer
// decode are skipped rather than failing the whole read.
func (s *Store) All(ctx context.Context) ([]models.Transaction, error) {
	records, err := s.kv.LoadAll(ctx, kv.CollectionTransactions)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	txs := make([]models.Transaction, 0, len(records))
	for _, r := range records {
		var tx models.Transaction
		if err := json.Unmarshal(r, &tx); err != nil {
			continue
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// Append adds one entry to the end of the log.
func (s *Store) Append(ctx context.Context, tx models.Transaction) error {
	records, err := s.kv.LoadAll(ctx, kv.CollectionTransactions)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	b, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to encode transaction %s: %w", tx.ID, err)
	}

	records = append(records, b)
	if err := s.kv.SaveAll(ctx, kv.CollectionTransactions, records); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	return nil
}

// TransactionsFor returns every entry where address is the sender or the
// recipient, most recent first. The feed is re-derived on every call, so a
// caller switching accounts can never observe a stale feed.
func (s *Store) TransactionsFor(ctx context.Context, address string) ([]models.Transaction, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	feed := make([]models.Transaction, 0)
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Involves(address) {
			feed = append(feed, all[i])
		}
	}
	return feed, nil
}
