// Package kv implements the key-value persistence collaborator the wallet
// core depends on: ordered record collections plus single-record keys,
// backed either by a local SQLite database or by memory.
package kv

import "context"

// Collection and key names used by the wallet core.
const (
	CollectionAccounts     = "accounts"
	CollectionTransactions = "transactions"
	KeyActiveAccount       = "activeAccount"
)

// Store is the persistence collaborator injected into the identity, ledger,
// and session layers.
//
// Contract:
//   - LoadAll returns the records of a collection in insertion order. An
//     absent collection yields an empty result, never an error.
//   - SaveAll replaces a collection's records atomically.
//   - LoadOne returns (nil, nil) when the key is absent.
//   - Records are opaque byte payloads; serialization is the caller's
//     concern.
type Store interface {
	LoadAll(ctx context.Context, collection string) ([][]byte, error)
	SaveAll(ctx context.Context, collection string, records [][]byte) error
	LoadOne(ctx context.Context, key string) ([]byte, error)
	SaveOne(ctx context.Context, key string, value []byte) error
	DeleteOne(ctx context.Context, key string) error
	Close() error
}
