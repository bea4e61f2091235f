package kv

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var memDBCounter int

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	memDBCounter++
	dsn := fmt.Sprintf("file:kv_test_%d?mode=memory&cache=shared", memDBCounter)
	s, err := OpenSQLite(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLite_LoadAll_AbsentCollectionIsEmpty(t *testing.T) {
	s := setupStore(t)

	got, err := s.LoadAll(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLite_SaveAllLoadAll_PreservesOrder(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	records := [][]byte{[]byte("first"), []byte("second"), []byte("third")}
	require.NoError(t, s.SaveAll(ctx, CollectionTransactions, records))

	got, err := s.LoadAll(ctx, CollectionTransactions)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, records, got)
}

func TestSQLite_SaveAll_ReplacesPreviousContents(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveAll(ctx, CollectionAccounts, [][]byte{[]byte("a"), []byte("b")}))
	require.NoError(t, s.SaveAll(ctx, CollectionAccounts, [][]byte{[]byte("c")}))

	got, err := s.LoadAll(ctx, CollectionAccounts)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("c")}, got)
}

func TestSQLite_CollectionsAreIndependent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveAll(ctx, CollectionAccounts, [][]byte{[]byte("acct")}))
	require.NoError(t, s.SaveAll(ctx, CollectionTransactions, [][]byte{[]byte("tx1"), []byte("tx2")}))

	accts, err := s.LoadAll(ctx, CollectionAccounts)
	require.NoError(t, err)
	assert.Len(t, accts, 1)

	txs, err := s.LoadAll(ctx, CollectionTransactions)
	require.NoError(t, err)
	assert.Len(t, txs, 2)
}

func TestSQLite_LoadOne_AbsentReturnsNilNil(t *testing.T) {
	s := setupStore(t)

	v, err := s.LoadOne(context.Background(), KeyActiveAccount)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSQLite_SaveOne_UpsertAndDelete(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveOne(ctx, KeyActiveAccount, []byte("old")))
	require.NoError(t, s.SaveOne(ctx, KeyActiveAccount, []byte("new")))

	v, err := s.LoadOne(ctx, KeyActiveAccount)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), v)

	require.NoError(t, s.DeleteOne(ctx, KeyActiveAccount))
	require.NoError(t, s.DeleteOne(ctx, KeyActiveAccount)) // idempotent

	v, err = s.LoadOne(ctx, KeyActiveAccount)
	require.NoError(t, err)
	assert.Nil(t, v)
}
