package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torqlabs/torq-wallet/internal/kv"
	"github.com/torqlabs/torq-wallet/internal/models"
)

var testSecret = []byte("test-secret")

func newManager(t *testing.T, ttl time.Duration) (*Manager, *kv.MemStore) {
	t.Helper()
	mem := kv.NewMemStore()
	return NewManager(mem, testSecret, ttl), mem
}

func TestSetAndCurrent_RoundTrip(t *testing.T) {
	m, _ := newManager(t, time.Hour)
	ctx := context.Background()

	account := models.Account{
		ID:            "a1",
		Username:      "alice",
		Email:         "a@x.com",
		PasswordHash:  "deadbeef",
		PasswordSalt:  "cafe",
		WalletAddress: "0xabc",
		Balance:       42.5,
	}
	require.NoError(t, m.Set(ctx, account))

	got, ok, err := m.Current(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a1", got.ID)
	assert.Equal(t, 42.5, got.Balance)
	assert.Empty(t, got.PasswordHash, "session snapshot must be sanitized")
	assert.Empty(t, got.PasswordSalt)
}

func TestCurrent_NoSession(t *testing.T) {
	m, _ := newManager(t, time.Hour)

	_, ok, err := m.Current(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCurrent_ExpiredTokenDropsSession(t *testing.T) {
	m, _ := newManager(t, -time.Minute) // already expired when signed
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, models.Account{ID: "a1"}))

	_, ok, err := m.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCurrent_TamperedAccountIDDropsSession(t *testing.T) {
	m, mem := newManager(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, models.Account{ID: "a1"}))

	raw, err := mem.LoadOne(ctx, kv.KeyActiveAccount)
	require.NoError(t, err)
	var sess models.Session
	require.NoError(t, json.Unmarshal(raw, &sess))
	sess.Account.ID = "someone-else"
	b, err := json.Marshal(sess)
	require.NoError(t, err)
	require.NoError(t, mem.SaveOne(ctx, kv.KeyActiveAccount, b))

	_, ok, err := m.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "token account id no longer matches the snapshot")
}

func TestCurrent_CorruptRecordFailsOpen(t *testing.T) {
	m, mem := newManager(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, mem.SaveOne(ctx, kv.KeyActiveAccount, []byte("{broken")))

	_, ok, err := m.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClear_DestroysSession(t *testing.T) {
	m, _ := newManager(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, models.Account{ID: "a1"}))
	require.NoError(t, m.Clear(ctx))
	require.NoError(t, m.Clear(ctx)) // idempotent

	_, ok, err := m.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
