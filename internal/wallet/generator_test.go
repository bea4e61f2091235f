package wallet

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAddress_Shape(t *testing.T) {
	addr, err := GenerateAddress()
	require.NoError(t, err)

	assert.Len(t, addr, 42)
	assert.True(t, strings.HasPrefix(addr, "0x"))
	_, err = hex.DecodeString(addr[2:])
	assert.NoError(t, err)
	assert.Equal(t, strings.ToLower(addr), addr)
}

func TestGeneratePrivateKey_Shape(t *testing.T) {
	key, err := GeneratePrivateKey()
	require.NoError(t, err)

	assert.Len(t, key, 64)
	_, err = hex.DecodeString(key)
	assert.NoError(t, err)
}

func TestGenerateTxHash_Shape(t *testing.T) {
	h, err := GenerateTxHash()
	require.NoError(t, err)

	assert.Len(t, h, 66)
	assert.True(t, strings.HasPrefix(h, "0x"))
	_, err = hex.DecodeString(h[2:])
	assert.NoError(t, err)
}

func TestGenerateAddress_EntropyHint(t *testing.T) {
	a, err := GenerateAddress()
	require.NoError(t, err)
	b, err := GenerateAddress()
	require.NoError(t, err)
	if a == b {
		t.Logf("warning: two generated addresses are identical; extremely unlikely")
	}
}
