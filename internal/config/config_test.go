package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "torq.db", c.DatabaseDSN)
	assert.Equal(t, 100*time.Millisecond, c.MiningTickInterval)
	assert.Equal(t, 2*time.Second, c.TransferDelay)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.Equal(t, "torq-local-secret", c.SessionSecret)
}

func TestLoadConfig_UsesDefaultsWithoutArgs(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()
	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, "torq.db", c.DatabaseDSN)
	assert.Equal(t, 100*time.Millisecond, c.MiningTickInterval)
	assert.Equal(t, 2*time.Second, c.TransferDelay)
}

func Test_parseFlags_OverridesDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-d", "other.db", "-t", "50ms", "-w", "1s", "-s", "sekret"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "other.db", cfg.DatabaseDSN)
	assert.Equal(t, 50*time.Millisecond, cfg.MiningTickInterval)
	assert.Equal(t, time.Second, cfg.TransferDelay)
	assert.Equal(t, "sekret", cfg.SessionSecret)
}
