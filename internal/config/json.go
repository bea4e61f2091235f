package config

import (
	"encoding/json"
	"os"

	"github.com/torqlabs/torq-wallet/internal/flagx"
	"github.com/torqlabs/torq-wallet/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// use timex.Duration so the file can specify "100ms" as well as integer
// nanoseconds. After parsing, values are copied into the runtime Config.
type JsonConfig struct {
	DatabaseDSN        string         `json:"database_dsn"`
	MiningTickInterval timex.Duration `json:"mining_tick_interval"`
	TransferDelay      timex.Duration `json:"transfer_delay"`
	SessionTTL         timex.Duration `json:"session_ttl"`
	SessionSecret      string         `json:"session_secret"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent, nothing is loaded.
// Only fields present in the file override the current values. Panics on
// read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.MiningTickInterval.Duration != 0 {
		cfg.MiningTickInterval = jc.MiningTickInterval.Duration
	}
	if jc.TransferDelay.Duration != 0 {
		cfg.TransferDelay = jc.TransferDelay.Duration
	}
	if jc.SessionTTL.Duration != 0 {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
	if jc.SessionSecret != "" {
		cfg.SessionSecret = jc.SessionSecret
	}
}
