package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ddanshin/cipherdir/internal/flagx"
	"github.com/ddanshin/cipherdir/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "3s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	PrivateKeyFile      string         `json:"private_key_file"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	CacheDSN            string         `json:"cache_dsn"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flags (flagx.JsonConfigFlags); when no
// path is given, nothing is loaded. Empty JSON fields leave the current
// Config values untouched. Panics on read or unmarshal errors (caller should
// recover if desired).
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

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.PrivateKeyFile != "" {
		cfg.PrivateKeyFile = jc.PrivateKeyFile
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
	if jc.CacheDSN != "" {
		cfg.CacheDSN = jc.CacheDSN
	}
}
