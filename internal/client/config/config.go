package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ddanshin/cipherdir/internal/common"
)

// Config holds runtime settings for the cipherdir CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the directory service HTTP API.
//   - PrivateKeyFile: path to the PEM-encoded RSA private key.
//   - PrivateKeyPEM: inline PEM text; takes precedence over PrivateKeyFile.
//   - RequestTimeout: per-request HTTP timeout.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - CacheDSN: SQLite DSN of the local encrypted-record cache.
type Config struct {
	ServerEndpointAddr  string
	PrivateKeyFile      string
	PrivateKeyPEM       string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	CacheDSN            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.CacheDSN = "cipherdir.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including an optional .env file), a JSON file (if
// present) and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// PrivateKeyMaterial resolves the configured private key PEM text. Inline
// PEM wins over the key file. A missing or unreadable key is a configuration
// error: the decryption subsystem cannot operate without it.
func (c *Config) PrivateKeyMaterial() ([]byte, error) {
	if c.PrivateKeyPEM != "" {
		return []byte(c.PrivateKeyPEM), nil
	}
	if c.PrivateKeyFile == "" {
		return nil, fmt.Errorf("%w: no private key configured", common.ErrMalformedKey)
	}
	pemText, err := os.ReadFile(c.PrivateKeyFile)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", common.ErrMalformedKey, c.PrivateKeyFile, err)
	}
	return pemText, nil
}
