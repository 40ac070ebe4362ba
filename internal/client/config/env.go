package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. An
// optional .env file in the working directory is loaded first; a missing
// file is not an error.
//
// Recognized variables:
//
//	CIPHERDIR_SERVER_ADDR       base URL of the directory service
//	CIPHERDIR_PRIVATE_KEY       inline private key PEM
//	CIPHERDIR_PRIVATE_KEY_FILE  path to the private key PEM file
//	CIPHERDIR_REQUEST_TIMEOUT   Go duration string, e.g. "10s"
//	CIPHERDIR_CACHE_DSN         SQLite DSN of the local cache
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("CIPHERDIR_SERVER_ADDR"); v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v := os.Getenv("CIPHERDIR_PRIVATE_KEY"); v != "" {
		cfg.PrivateKeyPEM = v
	}
	if v := os.Getenv("CIPHERDIR_PRIVATE_KEY_FILE"); v != "" {
		cfg.PrivateKeyFile = v
	}
	if v := os.Getenv("CIPHERDIR_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("CIPHERDIR_CACHE_DSN"); v != "" {
		cfg.CacheDSN = v
	}
}
