// Package config loads runtime configuration for the cipherdir CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, including an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the directory service HTTP API
//	-k string   path to the PEM-encoded private key file
//	-i int      online status check interval (seconds)
//	-d string   SQLite DSN of the local encrypted-record cache
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "http://127.0.0.1:8080",
//	  "private_key_file": "key.pem",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s",
//	  "cache_dsn": "cipherdir.db"
//	}
//
// The private key itself is configuration: it can arrive inline via the
// CIPHERDIR_PRIVATE_KEY environment variable or as a file path. Resolution
// happens in (*Config).PrivateKeyMaterial; a missing or unreadable key is a
// startup error, never a silent empty result.
package config
