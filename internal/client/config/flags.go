package config

import (
	"flag"
	"os"
	"time"

	"github.com/ddanshin/cipherdir/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the directory service (default from Config)
//	-k string   path to the private key PEM file
//	-i int      online check interval in seconds (default from Config)
//	-d string   SQLite DSN of the local cache
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-i", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the directory service")
	fs.StringVar(&cfg.PrivateKeyFile, "k", cfg.PrivateKeyFile, "path to the private key PEM file")
	fs.StringVar(&cfg.CacheDSN, "d", cfg.CacheDSN, "SQLite DSN of the local cache")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
