package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd", "-a", "http://directory:9090", "-k", "key.pem", "-i", "10", "-d", "other.db"}, expectPanic: false,
			expected: &Config{ServerEndpointAddr: "http://directory:9090", PrivateKeyFile: "key.pem", OnlineCheckInterval: 10 * time.Second, CacheDSN: "other.db"}},
		{name: "Test2 incorrect check interval", args: []string{"cmd", "-a", "http://directory:9090", "-i", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Equal(t, tt.expected, config)
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

func TestParseFlags_KeepsDefaultsWithoutFlags(t *testing.T) {
	os.Args = []string{"cmd"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
}
