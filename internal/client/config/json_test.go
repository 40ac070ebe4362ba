package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_Overlays(t *testing.T) {
	path := writeConfigFile(t, `{
		"server_endpoint_addr": "http://directory:9090",
		"private_key_file": "key.pem",
		"request_timeout": "5s",
		"online_check_interval": "7s",
		"cache_dsn": "other.db"
	}`)

	os.Args = []string{"cmd", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://directory:9090", c.ServerEndpointAddr)
	assert.Equal(t, "key.pem", c.PrivateKeyFile)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.Equal(t, 7*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, "other.db", c.CacheDSN)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"server_endpoint_addr": "http://directory:9090"}`)

	os.Args = []string{"cmd", "-config", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://directory:9090", c.ServerEndpointAddr)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
}

func TestParseJson_NoFileFlagIsNoop(t *testing.T) {
	os.Args = []string{"cmd"}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerEndpointAddr)
}

func TestParseJson_BadJSONPanics(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	os.Args = []string{"cmd", "-c", path}

	var c Config
	c.LoadDefaults()
	require.Panics(t, func() { parseJson(&c) })
}
