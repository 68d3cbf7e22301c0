package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestParseJson_OverlaysProvidedFields(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeConfigFile(t, `{
		"server_endpoint_addr": "https://wallet.example.org",
		"request_timeout": "30s",
		"restore_poll_interval": "500ms"
	}`)
	os.Args = []string{"testbin", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "https://wallet.example.org", cfg.ServerEndpointAddr)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, 500*time.Millisecond, cfg.RestorePollInterval)

	// fields absent from the JSON keep their defaults
	require.Equal(t, "wallet.db", cfg.DataFile)
	require.Equal(t, 2*time.Minute, cfg.RestorePollTimeout)
}

func TestParseJson_NoFlagMeansNoFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://127.0.0.1:8080", cfg.ServerEndpointAddr)
}

func TestParseJson_NanosecondDurationsAccepted(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeConfigFile(t, `{"request_timeout": 5000000000}`)
	os.Args = []string{"testbin", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestParseJson_MissingFilePanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "absent.json")}

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJson(cfg) })
}
