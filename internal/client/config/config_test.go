package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://127.0.0.1:8080", cfg.ServerEndpointAddr)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "wallet.db", cfg.DataFile)
	require.Equal(t, "cookie.json", cfg.CookieFile)
	require.Equal(t, 2*time.Second, cfg.RestorePollInterval)
	require.Equal(t, 2*time.Minute, cfg.RestorePollTimeout)
}

func TestLoadConfig_NoArgsKeepsDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()
	require.Equal(t, "http://127.0.0.1:8080", cfg.ServerEndpointAddr)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-a", "https://wallet.example.org", "-d", "/tmp/w.db", "-t", "30"}

	cfg := LoadConfig()
	require.Equal(t, "https://wallet.example.org", cfg.ServerEndpointAddr)
	require.Equal(t, "/tmp/w.db", cfg.DataFile)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
}
