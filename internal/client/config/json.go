package config

import (
	"encoding/json"
	"os"

	"github.com/umuhoratech/wallet-cli/internal/flagx"
	"github.com/umuhoratech/wallet-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "15s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	DataFile            string         `json:"data_file"`
	CookieFile          string         `json:"cookie_file"`
	RestorePollInterval timex.Duration `json:"restore_poll_interval"`
	RestorePollTimeout  timex.Duration `json:"restore_poll_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// comes from the -c/-config flags. Absent flags mean no JSON is loaded.
// Empty/zero JSON fields leave the current value in place. Read or
// unmarshal errors panic; intended usage is defaults -> parseJson ->
// parseFlags, where later stages override earlier ones.
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
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DataFile != "" {
		cfg.DataFile = jc.DataFile
	}
	if jc.CookieFile != "" {
		cfg.CookieFile = jc.CookieFile
	}
	if jc.RestorePollInterval.Duration != 0 {
		cfg.RestorePollInterval = jc.RestorePollInterval.Duration
	}
	if jc.RestorePollTimeout.Duration != 0 {
		cfg.RestorePollTimeout = jc.RestorePollTimeout.Duration
	}
}
