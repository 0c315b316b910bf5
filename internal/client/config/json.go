package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/fgclabs/combovault/internal/flagx"
	"github.com/fgclabs/combovault/internal/timex"
)

// JsonConfig is the unmarshalling shape for the optional JSON config file.
// Intervals use timex.Duration, so the file may say "3s" or give integer
// nanoseconds; the runtime Config keeps plain time.Duration.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// Without either flag it is a no-op. Read or decode failures panic.
// Runs between LoadDefaults and parseFlags, so flags win.
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

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
}
