package config

import "time"

// Config holds the CLI's runtime settings: where to dial the vault server
// and how often to probe it for reachability.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
}

// LoadDefaults resets c to the built-in defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig builds a Config from defaults, then a JSON file if one is
// named, then command-line flags. Each source overrides the previous.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
