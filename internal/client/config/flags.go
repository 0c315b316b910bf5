package config

import (
	"flag"
	"os"
	"time"

	"github.com/fgclabs/combovault/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   host:port of the vault server
//	-i int      online check interval, seconds
//
// os.Args is filtered through flagx.FilterArgs first so that flags owned by
// other layers (such as -c/-config for the JSON overlay) pass through
// untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
