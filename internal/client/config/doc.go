// Package config loads runtime settings for the ComboVault CLI.
//
// Values are resolved in three layers, later layers winning: built-in
// defaults, an optional JSON file named by -c/-config, then command-line
// flags (-a endpoint address, -i online check interval in seconds).
//
// The JSON file uses timex.Duration for intervals, so either form works:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s"
//	}
//
// Environment variables are not consulted.
package config
