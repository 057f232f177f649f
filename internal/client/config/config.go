// Package config loads runtime configuration for the SecureShare CLI.
//
// Sources are applied in order, later ones overriding earlier ones:
// built-in defaults, an optional JSON file (-c or -config), then short
// command-line flags.
//
//	-a string   address:port of the gRPC endpoint
//	-w string   base URL of the HTTP API, used for PDF and QR downloads
//	-o string   directory decrypted content and downloads are written to
//	-t int      request timeout (seconds)
//	-i int      online check interval in interactive mode (seconds)
//	-d string   local share history database; empty disables history
package config

import "time"

type Config struct {
	ServerEndpointAddr string
	HTTPBaseURL        string
	OutputDir          string
	HistoryDB          string
	RequestTimeout     time.Duration

	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with values matching a locally running server.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.HTTPBaseURL = "http://127.0.0.1:8080"
	c.OutputDir = "downloads"
	c.HistoryDB = "secureshare-history.db"
	c.RequestTimeout = 30 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig builds a Config from defaults, the JSON file named in args and
// the flags in args.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
