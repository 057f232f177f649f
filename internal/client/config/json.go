package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/secureshare/internal/flagx"
	"github.com/dmitrijs2005/secureshare/internal/timex"
)

// JSONConfig is the file form of Config. Empty fields keep their defaults.
type JSONConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	HTTPBaseURL        string         `json:"http_base_url"`
	OutputDir          string         `json:"output_dir"`
	HistoryDB          string         `json:"history_db"`
	RequestTimeout     timex.Duration `json:"request_timeout"`

	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
}

func parseJSON(cfg *Config, args []string) error {
	path := flagx.JSONConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.HTTPBaseURL != "" {
		cfg.HTTPBaseURL = jc.HTTPBaseURL
	}
	if jc.OutputDir != "" {
		cfg.OutputDir = jc.OutputDir
	}
	if jc.HistoryDB != "" {
		cfg.HistoryDB = jc.HistoryDB
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	return nil
}
