package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "client.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, "http://127.0.0.1:8080", c.HTTPBaseURL)
	assert.Equal(t, "downloads", c.OutputDir)
	assert.Equal(t, "secureshare-history.db", c.HistoryDB)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"server_endpoint_addr": "json:9000",
		"http_base_url":        "http://json:8080",
		"request_timeout":      "10s",
		"online_check_interval": "7s",
	})

	tests := []struct {
		name     string
		args     []string
		expected *Config
	}{
		{
			name: "defaults only",
			args: []string{"status", "abc"},
			expected: &Config{ServerEndpointAddr: "127.0.0.1:50051", HTTPBaseURL: "http://127.0.0.1:8080",
				OutputDir: "downloads", HistoryDB: "secureshare-history.db", RequestTimeout: 30 * time.Second, OnlineCheckInterval: 3 * time.Second},
		},
		{
			name: "json overrides defaults",
			args: []string{"-c", path, "stats"},
			expected: &Config{ServerEndpointAddr: "json:9000", HTTPBaseURL: "http://json:8080",
				OutputDir: "downloads", HistoryDB: "secureshare-history.db", RequestTimeout: 10 * time.Second, OnlineCheckInterval: 7 * time.Second},
		},
		{
			name: "flags override json",
			args: []string{"-config", path, "-a", "flag:7000", "-o", "/tmp/out", "-t", "5", "-i", "1", "-d", "", "access", "id", "-pin", "1234"},
			expected: &Config{ServerEndpointAddr: "flag:7000", HTTPBaseURL: "http://json:8080",
				OutputDir: "/tmp/out", HistoryDB: "", RequestTimeout: 5 * time.Second, OnlineCheckInterval: time.Second},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(tt.args)
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))

	_, err := LoadConfig([]string{"-c", bad})
	require.Error(t, err)

	_, err = LoadConfig([]string{"-c", filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, err)

	_, err = LoadConfig([]string{"-t", "abc"})
	require.Error(t, err)
}
