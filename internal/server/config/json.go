package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/secureshare/internal/flagx"
	"github.com/dmitrijs2005/secureshare/internal/timex"
)

// JSONConfig is the on-disk shape of the -c/-config file. Durations accept
// "15m" style strings or integer nanoseconds. Absent fields keep the value
// from the lower layers.
type JSONConfig struct {
	EndpointAddrHTTP string `json:"endpoint_addr_http"`
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`
	DatabaseDSN      string `json:"database_dsn"`
	SecretKey        string `json:"secret_key"`
	PublicBaseURL    string `json:"public_base_url"`
	LogLevel         string `json:"log_level"`

	StorageBackend string `json:"storage_backend"`
	StorageDir     string `json:"storage_dir"`
	S3AccessKey    string `json:"s3_access_key"`
	S3SecretKey    string `json:"s3_secret_key"`
	S3Bucket       string `json:"s3_bucket"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`

	MaxUploadSize       *int64          `json:"max_upload_size"`
	AllowedMimeTypes    []string        `json:"allowed_content_types"`
	MaxPinAttempts      *int            `json:"max_pin_attempts"`
	PinLockoutDuration  *timex.Duration `json:"pin_lockout_duration"`
	DefaultDeviceLimit  *int            `json:"default_device_limit"`
	MaxDeviceLimit      *int            `json:"max_device_limit"`
	SuspiciousThreshold *int            `json:"suspicious_threshold"`
	SuspiciousWindow    *timex.Duration `json:"suspicious_window"`
	OneTimeGracePeriod  *timex.Duration `json:"one_time_grace_period"`
	CleanupInterval     *timex.Duration `json:"cleanup_interval"`
	SessionTokenTTL     *timex.Duration `json:"session_token_ttl"`
}

func parseJSON(c *Config, args []string) error {
	path := flagx.JSONConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	j := &JSONConfig{}
	if err := json.Unmarshal(file, j); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	j.apply(c)
	return nil
}

func (j *JSONConfig) apply(c *Config) {
	setString(&c.EndpointAddrHTTP, j.EndpointAddrHTTP)
	setString(&c.EndpointAddrGRPC, j.EndpointAddrGRPC)
	setString(&c.DatabaseDSN, j.DatabaseDSN)
	setString(&c.SecretKey, j.SecretKey)
	setString(&c.PublicBaseURL, j.PublicBaseURL)
	setString(&c.LogLevel, j.LogLevel)
	setString(&c.StorageBackend, j.StorageBackend)
	setString(&c.StorageDir, j.StorageDir)
	setString(&c.S3AccessKey, j.S3AccessKey)
	setString(&c.S3SecretKey, j.S3SecretKey)
	setString(&c.S3Bucket, j.S3Bucket)
	setString(&c.S3Region, j.S3Region)
	setString(&c.S3BaseEndpoint, j.S3BaseEndpoint)

	if j.MaxUploadSize != nil {
		c.MaxUploadSize = *j.MaxUploadSize
	}
	if len(j.AllowedMimeTypes) > 0 {
		c.AllowedMimeTypes = j.AllowedMimeTypes
	}
	if j.MaxPinAttempts != nil {
		c.MaxPinAttempts = *j.MaxPinAttempts
	}
	if j.DefaultDeviceLimit != nil {
		c.DefaultDeviceLimit = *j.DefaultDeviceLimit
	}
	if j.MaxDeviceLimit != nil {
		c.MaxDeviceLimit = *j.MaxDeviceLimit
	}
	if j.SuspiciousThreshold != nil {
		c.SuspiciousThreshold = *j.SuspiciousThreshold
	}
	setDuration(&c.PinLockoutDuration, j.PinLockoutDuration)
	setDuration(&c.SuspiciousWindow, j.SuspiciousWindow)
	setDuration(&c.OneTimeGracePeriod, j.OneTimeGracePeriod)
	setDuration(&c.CleanupInterval, j.CleanupInterval)
	setDuration(&c.SessionTokenTTL, j.SessionTokenTTL)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
