// Package config handles configuration for the server component: defaults,
// then .env file and environment variables, then an optional JSON file, then
// command-line flags. Each layer only overrides what it sets.
package config

import (
	"fmt"
	"slices"
	"time"
)

const (
	StorageLocal  = "local"
	StorageS3     = "s3"
	StorageMemory = "memory"
)

// Config holds runtime settings for the SecureShare server. The policy
// fields are read once at startup and never change afterwards.
//
// An empty DatabaseDSN selects the in-memory repository manager.
type Config struct {
	EndpointAddrHTTP string
	EndpointAddrGRPC string
	DatabaseDSN      string
	SecretKey        string
	PublicBaseURL    string
	LogLevel         string

	StorageBackend string
	StorageDir     string
	S3AccessKey    string
	S3SecretKey    string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string

	MaxUploadSize       int64
	AllowedMimeTypes    []string
	MaxPinAttempts      int
	PinLockoutDuration  time.Duration
	DefaultDeviceLimit  int
	MaxDeviceLimit      int
	MaxDuration         time.Duration
	MaxPinRotation      time.Duration
	SuspiciousThreshold int
	SuspiciousWindow    time.Duration
	OneTimeGracePeriod  time.Duration
	CleanupInterval     time.Duration
	SessionTokenTTL     time.Duration
	ShutdownTimeout     time.Duration
}

// DefaultAllowedMimeTypes is the upload allow-list.
var DefaultAllowedMimeTypes = []string{
	"image/jpeg", "image/png", "image/gif",
	"application/pdf",
	"video/mp4", "video/quicktime",
	"audio/mpeg", "audio/wav",
	"text/plain",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey must be overridden outside development.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = "dev-secret-key-change-in-production"
	c.PublicBaseURL = "http://localhost:8080"
	c.LogLevel = "info"

	c.StorageBackend = StorageLocal
	c.StorageDir = "uploads"
	c.S3Bucket = "secure-share-content"
	c.S3Region = "us-east-1"

	c.MaxUploadSize = 100 * 1024 * 1024
	c.AllowedMimeTypes = slices.Clone(DefaultAllowedMimeTypes)
	c.MaxPinAttempts = 3
	c.PinLockoutDuration = 15 * time.Minute
	c.DefaultDeviceLimit = 1
	c.MaxDeviceLimit = 10
	c.MaxDuration = 525600 * time.Minute
	c.MaxPinRotation = 24 * time.Hour
	c.SuspiciousThreshold = 3
	c.SuspiciousWindow = 5 * time.Minute
	c.OneTimeGracePeriod = 5 * time.Second
	c.CleanupInterval = 5 * time.Minute
	c.SessionTokenTTL = 30 * time.Minute
	c.ShutdownTimeout = 10 * time.Second
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case StorageLocal, StorageS3, StorageMemory:
	default:
		return fmt.Errorf("unsupported storage backend %q", c.StorageBackend)
	}
	if len(c.SecretKey) < 16 {
		return fmt.Errorf("secret key must be at least 16 characters")
	}
	if c.MaxPinAttempts < 1 {
		return fmt.Errorf("max pin attempts must be positive")
	}
	if c.DefaultDeviceLimit < 1 || c.DefaultDeviceLimit > c.MaxDeviceLimit {
		return fmt.Errorf("default device limit must be within 1..%d", c.MaxDeviceLimit)
	}
	if c.SuspiciousThreshold < 1 {
		return fmt.Errorf("suspicious threshold must be positive")
	}
	if c.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup interval must be positive")
	}
	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("max upload size must be positive")
	}
	return nil
}

// LoadConfig builds a Config from defaults and the layers above it. args are
// the process arguments without the program name.
func LoadConfig(args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, args, lookupEnv); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
