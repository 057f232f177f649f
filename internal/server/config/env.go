package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/secureshare/internal/flagx"
)

const defaultEnvFile = ".env"

// parseEnv overlays values from the process environment and a dotenv file.
// The file is -env when given, else ./.env if present. Real environment
// variables win over the file.
func parseEnv(c *Config, args []string, lookupEnv func(string) (string, bool)) error {
	path := flagx.EnvFilePath(args)
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	fileVars, err := godotenv.Read(path)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read env file %s: %w", path, err)
		}
		fileVars = map[string]string{}
	}

	get := func(key string) (string, bool) {
		if lookupEnv != nil {
			if v, ok := lookupEnv(key); ok {
				return v, true
			}
		}
		v, ok := fileVars[key]
		return v, ok
	}

	str := func(key string, dst *string) {
		if v, ok := get(key); ok && v != "" {
			*dst = v
		}
	}
	str("HTTP_ADDR", &c.EndpointAddrHTTP)
	str("GRPC_ADDR", &c.EndpointAddrGRPC)
	str("DATABASE_URL", &c.DatabaseDSN)
	str("SECRET_KEY", &c.SecretKey)
	str("PUBLIC_BASE_URL", &c.PublicBaseURL)
	str("LOG_LEVEL", &c.LogLevel)
	str("CLOUD_PROVIDER", &c.StorageBackend)
	str("CLOUD_BUCKET", &c.S3Bucket)
	str("STORAGE_DIR", &c.StorageDir)
	str("S3_ACCESS_KEY", &c.S3AccessKey)
	str("S3_SECRET_KEY", &c.S3SecretKey)
	str("S3_REGION", &c.S3Region)
	str("S3_ENDPOINT", &c.S3BaseEndpoint)

	var errs []error
	integer := func(key string, set func(int)) {
		v, ok := get(key)
		if !ok || v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		set(n)
	}
	integer("MAX_PIN_ATTEMPTS", func(n int) { c.MaxPinAttempts = n })
	integer("PIN_LOCKOUT_MINUTES", func(n int) { c.PinLockoutDuration = time.Duration(n) * time.Minute })
	integer("CLEANUP_INTERVAL_MINUTES", func(n int) { c.CleanupInterval = time.Duration(n) * time.Minute })
	integer("SUSPICIOUS_THRESHOLD", func(n int) { c.SuspiciousThreshold = n })
	integer("DEFAULT_DEVICE_LIMIT", func(n int) { c.DefaultDeviceLimit = n })
	integer("MAX_DEVICE_LIMIT", func(n int) { c.MaxDeviceLimit = n })
	integer("MAX_FILE_SIZE", func(n int) { c.MaxUploadSize = int64(n) })

	if v, ok := get("ALLOWED_CONTENT_TYPES"); ok && v != "" {
		c.AllowedMimeTypes = splitList(v)
	}

	return errors.Join(errs...)
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
