package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/secureshare/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-g string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN; empty selects the in-memory store
//	-s string   server master secret
//	-u string   public base URL used in share links
//	-l string   log level (debug, info, warn, error)
//	-b string   blob storage backend (local, s3, memory)
//	-o string   local blob directory
//	-i int      cleanup interval, minutes
//	-m int      max PIN attempts before lockout
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-d", "-s", "-u", "-l", "-b", "-o", "-i", "-m"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.PublicBaseURL, "u", config.PublicBaseURL, "public base URL")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.StorageBackend, "b", config.StorageBackend, "blob storage backend")
	fs.StringVar(&config.StorageDir, "o", config.StorageDir, "local blob directory")

	cleanupInterval := fs.Int("i", int(config.CleanupInterval.Minutes()), "cleanup interval (in minutes)")
	fs.IntVar(&config.MaxPinAttempts, "m", config.MaxPinAttempts, "max PIN attempts")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			config.CleanupInterval = time.Duration(*cleanupInterval) * time.Minute
		}
	})
	return nil
}
