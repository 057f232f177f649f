// Package server wires the share service to its storage backends and runs
// the HTTP and gRPC front ends until a shutdown signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/secureshare/internal/logging"
	"github.com/dmitrijs2005/secureshare/internal/server/blobstore"
	"github.com/dmitrijs2005/secureshare/internal/server/config"
	"github.com/dmitrijs2005/secureshare/internal/server/httpapi"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/secureshare/internal/server/secrets"
	"github.com/dmitrijs2005/secureshare/internal/server/services"

	gs "github.com/dmitrijs2005/secureshare/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	shares      *services.ShareService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	keyring, err := secrets.NewKeyring([]byte(c.SecretKey))
	if err != nil {
		return nil, fmt.Errorf("secret init error: %w", err)
	}
	c.SecretKey = ""
	keys, err := keyring.Keys()
	if err != nil {
		return nil, fmt.Errorf("key derivation error: %w", err)
	}

	rm, err := newRepositoryManager(ctx, c, logger)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	blobs, err := newBlobStore(ctx, c)
	if err != nil {
		rm.Close()
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	shares := services.NewShareService(rm, blobs, keys, services.PolicyFromConfig(c), services.WithLogger(logger))

	return &App{config: c, logger: logger, repomanager: rm, shares: shares}, nil
}

// newRepositoryManager connects to PostgreSQL and migrates it, or falls back
// to the in-memory store when no DSN is configured.
func newRepositoryManager(ctx context.Context, c *config.Config, l logging.Logger) (repomanager.RepositoryManager, error) {
	if c.DatabaseDSN == "" {
		l.Warn(ctx, "No database configured, state is kept in memory")
		return repomanager.NewMemoryRepositoryManager(), nil
	}

	db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	rm, err := repomanager.NewPostgresRepositoryManager(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	if err := rm.RunMigrations(ctx); err != nil {
		rm.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return rm, nil
}

func newBlobStore(ctx context.Context, c *config.Config) (blobstore.Store, error) {
	switch c.StorageBackend {
	case config.StorageS3:
		return blobstore.NewS3Store(ctx, blobstore.S3Config{
			Bucket:    c.S3Bucket,
			Region:    c.S3Region,
			Endpoint:  c.S3BaseEndpoint,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
		})
	case config.StorageMemory:
		return blobstore.NewMemoryStore(), nil
	default:
		return blobstore.NewLocalStore(c.StorageDir)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.shares, app.config.PublicBaseURL)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	h := httpapi.NewHandler(app.shares, app.config.PublicBaseURL, app.config.MaxUploadSize, app.logger)
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, h, app.logger, app.config.ShutdownTimeout)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.shares.RunSweeper(ctx, app.config.CleanupInterval)
	}()

	wg.Wait()

	app.shares.Shutdown()
	if err := app.repomanager.Close(); err != nil {
		app.logger.Error(ctx, "close repositories", "error", err)
	}
	app.logger.Info(ctx, "Stopped")
}
