package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/secureshare/internal/client/config"
	"github.com/dmitrijs2005/secureshare/internal/client/localdb"
	"github.com/dmitrijs2005/secureshare/internal/client/repositories/shares"
	"github.com/dmitrijs2005/secureshare/internal/client/shareclient"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config  *config.Config
	client  shareclient.Client
	history shares.Repository
	closers []io.Closer
	reader  *bufio.Reader
	out     io.Writer

	mu   sync.Mutex
	mode Mode
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	apiClient, err := shareclient.NewShareClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}
	app := &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}

	if c.HistoryDB != "" {
		repos, err := localdb.InitDatabase(ctx, c.HistoryDB)
		if err != nil {
			apiClient.Close()
			return nil, fmt.Errorf("history database: %w", err)
		}
		app.history = repos.Shares
		app.closers = append(app.closers, repos)
	}

	return app, nil
}

func (a *App) close() {
	a.client.Close()
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			log.Printf("close: %v", err)
		}
	}
}

func (app *App) setMode(mode Mode) {
	app.mu.Lock()
	defer app.mu.Unlock()
	if app.mode != mode {
		app.mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (app *App) Mode() Mode {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.mode
}

// Run executes the subcommand in args, or the interactive prompt when args
// is empty.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.close()

	if len(args) == 0 {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
		runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
		return nil
	}
	return a.Execute(ctx, args)
}

func (a *App) getStatus() string {
	mode := a.Mode()
	if mode == "" {
		return ""
	}
	return "(" + string(mode) + ")"
}

// StartOnlineStatusWatcher pings the server every interval until ctx ends.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.client.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

// withTimeout bounds a single server round trip.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
