package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/ddanshin/cipherdir/internal/client/client"
	"github.com/ddanshin/cipherdir/internal/client/config"
	"github.com/ddanshin/cipherdir/internal/client/keyring"
	"github.com/ddanshin/cipherdir/internal/client/services"
	"github.com/ddanshin/cipherdir/internal/cryptox"
	"github.com/ddanshin/cipherdir/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config      *config.Config
	apiClient   client.Client
	userService services.UserService
	keys        *keyring.Keyring
	logger      logging.Logger
	userName    string
	Mode        Mode
	reader      *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	pemText, err := c.PrivateKeyMaterial()
	if err != nil {
		return nil, err
	}

	keys := keyring.New(pemText, cryptox.RSAOAEPSHA256)

	// Import eagerly so a bad key surfaces at startup, not mid-listing.
	if _, err := keys.Key(); err != nil {
		return nil, err
	}

	repos, err := client.InitDatabase(ctx, c.CacheDSN)
	if err != nil {
		logger.Error(ctx, "error initializing cache database", "error", err)
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout)
	us := services.NewUserService(apiClient, repos.Users, keys, logger)

	return &App{
		config:      c,
		apiClient:   apiClient,
		userService: us,
		keys:        keys,
		logger:      logger,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.keys.Close()
	defer a.apiClient.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.logger.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.apiClient.Ping(pingCtx)
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
