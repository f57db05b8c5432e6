package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jay4webdev/Bill-Tracker/internal/auth"
	"github.com/jay4webdev/Bill-Tracker/internal/config"
	"github.com/jay4webdev/Bill-Tracker/internal/lifecycle"
	"github.com/jay4webdev/Bill-Tracker/internal/metrics"
	"github.com/jay4webdev/Bill-Tracker/internal/models"
	"github.com/jay4webdev/Bill-Tracker/internal/state"
	"github.com/jay4webdev/Bill-Tracker/internal/storage"
	"github.com/jay4webdev/Bill-Tracker/internal/storage/filestore"
	"github.com/jay4webdev/Bill-Tracker/internal/storage/sqlite"
	"github.com/jay4webdev/Bill-Tracker/pkg/logging"
)

// app is the wired application shared by every command.
type app struct {
	cfg           *config.Config
	logger        *slog.Logger
	store         storage.Store
	state         *state.Controller
	metrics       *metrics.Metrics
	authenticator *auth.PasswordAuthenticator
}

// openApp loads configuration, opens the store and loads state. The store
// is seeded with the admin account and default lists when it has no users.
func openApp(ctx context.Context, opts *RootOptions) (*app, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	return newApp(ctx, cfg)
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger := logging.Setup(os.Stderr, level, cfg.Log.Format)

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	store, err := openStore(cfg.Storage)
	if err != nil {
		return nil, err
	}
	logger.Info("Storage initialized", "driver", cfg.Storage.Driver, "path", cfg.Storage.Path)

	m := metrics.New()
	st := state.New(store,
		state.WithClock(lifecycle.NewSystemClock(loc)),
		state.WithLogger(logger),
		state.WithObserver(m.Observe),
	)

	a := &app{
		cfg:           cfg,
		logger:        logger,
		store:         store,
		state:         st,
		metrics:       m,
		authenticator: auth.NewPasswordAuthenticator(st),
	}

	if err := st.Refresh(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	if err := a.seed(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func openStore(cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return sqlite.New(cfg.Path)
	case config.DriverFile:
		return filestore.New(cfg.Path)
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

func (a *app) seed(ctx context.Context) error {
	if len(a.state.Users()) > 0 {
		return nil
	}

	password := a.cfg.Auth.AdminPassword
	if password == "" {
		generated, err := config.GeneratePassword()
		if err != nil {
			return err
		}
		password = generated
		a.logger.Warn("No admin password configured. Generated one for the new admin account; change it after signing in.",
			"username", a.cfg.Auth.AdminUsername,
			"password", password,
		)
	}

	hash, err := a.authenticator.Hash(password)
	if err != nil {
		return fmt.Errorf("admin password: %w", err)
	}
	admin := models.NewUser(a.cfg.Auth.AdminUsername, "Administrator", hash, models.RoleAdmin)
	if _, err := a.state.Seed(ctx, *admin); err != nil {
		return fmt.Errorf("failed to seed store: %w", err)
	}
	return nil
}

func (a *app) Close() error {
	return a.store.Close()
}
