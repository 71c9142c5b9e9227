package app

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/movo/dashboard/internal/api"
	"github.com/movo/dashboard/internal/config"
	"github.com/movo/dashboard/internal/dashboard"
	"github.com/movo/dashboard/internal/logger"
	"github.com/movo/dashboard/internal/profile"
	"github.com/movo/dashboard/internal/repository"
	"github.com/movo/dashboard/internal/session"
	"github.com/movo/dashboard/internal/wallet"
	"github.com/movo/dashboard/internal/workflow"
	"go.uber.org/zap"
)

// App is the dependency injection container for all application components
type App struct {
	Config *config.Config
	Log    *zap.Logger

	// Backend client for the profile and invoice services
	API *api.Client

	// Wallet provider and the session observing it
	Wallet  *wallet.Provider
	Session *session.Context

	Dashboard *dashboard.Controller
}

// New creates a new App instance from the default config path
func New(ctx context.Context) (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	return NewWithConfig(ctx, cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, errors.Wrap(err, "failed to create directories")
	}

	log := logger.NewOrNop(cfg.Log.Path, cfg.Log.Level)

	client := api.NewClient(api.Config{
		BaseURL:      cfg.API.BaseURL,
		Timeout:      cfg.API.Timeout,
		RetryMax:     cfg.API.RetryMax,
		RetryWaitMin: cfg.API.RetryWaitMin,
		RetryWaitMax: cfg.API.RetryWaitMax,
	}, log)

	provider := wallet.NewProvider(wallet.NewStore(cfg.Wallet.KeyringService, cfg.Wallet.EnvVar), log)
	sess := session.New(log)

	ctrl := dashboard.New(
		sess,
		profile.NewGate(client, cfg.Cache.ProfileTTL, log),
		repository.NewInvoiceRepo(client, log),
		workflow.NewMachine(cfg.Invoice.DefaultCurrency, log),
		client,
		client,
		log,
	)

	log.Debug("app initialized", zap.String("api", cfg.API.BaseURL))

	return &App{
		Config:    cfg,
		Log:       log,
		API:       client,
		Wallet:    provider,
		Session:   sess,
		Dashboard: ctrl,
	}, nil
}

// Close flushes the logger
func (a *App) Close() error {
	if a.Log != nil {
		_ = a.Log.Sync()
	}
	return nil
}
