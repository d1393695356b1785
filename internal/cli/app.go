// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/avdedit/internal/application/port"
	"github.com/bnema/avdedit/internal/application/usecase"
	"github.com/bnema/avdedit/internal/cli/styles"
	"github.com/bnema/avdedit/internal/domain/build"
	"github.com/bnema/avdedit/internal/domain/entity"
	"github.com/bnema/avdedit/internal/infrastructure/avd"
	"github.com/bnema/avdedit/internal/infrastructure/avdconfig"
	"github.com/bnema/avdedit/internal/infrastructure/config"
	"github.com/bnema/avdedit/internal/logging"
)

// Options holds per-invocation overrides from global flags.
type Options struct {
	// AvdRoot overrides avd_root from config and environment.
	AvdRoot string
	// Verbose mirrors logs to stderr.
	Verbose bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info

	// Adapters
	Registry port.AvdRegistry
	Store    port.ConfigStore
	Watcher  port.ConfigWatcher

	// Use cases
	ListAvdsUC *usecase.ListAvdsUseCase

	avdRoot string

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	cfg, cfgErr := config.Load()
	theme := styles.NewTheme(cfg)

	// Logs go to the rotating file only, so the TUI is never drawn over.
	logger, logCleanup, logErr := logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(cfg.Logging.Level),
			Format:     cfg.Logging.Format,
			TimeFormat: logging.ConsoleTimeFormat,
		},
		logging.FileConfig{
			Enabled:       cfg.Logging.EnableFileLog,
			LogDir:        cfg.Logging.LogDir,
			MaxSizeMB:     cfg.Logging.MaxSizeMB,
			MaxBackups:    cfg.Logging.MaxBackups,
			WriteToStderr: opts.Verbose,
		},
	)
	ctx := logging.WithContext(context.Background(), logger)
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("file logging disabled")
	}
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default settings")
	}

	registry := avd.NewOSRegistry()
	store := avdconfig.NewOSFileStore()

	root := opts.AvdRoot
	if root == "" {
		root = cfg.AvdRoot
	}

	logger.Debug().Str("avd_root", root).Msg("cli initialized")

	return &App{
		Config:     cfg,
		Theme:      theme,
		Registry:   registry,
		Store:      store,
		Watcher:    avdconfig.NewWatcher(avdconfig.DefaultDebounce),
		ListAvdsUC: usecase.NewListAvdsUseCase(registry),
		avdRoot:    root,
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// AvdRoot returns the configured AVD root. Empty means the registry default.
func (a *App) AvdRoot() string {
	return a.avdRoot
}

// NewSession creates an edit session backed by the app's store.
func (a *App) NewSession() *usecase.EditSession {
	return usecase.NewEditSession(a.Store)
}

// OpenAvd resolves name and opens its config.ini in a new session.
func (a *App) OpenAvd(name string) (*usecase.EditSession, entity.AvdDescriptor, error) {
	ctx := logging.WithAvd(a.ctx, name)

	desc, err := a.ListAvdsUC.Resolve(ctx, a.avdRoot, name)
	if err != nil {
		return nil, entity.AvdDescriptor{}, err
	}

	session := a.NewSession()
	if err := session.Open(ctx, desc); err != nil {
		return nil, desc, fmt.Errorf("open %s: %w", desc.Name, err)
	}
	return session, desc, nil
}
