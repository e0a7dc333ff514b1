package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/shhac/accordion/internal/accordion"
	"github.com/shhac/accordion/internal/domain"
	"github.com/shhac/accordion/internal/logging"
	"github.com/shhac/accordion/internal/panels"
	"github.com/shhac/accordion/internal/storage"
)

// App is the main application coordinator, responsible for wiring
// together all components and managing their lifecycle.
type App struct {
	config    *Config
	logger    *slog.Logger
	catalog   domain.Catalog
	storage   storage.Repository
	accordion *accordion.Accordion

	closers []io.Closer
}

// Option customizes New.
type Option func(*options)

type options struct {
	console io.Writer
	logger  *slog.Logger
}

// WithConsole mirrors logs as text to w (the CLI passes stderr).
func WithConsole(w io.Writer) Option {
	return func(o *options) { o.console = w }
}

// WithLogger skips log file setup and uses logger instead.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New creates a new App instance with the given configuration.
// This performs all dependency injection and wiring, and restores the
// accordion from storage.
func New(cfg *Config, opts ...Option) (_ *App, err error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{config: cfg}
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	// Initialize logger
	a.logger = o.logger
	if a.logger == nil {
		logger, closer, err := logging.InitLogger(logging.Options{
			AppName: "accordion",
			Debug:   cfg.Debug,
			Console: o.console,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
		a.closers = append(a.closers, closer)
	}

	a.logger.Info("initializing accordion",
		slog.Bool("debug", cfg.Debug),
		slog.String("backend", cfg.Backend),
		slog.String("storage_path", cfg.StoragePath),
		slog.String("panels_file", cfg.PanelsFile),
	)

	// Load the panel catalog
	a.catalog, err = panels.Load(cfg.PanelsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load panels: %w", err)
	}

	// Initialize storage
	storagePath := cfg.StoragePath
	if storagePath == "" && cfg.Backend != storage.BackendMemory {
		storagePath, err = storage.DefaultStoragePath()
		if err != nil {
			return nil, fmt.Errorf("failed to determine storage path: %w", err)
		}
	}

	repo, closer, err := storage.Open(cfg.Backend, storagePath, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	a.storage = repo
	a.closers = append(a.closers, closer)

	// Initialize the accordion itself. UI bindings are created by the
	// window, so headless commands never touch fyne.
	a.accordion = accordion.New(repo,
		accordion.WithKey(cfg.Key),
		accordion.WithLogger(a.logger),
		accordion.WithStrict(cfg.Strict),
	)
	if err := a.accordion.Init(len(a.catalog.Panels), a.catalog.DefaultOpen); err != nil {
		return nil, fmt.Errorf("failed to initialize accordion: %w", err)
	}

	a.logger.Info("application initialized successfully",
		slog.Int("panels", len(a.catalog.Panels)),
		slog.Any("open", a.accordion.State().OpenIndices()))

	return a, nil
}

// Run starts the application and displays the main window.
// This is a blocking call that runs the Fyne event loop.
func (a *App) Run(window fyne.Window) {
	a.logger.Info("starting application")
	window.ShowAndRun()
}

// Close releases storage and the log file.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Accordion returns the accordion controller.
func (a *App) Accordion() *accordion.Accordion {
	return a.accordion
}

// Catalog returns the panels being shown.
func (a *App) Catalog() domain.Catalog {
	return a.catalog
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Storage returns the storage repository.
func (a *App) Storage() storage.Repository {
	return a.storage
}

// Config returns the configuration the app was built with.
func (a *App) Config() *Config {
	return a.config
}

// Strict reports whether index errors are surfaced instead of ignored.
func (a *App) Strict() bool {
	return a.config.Strict
}
