package app

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"property-tax-tracker/internal/config"
	"property-tax-tracker/internal/controllers"
	"property-tax-tracker/internal/logger"
	"property-tax-tracker/internal/shutdown"
	"property-tax-tracker/internal/store"
	"property-tax-tracker/internal/timing"
	"property-tax-tracker/internal/views"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppName    = "Property Tax Tracker"
	AppID      = "com.propertytax.tracker"
	AppVersion = "1.0.0"
)

const component = "Application"

// Options configures NewApplication. FyneApp may be set to run against a
// test driver; when nil a real application is created.
type Options struct {
	Config  *config.Config
	Logger  logger.Logger
	FyneApp fyne.App
}

// Application wires the record store, the form controller and the main view
type Application struct {
	// Core components
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  *config.Config

	// MVC Components
	store      *store.Store
	timings    *timing.Tracker
	controller *controllers.FormController
	view       *views.MainView

	// Lifecycle management
	shutdown *shutdown.Manager
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewApplication opens the store and builds the window
func NewApplication(ctx context.Context, opts Options) (*Application, error) {
	if opts.Config == nil {
		return nil, errors.New("application config is required")
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	s, err := OpenStore(opts.Config.Database, log)
	if err != nil {
		return nil, err
	}

	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := opts.FyneApp
	if fyneApp == nil {
		fyneApp = fyneapp.NewWithID(AppID)
	}

	window := fyneApp.NewWindow(views.WindowTitle)
	window.Resize(fyne.NewSize(opts.Config.Window.Width, opts.Config.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	appCtx, appCancel := context.WithCancel(ctx)

	tracker := timing.NewTracker()
	timed := timing.WrapStore(s, tracker)

	mainView := views.NewMainView(window, timed)
	controller := controllers.NewFormController(appCtx, timed, log)
	controller.SetView(mainView)

	manager := shutdown.NewManager(log)
	manager.Register(shutdown.Func("store", s.Close))

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		config:     opts.Config,
		store:      s,
		timings:    tracker,
		controller: controller,
		view:       mainView,
		shutdown:   manager,
		ctx:        appCtx,
		cancel:     appCancel,
	}

	application.setupWindowEvents()
	application.setupMenus()

	log.Info(component, "application initialized", map[string]interface{}{
		"version":    AppVersion,
		"database":   s.Path(),
		"driver":     s.Driver(),
		"go_version": runtime.Version(),
	})

	return application, nil
}

// OpenStore opens the configured record store and logs where it lives
func OpenStore(cfg config.DatabaseConfig, log logger.Logger) (*store.Store, error) {
	s, err := store.Open(cfg.Path, cfg.Driver)
	if err != nil {
		log.Error("Store", err, map[string]interface{}{"path": cfg.Path, "driver": cfg.Driver})
		return nil, fmt.Errorf("open record store: %w", err)
	}

	log.Debug("Store", "record store opened", map[string]interface{}{
		"path":   cfg.Path,
		"driver": cfg.Driver,
	})
	return s, nil
}

// Run shows the window and blocks until it is closed or a signal arrives
func (app *Application) Run() error {
	app.logger.Info(component, "starting application UI", nil)

	app.shutdown.Listen(func() {
		app.cancel()
		fyne.Do(app.fyneApp.Quit)
	})

	app.view.Show()

	if app.config.UI.RefreshOnStart {
		if _, err := app.controller.SubmitView(); err != nil {
			app.logger.Warning(component, "initial refresh failed", nil)
		}
	}

	// Run Fyne application (blocking)
	app.fyneApp.Run()

	app.Shutdown()
	return nil
}

// Shutdown releases the store. Safe to call more than once.
func (app *Application) Shutdown() {
	app.cancel()
	for _, stat := range app.timings.Stats() {
		app.logger.Debug(component, "store operation timings", map[string]interface{}{
			"operation": stat.Operation,
			"count":     stat.Count,
			"mean":      stat.Mean().String(),
			"max":       stat.Max.String(),
		})
	}
	app.shutdown.Shutdown()
}

// setupWindowEvents configures window lifecycle events
func (app *Application) setupWindowEvents() {
	app.window.SetOnClosed(func() {
		app.logger.Info(component, "window closed, performing cleanup", nil)
		app.Shutdown()
	})
}

// Controller exposes the form controller
func (app *Application) Controller() *controllers.FormController {
	return app.controller
}

// View exposes the main view
func (app *Application) View() *views.MainView {
	return app.view
}

// Timings exposes the store operation timings
func (app *Application) Timings() *timing.Tracker {
	return app.timings
}

// Store exposes the record store
func (app *Application) Store() *store.Store {
	return app.store
}
