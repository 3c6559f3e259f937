package main

import (
	"context"
	"fmt"
	"log"
	"runtime"

	"stock-manager/internal/config"
	"stock-manager/internal/controllers"
	"stock-manager/internal/logger"
	"stock-manager/internal/services"
	"stock-manager/internal/shutdown"
	"stock-manager/internal/store"
	"stock-manager/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Stock Management System"
	AppID      = "com.inventory.stock-manager"
	AppVersion = "1.0.0"
)

// Application owns the long-lived pieces of a running stock manager
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	cfg     config.Config

	controller *controllers.MainController
	view       *views.MainView

	store    *store.SQLiteStore
	shutdown *shutdown.Manager

	ctx    context.Context
	cancel context.CancelFunc
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := NewApplication(ctx, cfg)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	application.Run()
}

// NewApplication opens the inventory store and wires the MVC components
func NewApplication(ctx context.Context, cfg config.Config) (*Application, error) {
	appLogger := logger.New(cfg.LogLevel, cfg.DevMode)

	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":     AppVersion,
		"go_version":  runtime.Version(),
		"db_path":     cfg.DBPath,
		"export_path": cfg.ExportPath,
		"strict_ids":  cfg.StrictIDs,
		"log_level":   cfg.LogLevel,
	})

	openCtx, openCancel := context.WithTimeout(ctx, cfg.OpTimeout)
	defer openCancel()

	st, err := store.Open(openCtx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening inventory store: %w", err)
	}

	inventory := services.NewInventoryService(st, appLogger, services.WithStrictIDs(cfg.StrictIDs))
	exporter := services.NewExportService(inventory, appLogger)

	fyneApp := app.NewWithID(AppID)
	fyneApp.SetMetadata(&fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})

	window := fyneApp.NewWindow(AppName)
	mainView := views.NewMainView(window)
	window.CenterOnScreen()

	mainController := controllers.NewMainController(inventory, exporter, appLogger, cfg.ExportPath, cfg.OpTimeout)
	mainController.SetMainView(mainView)

	appCtx, appCancel := context.WithCancel(ctx)

	shutdownManager := shutdown.NewManager(appLogger, cfg.OpTimeout)
	shutdownManager.Register("store", st)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		cfg:        cfg,
		controller: mainController,
		view:       mainView,
		store:      st,
		shutdown:   shutdownManager,
		ctx:        appCtx,
		cancel:     appCancel,
	}

	mainView.SetQuitHandler(application.quit)
	application.setupWindowEvents()

	return application, nil
}

// Run shows the window and blocks until the fyne event loop exits
func (a *Application) Run() {
	a.shutdown.Listen(a.ctx, func() {
		fyne.Do(a.quit)
	})

	a.controller.Start()
	a.view.Show()

	a.fyneApp.Run()

	a.cancel()
	a.shutdown.Shutdown()
	a.logger.Info("Application", "terminated", nil)
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "window close requested", nil)
		a.quit()
	})
}

func (a *Application) quit() {
	a.fyneApp.Quit()
}
