package app

import (
	"fmt"

	"fyne.io/fyne/v2"

	"yuzu-shot/internal/config"
	"yuzu-shot/internal/logger"
	"yuzu-shot/internal/menu"
	"yuzu-shot/internal/router"
	"yuzu-shot/internal/shell"
	"yuzu-shot/internal/surface"
	"yuzu-shot/internal/ui"
)

const (
	AppName    = menu.AppName
	AppID      = "com.yuzuhub.appscreen"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp   fyne.App
	window    fyne.Window
	logger    logger.Logger
	surfaces  *surface.Registry
	menuBar   menu.MenuBar
	lifecycle *Lifecycle
}

// NewApplication wires the main window, its surface, the router and the
// menu bar. A menu assembly or install failure is returned and must stop
// startup.
func NewApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NoOp{}
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":  AppVersion,
		"platform": cfg.Platform,
	})

	surfaces := surface.NewRegistry(cfg.EventBuffer, log)
	mainSurface := surfaces.Register(router.MainSurface)

	view := ui.NewMainView(window, log)
	view.Bind(mainSurface, router.MenuActionEvent)

	r := router.New(fyneApp, lookupIn(surfaces), log)

	bar, err := menu.Assemble(cfg.MenuPlatform(), shell.NewHandle(fyneApp, window, cfg.MenuPlatform(), r.Route, log))
	if err != nil {
		surfaces.Shutdown()
		return nil, fmt.Errorf("assemble menu: %w", err)
	}
	if err := shell.Install(window, bar); err != nil {
		surfaces.Shutdown()
		return nil, err
	}

	log.Info("Application", "menu installed", map[string]interface{}{
		"groups": len(bar.Layout.Groups),
		"items":  len(bar.Layout.ItemIDs()),
	})

	application := &Application{
		fyneApp:   fyneApp,
		window:    window,
		logger:    log,
		surfaces:  surfaces,
		menuBar:   bar,
		lifecycle: NewLifecycle(log, view, surfaces),
	}

	window.SetContent(view.Content())
	return application, nil
}

// lookupIn exposes the registry as a router.SurfaceLookup.
func lookupIn(reg *surface.Registry) router.SurfaceLookup {
	return func(name string) (router.Emitter, bool) {
		s, ok := reg.Lookup(name)
		if !ok {
			return nil, false
		}
		return s, true
	}
}

func (a *Application) MenuBar() menu.MenuBar {
	return a.menuBar
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) Lifecycle() *Lifecycle {
	return a.lifecycle
}

// Run shows the window and blocks until the Fyne app exits.
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}

// Quit stops the Fyne event loop from any goroutine.
func (a *Application) Quit() {
	fyne.Do(a.fyneApp.Quit)
}
