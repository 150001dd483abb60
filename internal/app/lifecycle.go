package app

import (
	"yuzu-shot/internal/logger"
	"yuzu-shot/internal/shutdown"
	"yuzu-shot/internal/surface"
	"yuzu-shot/internal/ui"
)

type Lifecycle struct {
	manager *shutdown.Manager
}

// NewLifecycle registers components so the view stops listening before
// the surface buses are closed.
func NewLifecycle(log logger.Logger, view *ui.MainView, surfaces *surface.Registry) *Lifecycle {
	m := shutdown.NewManager(log)
	m.Register("surfaces", shutdown.Func(surfaces.Shutdown))
	m.Register("view", shutdown.Func(view.Shutdown))
	return &Lifecycle{manager: m}
}

func (l *Lifecycle) Manager() *shutdown.Manager {
	return l.manager
}

func (l *Lifecycle) Shutdown() {
	l.manager.Shutdown()
}
