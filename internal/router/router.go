// Package router dispatches menu activations either to the system browser
// or to the main UI surface as a menu-action event.
package router

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"yuzu-shot/internal/logger"
)

const (
	MainSurface     = "main"
	MenuActionEvent = "menu-action"
)

// URLOpener opens a URL in the default application. fyne.App satisfies it.
type URLOpener interface {
	OpenURL(u *url.URL) error
}

// Emitter delivers a named event with a string payload to a UI surface.
type Emitter interface {
	Emit(event, payload string) error
}

// SurfaceLookup finds a UI surface by name.
type SurfaceLookup func(name string) (Emitter, bool)

type Router struct {
	opener URLOpener
	lookup SurfaceLookup
	logger logger.Logger
}

func New(opener URLOpener, lookup SurfaceLookup, log logger.Logger) *Router {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Router{
		opener: opener,
		lookup: lookup,
		logger: log,
	}
}

// Route handles one activation. Failures are logged and swallowed.
func (r *Router) Route(id string) {
	action := Resolve(id)
	fields := map[string]interface{}{
		"activation": uuid.NewString(),
		"id":         id,
		"action":     action.Kind.String(),
	}
	r.logger.Debug("Router", "menu activated", fields)

	switch action.Kind {
	case ActionOpenURL:
		if err := r.open(action.URL); err != nil {
			fields["url"] = action.URL
			fields["error"] = err.Error()
			r.logger.Warning("Router", "failed to open url", fields)
		}
	default:
		if err := r.forward(id); err != nil {
			fields["error"] = err.Error()
			r.logger.Warning("Router", "menu action dropped", fields)
		}
	}
}

var errNoSurface = errors.New("surface not found")

func (r *Router) open(raw string) error {
	if r.opener == nil {
		return errors.New("no url opener")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	return r.opener.OpenURL(u)
}

func (r *Router) forward(id string) error {
	if r.lookup == nil {
		return fmt.Errorf("%w: %s", errNoSurface, MainSurface)
	}
	surface, ok := r.lookup(MainSurface)
	if !ok || surface == nil {
		return fmt.Errorf("%w: %s", errNoSurface, MainSurface)
	}
	return surface.Emit(MenuActionEvent, id)
}
