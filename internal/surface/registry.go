// Package surface keeps the named UI surfaces that receive forwarded
// menu events.
package surface

import (
	"fmt"
	"sync"

	"yuzu-shot/internal/eventbus"
	"yuzu-shot/internal/logger"
)

// Surface is a named UI target with its own event bus.
type Surface struct {
	name string
	bus  *eventbus.Bus
}

func (s *Surface) Name() string { return s.name }

// Emit queues a named event for the surface's listeners.
func (s *Surface) Emit(event, payload string) error {
	if err := s.bus.Publish(eventbus.Event{Type: event, Payload: payload}); err != nil {
		return fmt.Errorf("emit %s to %s: %w", event, s.name, err)
	}
	return nil
}

// Listen registers fn for event and returns a function that removes it.
func (s *Surface) Listen(event string, fn func(payload string)) func() {
	h := eventbus.NewHandlerFunc(func(e eventbus.Event) { fn(e.Payload) })
	s.bus.Subscribe(event, h)
	return func() { s.bus.Unsubscribe(event, h) }
}

type Registry struct {
	mu         sync.RWMutex
	surfaces   map[string]*Surface
	bufferSize int
	logger     logger.Logger
}

func NewRegistry(bufferSize int, log logger.Logger) *Registry {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Registry{
		surfaces:   make(map[string]*Surface),
		bufferSize: bufferSize,
		logger:     log,
	}
}

// Register creates the surface, or returns the existing one with that name.
func (r *Registry) Register(name string) *Surface {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.surfaces[name]; ok {
		return s
	}
	s := &Surface{name: name, bus: eventbus.NewBus(r.bufferSize, r.logger)}
	r.surfaces[name] = s

	r.logger.Debug("SurfaceRegistry", "surface registered", map[string]interface{}{
		"surface": name,
	})
	return s
}

func (r *Registry) Lookup(name string) (*Surface, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.surfaces[name]
	return s, ok
}

// Shutdown stops every surface bus.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	surfaces := r.surfaces
	r.surfaces = make(map[string]*Surface)
	r.mu.Unlock()

	for _, s := range surfaces {
		s.bus.Shutdown()
	}
}
