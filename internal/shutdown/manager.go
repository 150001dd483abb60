package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"yuzu-shot/internal/logger"
)

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable.
type Func func()

func (f Func) Shutdown() { f() }

type component struct {
	name string
	c    Shutdownable
}

// Manager stops registered components once, newest first. Its context is
// cancelled as soon as shutdown starts.
type Manager struct {
	mu         sync.Mutex
	components []component
	stopped    bool

	logger  logger.Logger
	timeout time.Duration
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewManager(log logger.Logger) *Manager {
	if log == nil {
		log = logger.NoOp{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		logger:  log,
		timeout: 10 * time.Second,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Register adds a component. Components shut down in reverse order.
func (m *Manager) Register(name string, c Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.components = append(m.components, component{name: name, c: c})
}

// Listen runs onSignal once SIGINT or SIGTERM arrives. It returns when ctx
// is cancelled or the manager shuts down.
func (m *Manager) Listen(ctx context.Context, onSignal func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigs)
		select {
		case sig := <-sigs:
			m.logger.Info("ShutdownManager", "signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			if onSignal != nil {
				onSignal()
			}
		case <-ctx.Done():
		case <-m.ctx.Done():
		}
	}()
}

// Shutdown stops every component and returns the names of those that did
// not finish within the per-component timeout. Later calls return nil.
func (m *Manager) Shutdown() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return nil
	}
	m.stopped = true
	m.cancel()

	m.logger.Info("ShutdownManager", "stopping components", map[string]interface{}{
		"count": len(m.components),
	})

	var stalled []string
	for i := len(m.components) - 1; i >= 0; i-- {
		comp := m.components[i]
		if err := m.stopComponent(comp); err != nil {
			m.logger.Warning("ShutdownManager", "component did not stop in time", map[string]interface{}{
				"component": comp.name,
				"timeout":   m.timeout.String(),
			})
			stalled = append(stalled, comp.name)
			continue
		}
		m.logger.Debug("ShutdownManager", "component stopped", map[string]interface{}{
			"component": comp.name,
		})
	}
	return stalled
}

// stopComponent gives a component m.timeout to return. A stalled component
// keeps its goroutine; the process is about to exit anyway.
func (m *Manager) stopComponent(comp component) error {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		comp.c.Shutdown()
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Context is cancelled when shutdown begins.
func (m *Manager) Context() context.Context {
	return m.ctx
}
