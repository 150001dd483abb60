package eventbus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"yuzu-shot/internal/logger"
)

var (
	ErrClosed     = errors.New("event bus closed")
	ErrBufferFull = errors.New("event bus buffer full")
)

type Event struct {
	ID        string
	Type      string
	Timestamp time.Time
	Payload   string
}

type EventHandler interface {
	Handle(event Event)
	GetID() string
}

// HandlerFunc adapts a plain function to EventHandler with a generated ID.
type HandlerFunc struct {
	id string
	fn func(Event)
}

func NewHandlerFunc(fn func(Event)) *HandlerFunc {
	return &HandlerFunc{id: uuid.NewString(), fn: fn}
}

func (h *HandlerFunc) Handle(event Event) { h.fn(event) }
func (h *HandlerFunc) GetID() string      { return h.id }

type Bus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
	buffer      chan Event
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	once        sync.Once
	logger      logger.Logger
}

func NewBus(bufferSize int, log logger.Logger) *Bus {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if log == nil {
		log = logger.NoOp{}
	}

	ctx, cancel := context.WithCancel(context.Background())

	bus := &Bus{
		subscribers: make(map[string][]EventHandler),
		buffer:      make(chan Event, bufferSize),
		ctx:         ctx,
		cancel:      cancel,
		logger:      log,
	}

	bus.startWorker()
	return bus
}

// Publish queues the event without blocking the caller.
func (b *Bus) Publish(event Event) error {
	if b.ctx.Err() != nil {
		return ErrClosed
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	event.Timestamp = time.Now()

	select {
	case b.buffer <- event:
		return nil
	case <-b.ctx.Done():
		return ErrClosed
	default:
		return fmt.Errorf("%w: dropped %s", ErrBufferFull, event.Type)
	}
}

func (b *Bus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

func (b *Bus) Unsubscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := b.subscribers[eventType]
	for i, h := range handlers {
		if h.GetID() == handler.GetID() {
			b.subscribers[eventType] = append(handlers[:i:i], handlers[i+1:]...)
			break
		}
	}
}

// Shutdown stops the worker and waits for the handler in flight. Queued
// events that were not yet dispatched are discarded.
func (b *Bus) Shutdown() {
	b.once.Do(func() {
		b.cancel()
		b.wg.Wait()
	})
}

func (b *Bus) startWorker() {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		for {
			select {
			case event := <-b.buffer:
				b.dispatchEvent(event)
			case <-b.ctx.Done():
				return
			}
		}
	}()
}

// dispatchEvent runs handlers one after another on the worker, so every
// subscriber sees events in publish order.
func (b *Bus) dispatchEvent(event Event) {
	b.mu.RLock()
	handlers := make([]EventHandler, len(b.subscribers[event.Type]))
	copy(handlers, b.subscribers[event.Type])
	b.mu.RUnlock()

	for _, handler := range handlers {
		b.invoke(handler, event)
	}
}

func (b *Bus) invoke(h EventHandler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("EventBus", fmt.Errorf("handler panic: %v", r), map[string]interface{}{
				"event":   event.Type,
				"handler": h.GetID(),
			})
		}
	}()
	h.Handle(event)
}
