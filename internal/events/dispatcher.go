package events

import (
	"context"
	"sync"
)

// EventHandler handles a published event.
type EventHandler func(context.Context, Event) error

// Dispatcher interface allows event publication/subscription.
type Dispatcher interface {
	Publish(event Event)
	Subscribe(eventType EventType, handler EventHandler)
}

// asyncDispatcher runs handlers on their own goroutines. Publication is fire
// and forget: handler errors are swallowed here and accounted for by the
// handlers themselves. Handlers receive a background context so request
// cancellation cannot abort them mid-write.
type asyncDispatcher struct {
	mu        sync.RWMutex
	listeners map[EventType][]EventHandler
}

// NewAsyncDispatcher creates a dispatcher instance.
func NewAsyncDispatcher() Dispatcher {
	return &asyncDispatcher{
		listeners: make(map[EventType][]EventHandler),
	}
}

// Publish asynchronously invokes handlers for the given event.
func (d *asyncDispatcher) Publish(event Event) {
	d.mu.RLock()
	handlers := append([]EventHandler{}, d.listeners[event.Type]...)
	d.mu.RUnlock()

	for _, handler := range handlers {
		go func(h EventHandler) {
			_ = h(context.Background(), event)
		}(handler)
	}
}

// Subscribe registers a handler for the given event type.
func (d *asyncDispatcher) Subscribe(eventType EventType, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[eventType] = append(d.listeners[eventType], handler)
}
