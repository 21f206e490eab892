package services

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/seamap/internal/core/domain"
	"github.com/custodia-labs/seamap/internal/logger"
)

// Subscription identifies one registered handler so it can be removed.
type Subscription struct {
	// ID is unique per registration.
	ID uuid.UUID

	// Topic is the name of the subscribed topic.
	Topic string
}

type handler struct {
	id     uuid.UUID
	handle func(data any) error
}

// EventBus is a synchronous publish/subscribe registry. Handlers run on the
// publisher's goroutine in registration order; a failing handler never
// prevents the remaining handlers from running.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[string][]handler
}

// NewEventBus creates an empty event bus.
func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[string][]handler),
	}
}

// Subscribe registers fn to receive every payload published on topic.
// An error returned by fn is logged as a diagnostic.
func Subscribe[T any](bus *EventBus, topic domain.Topic[T], fn func(T) error) Subscription {
	sub := Subscription{ID: uuid.New(), Topic: topic.Name()}
	h := handler{
		id: sub.ID,
		handle: func(data any) error {
			payload, ok := data.(T)
			if !ok {
				return fmt.Errorf("%w: got %T", domain.ErrMalformedPayload, data)
			}
			return fn(payload)
		},
	}

	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[sub.Topic] = append(bus.handlers[sub.Topic], h)
	return sub
}

// Publish delivers data to every handler subscribed to topic and returns
// the number of handlers that failed. Publishing to a topic without
// subscribers is a no-op.
func Publish[T any](bus *EventBus, topic domain.Topic[T], data T) int {
	// Snapshot so handlers may subscribe or publish while we iterate.
	bus.mu.RLock()
	handlers := append([]handler(nil), bus.handlers[topic.Name()]...)
	bus.mu.RUnlock()

	logger.Debug("publish %s to %d handler(s)", topic.Name(), len(handlers))

	failed := 0
	for _, h := range handlers {
		if err := deliver(h, data); err != nil {
			failed++
			logger.Diagnostic("eventbus", "handler %s on %s: %v", h.id, topic.Name(), err)
		}
	}
	return failed
}

func deliver(h handler, data any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return h.handle(data)
}

// Unsubscribe removes the handler registered by sub.
// Returns false if it was not registered.
func (b *EventBus) Unsubscribe(sub Subscription) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := b.handlers[sub.Topic]
	for i, h := range handlers {
		if h.id != sub.ID {
			continue
		}
		remaining := make([]handler, 0, len(handlers)-1)
		remaining = append(remaining, handlers[:i]...)
		remaining = append(remaining, handlers[i+1:]...)
		if len(remaining) == 0 {
			delete(b.handlers, sub.Topic)
		} else {
			b.handlers[sub.Topic] = remaining
		}
		return true
	}
	return false
}

// SubscriberCount returns the number of handlers registered for a topic name.
func (b *EventBus) SubscriberCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[topic])
}
