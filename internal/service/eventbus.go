package service

import (
	"context"
	"sync"

	"enrollment-dispatch/internal/core/ports"
)

// Bus topics published by the retry subsystem.
const (
	TopicRetryRescheduled = "retry.rescheduled"
	TopicRetryExhausted   = "retry.exhausted"
	TopicRetrySucceeded   = "retry.succeeded"
)

// EventBus is an in-process typed publish/subscribe bus. It replaces the
// host framework's named-hook system with an explicit seam between the retry
// state machine and cross-cutting consumers. Handlers run synchronously in
// publish order.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[string][]ports.EventHandler
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[string][]ports.EventHandler)}
}

// Subscribe registers h for the given event. A "*" subscription receives
// every event.
func (b *EventBus) Subscribe(event string, h ports.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[event] = append(b.handlers[event], h)
}

// Publish delivers payload to every handler subscribed to event.
func (b *EventBus) Publish(ctx context.Context, event string, payload map[string]interface{}) {
	b.mu.RLock()
	hs := make([]ports.EventHandler, 0, len(b.handlers[event])+len(b.handlers["*"]))
	hs = append(hs, b.handlers[event]...)
	hs = append(hs, b.handlers["*"]...)
	b.mu.RUnlock()

	for _, h := range hs {
		h(ctx, event, payload)
	}
}
