package service

import (
	"sync"

	"enrollment-dispatch/internal/core/domain"
	"enrollment-dispatch/internal/core/ports"
)

// HandlerRegistry maps hook kinds to their handlers. Producers register
// handlers once at startup; scheduling an unregistered hook is a permanent
// error, never retried.
type HandlerRegistry struct {
	mu       sync.RWMutex
	handlers map[domain.HookKind]ports.HookHandler
}

// NewHandlerRegistry creates an empty registry.
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{handlers: make(map[domain.HookKind]ports.HookHandler)}
}

// Register binds a handler to a hook kind, replacing any previous binding.
func (r *HandlerRegistry) Register(kind domain.HookKind, h ports.HookHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[kind] = h
}

// Resolve returns the handler for kind, if registered.
func (r *HandlerRegistry) Resolve(kind domain.HookKind) (ports.HookHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[kind]
	return h, ok
}
