package service

import (
	"context"
	"sync"
	"time"

	"enrollment-dispatch/internal/core/domain"

	"github.com/rs/zerolog"
)

// TimerExecutor is the best-effort delayed fallback when no durable backend
// exists: a single-shot in-process timer per action. Degraded mode — if the
// process dies before a timer fires, the run is lost and not retried.
type TimerExecutor struct {
	registry *HandlerRegistry
	log      zerolog.Logger

	mu     sync.Mutex
	timers map[string]map[string]*time.Timer // group -> action id -> pending timer
}

// NewTimerExecutor creates the best-effort timer fallback strategy.
func NewTimerExecutor(registry *HandlerRegistry, log zerolog.Logger) *TimerExecutor {
	return &TimerExecutor{
		registry: registry,
		log:      log,
		timers:   make(map[string]map[string]*time.Timer),
	}
}

// Name implements ports.Executor.
func (e *TimerExecutor) Name() string { return "timer" }

// Available implements ports.Executor. Timers always arm; delivery is what
// is best-effort.
func (e *TimerExecutor) Available(ctx context.Context) bool { return true }

// Enqueue arms a single-shot timer for the action's scheduled time.
func (e *TimerExecutor) Enqueue(ctx context.Context, action domain.QueuedAction) error {
	handler, ok := e.registry.Resolve(action.Hook)
	if !ok {
		e.log.Error().Str("hook", string(action.Hook)).Msg("no handler for timer action")
		return nil // best-effort: arming failures do not fail the producer
	}

	delay := time.Until(action.ScheduledAt)
	if delay < 0 {
		delay = 0
	}

	fire := func() {
		// The scheduling context is long gone when the timer fires.
		e.prune(action.Group, action.ActionID)
		if _, err := handler(context.Background(), action); err != nil {
			e.log.Warn().
				Err(err).
				Str("action_id", action.ActionID).
				Str("hook", string(action.Hook)).
				Msg("timer handler failed")
		}
	}

	if action.Group == "" {
		time.AfterFunc(delay, fire)
		return nil
	}

	// Register under the lock before a zero-delay timer can fire, so the
	// callback's prune always finds its own entry.
	e.mu.Lock()
	pending, ok := e.timers[action.Group]
	if !ok {
		pending = make(map[string]*time.Timer)
		e.timers[action.Group] = pending
	}
	pending[action.ActionID] = time.AfterFunc(delay, fire)
	e.mu.Unlock()
	return nil
}

// prune drops a fired timer so long-lived degraded processes do not
// accumulate dead entries for groups that are never cancelled.
func (e *TimerExecutor) prune(group, actionID string) {
	if group == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	pending := e.timers[group]
	delete(pending, actionID)
	if len(pending) == 0 {
		delete(e.timers, group)
	}
}

// CancelGroup stops timers of the group that have not fired yet.
func (e *TimerExecutor) CancelGroup(ctx context.Context, group string) error {
	e.mu.Lock()
	pending := e.timers[group]
	delete(e.timers, group)
	e.mu.Unlock()

	stopped := 0
	for _, t := range pending {
		if t.Stop() {
			stopped++
		}
	}
	e.log.Info().Str("group", group).Int("stopped", stopped).Msg("pending timers cancelled")
	return nil
}
