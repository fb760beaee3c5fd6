package service

import (
	"context"
	"time"

	"enrollment-dispatch/internal/core/domain"
	"enrollment-dispatch/pkg/apperror"

	"github.com/rs/zerolog"
)

// SyncExecutor invokes handlers inline in the caller's goroutine. It is a
// degraded fallback for zero-delay tasks when no durable backend exists:
// no persistence, no retry on crash.
type SyncExecutor struct {
	registry *HandlerRegistry
	log      zerolog.Logger
}

// NewSyncExecutor creates the synchronous fallback strategy.
func NewSyncExecutor(registry *HandlerRegistry, log zerolog.Logger) *SyncExecutor {
	return &SyncExecutor{registry: registry, log: log}
}

// Name implements ports.Executor.
func (e *SyncExecutor) Name() string { return "sync" }

// Available implements ports.Executor. The inline path always works.
func (e *SyncExecutor) Available(ctx context.Context) bool { return true }

// Enqueue runs the handler immediately. Delayed actions are rejected; the
// scheduler routes those to the timer strategy.
func (e *SyncExecutor) Enqueue(ctx context.Context, action domain.QueuedAction) error {
	if action.ScheduledAt.After(time.Now().Add(time.Second)) {
		return apperror.ErrDelayedUnsupported()
	}

	handler, ok := e.registry.Resolve(action.Hook)
	if !ok {
		return apperror.ErrUnknownHook(string(action.Hook))
	}

	if _, err := handler(ctx, action); err != nil {
		e.log.Warn().
			Err(err).
			Str("action_id", action.ActionID).
			Str("hook", string(action.Hook)).
			Msg("inline handler failed")
		return err
	}
	return nil
}

// CancelGroup implements ports.Executor. Inline work has already run by the
// time anything could cancel it.
func (e *SyncExecutor) CancelGroup(ctx context.Context, group string) error {
	return apperror.ErrCancelUnsupported()
}
