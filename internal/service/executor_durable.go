package service

import (
	"context"
	"encoding/json"
	"time"

	"enrollment-dispatch/internal/core/domain"
	"enrollment-dispatch/internal/core/ports"
	"enrollment-dispatch/pkg/apperror"

	"github.com/rs/zerolog"
)

// DurableExecutor is the primary backend: actions are persisted in the queue
// store and invoked at-least-once by the executor's own consumer loop.
// Handler results are written to the result cache under the action id.
type DurableExecutor struct {
	store     ports.QueueStore
	registry  *HandlerRegistry
	results   ports.ResultCache
	resultTTL time.Duration
	pollEvery time.Duration
	batchSize int
	log       zerolog.Logger
}

// NewDurableExecutor creates the durable backend strategy.
func NewDurableExecutor(
	store ports.QueueStore,
	registry *HandlerRegistry,
	results ports.ResultCache,
	resultTTL time.Duration,
	pollEvery time.Duration,
	batchSize int,
	log zerolog.Logger,
) *DurableExecutor {
	if pollEvery <= 0 {
		pollEvery = time.Second
	}
	if batchSize <= 0 {
		batchSize = 50
	}
	if resultTTL <= 0 {
		resultTTL = time.Hour
	}
	return &DurableExecutor{
		store:     store,
		registry:  registry,
		results:   results,
		resultTTL: resultTTL,
		pollEvery: pollEvery,
		batchSize: batchSize,
		log:       log,
	}
}

// Name implements ports.Executor.
func (e *DurableExecutor) Name() string { return "durable" }

// Available probes the queue store once at startup.
func (e *DurableExecutor) Available(ctx context.Context) bool {
	return e.store.Ping(ctx) == nil
}

// Enqueue persists the action for its scheduled run time.
func (e *DurableExecutor) Enqueue(ctx context.Context, action domain.QueuedAction) error {
	raw, err := domain.EncodeArgs(action.Args)
	if err != nil {
		return apperror.ErrMalformedArgs(err)
	}
	env := domain.ActionEnvelope{
		ActionID:    action.ActionID,
		Hook:        action.Hook,
		Args:        raw,
		Group:       action.Group,
		ScheduledAt: action.ScheduledAt.Unix(),
		EnqueuedAt:  time.Now().Unix(),
	}
	if err := e.store.Push(ctx, env); err != nil {
		return apperror.ErrQueueError(err)
	}
	return nil
}

// CancelGroup drops not-yet-due envelopes of the group.
func (e *DurableExecutor) CancelGroup(ctx context.Context, group string) error {
	n, err := e.store.CancelGroup(ctx, group)
	if err != nil {
		return apperror.ErrQueueError(err)
	}
	e.log.Info().Str("group", group).Int64("cancelled", n).Msg("scheduled actions cancelled")
	return nil
}

// Start launches the consumer loop. It polls the queue store for due
// envelopes and invokes their handlers sequentially until ctx is cancelled.
func (e *DurableExecutor) Start(ctx context.Context) {
	go func() {
		e.log.Info().Dur("poll_every", e.pollEvery).Msg("durable executor started")
		defer e.log.Info().Msg("durable executor stopped")

		ticker := time.NewTicker(e.pollEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				e.runDue(ctx)
			}
		}
	}()
}

func (e *DurableExecutor) runDue(ctx context.Context) {
	envs, err := e.store.PopDue(ctx, time.Now(), e.batchSize)
	if err != nil {
		e.log.Error().Err(err).Msg("queue pop failed")
		return
	}

	for _, env := range envs {
		e.runOne(ctx, env)
	}
}

func (e *DurableExecutor) runOne(ctx context.Context, env domain.ActionEnvelope) {
	log := e.log.With().Str("action_id", env.ActionID).Str("hook", string(env.Hook)).Logger()

	handler, ok := e.registry.Resolve(env.Hook)
	if !ok {
		log.Error().Msg("no handler registered for queued action")
		e.storeResult(ctx, env.ActionID, nil, apperror.ErrUnknownHook(string(env.Hook)))
		return
	}

	args, err := domain.DecodeArgs(env.Hook, env.Args)
	if err != nil {
		log.Error().Err(err).Msg("queued action has malformed arguments")
		e.storeResult(ctx, env.ActionID, nil, err)
		return
	}

	action := domain.QueuedAction{
		ActionID:    env.ActionID,
		Hook:        env.Hook,
		Args:        args,
		ScheduledAt: time.Unix(env.ScheduledAt, 0),
		Group:       env.Group,
	}

	result, err := handler(ctx, action)
	if err != nil {
		log.Warn().Err(err).Msg("action handler failed")
	} else {
		log.Debug().Msg("action handler completed")
	}
	e.storeResult(ctx, env.ActionID, result, err)
}

// storeResult caches the handler outcome for caller-side correlation.
// Failures here only lose the correlation hint, never the work.
func (e *DurableExecutor) storeResult(ctx context.Context, actionID string, result map[string]interface{}, handlerErr error) {
	out := map[string]interface{}{"success": handlerErr == nil}
	if handlerErr != nil {
		out["error"] = handlerErr.Error()
	}
	if result != nil {
		out["result"] = result
	}

	b, err := json.Marshal(out)
	if err != nil {
		e.log.Error().Err(err).Str("action_id", actionID).Msg("encoding action result")
		return
	}
	if err := e.results.Set(ctx, actionID, b, e.resultTTL); err != nil {
		e.log.Warn().Err(err).Str("action_id", actionID).Msg("caching action result")
	}
}
