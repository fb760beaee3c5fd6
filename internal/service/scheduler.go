package service

import (
	"context"
	"errors"
	"time"

	"enrollment-dispatch/internal/core/domain"
	"enrollment-dispatch/internal/core/ports"
	"enrollment-dispatch/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SchedulerService implements ports.Scheduler. The execution backend is
// resolved exactly once, at construction: the durable backend if its probe
// succeeds, otherwise the degraded sync/timer pair chosen per call by delay.
type SchedulerService struct {
	primary  ports.Executor // nil when running degraded
	syncExec ports.Executor
	timer    ports.Executor
	registry *HandlerRegistry
	log      zerolog.Logger
}

// NewScheduler probes the durable backend once and fixes the strategy.
func NewScheduler(
	ctx context.Context,
	durable ports.Executor,
	syncExec ports.Executor,
	timer ports.Executor,
	registry *HandlerRegistry,
	log zerolog.Logger,
) *SchedulerService {
	s := &SchedulerService{
		syncExec: syncExec,
		timer:    timer,
		registry: registry,
		log:      log,
	}

	if durable != nil && durable.Available(ctx) {
		s.primary = durable
		log.Info().Str("backend", durable.Name()).Msg("scheduler backend selected")
	} else {
		log.Warn().Msg("durable executor unavailable, running degraded: inline for zero-delay, best-effort timers for delayed tasks")
	}
	return s
}

// Backend implements ports.Scheduler.
func (s *SchedulerService) Backend() string {
	if s.primary != nil {
		return s.primary.Name()
	}
	return "degraded"
}

// Schedule implements ports.Scheduler. The group defaults to the instance
// namespace embedded in the args where one exists.
func (s *SchedulerService) Schedule(ctx context.Context, hook domain.HookKind, args domain.HookArgs, delay time.Duration) (string, error) {
	if !hook.Valid() {
		return "", apperror.ErrUnknownHook(string(hook))
	}
	if args == nil || args.Kind() != hook {
		return "", apperror.ErrMalformedArgs(errors.New("arguments do not match hook kind"))
	}
	if _, ok := s.registry.Resolve(hook); !ok {
		return "", apperror.ErrUnknownHook(string(hook))
	}
	if delay < 0 {
		delay = 0
	}

	action := domain.QueuedAction{
		ActionID:    uuid.NewString(),
		Hook:        hook,
		Args:        args,
		ScheduledAt: time.Now().Add(delay),
		Group:       groupFor(args),
	}

	exec := s.pick(delay)
	if err := exec.Enqueue(ctx, action); err != nil {
		return "", err
	}

	s.log.Debug().
		Str("action_id", action.ActionID).
		Str("hook", string(hook)).
		Str("executor", exec.Name()).
		Dur("delay", delay).
		Msg("task scheduled")
	return action.ActionID, nil
}

// CancelGroup implements ports.Scheduler.
func (s *SchedulerService) CancelGroup(ctx context.Context, group string) error {
	if s.primary != nil {
		return s.primary.CancelGroup(ctx, group)
	}
	// Degraded mode: only armed timers can be stopped.
	return s.timer.CancelGroup(ctx, group)
}

func (s *SchedulerService) pick(delay time.Duration) ports.Executor {
	if s.primary != nil {
		return s.primary
	}
	if delay == 0 {
		return s.syncExec
	}
	return s.timer
}

// groupFor derives the cancellation namespace from the instance reference
// carried by the args, so deleting a tenant instance can sweep its pending
// work.
func groupFor(args domain.HookArgs) string {
	switch a := args.(type) {
	case domain.APICallArgs:
		return a.InstanceID
	case domain.WebhookArgs:
		return a.InstanceID
	case domain.CRMSyncArgs:
		return a.InstanceID
	case domain.SendSMSArgs:
		return a.InstanceID
	}
	return ""
}
