package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"enrollment-dispatch/internal/core/domain"
	"enrollment-dispatch/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQueueStore is an in-memory stand-in for the redis-backed store.
type fakeQueueStore struct {
	mu      sync.Mutex
	envs    []domain.ActionEnvelope
	pingErr error
}

func (s *fakeQueueStore) Push(ctx context.Context, env domain.ActionEnvelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.envs = append(s.envs, env)
	return nil
}

func (s *fakeQueueStore) PopDue(ctx context.Context, now time.Time, limit int) ([]domain.ActionEnvelope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var due, rest []domain.ActionEnvelope
	for _, env := range s.envs {
		if env.ScheduledAt <= now.Unix() && len(due) < limit {
			due = append(due, env)
		} else {
			rest = append(rest, env)
		}
	}
	s.envs = rest
	return due, nil
}

func (s *fakeQueueStore) CancelGroup(ctx context.Context, group string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var kept []domain.ActionEnvelope
	var n int64
	for _, env := range s.envs {
		if env.Group == group {
			n++
			continue
		}
		kept = append(kept, env)
	}
	s.envs = kept
	return n, nil
}

func (s *fakeQueueStore) Ping(ctx context.Context) error { return s.pingErr }

type fakeResultCache struct {
	mu      sync.Mutex
	results map[string][]byte
}

func newFakeResultCache() *fakeResultCache {
	return &fakeResultCache{results: make(map[string][]byte)}
}

func (c *fakeResultCache) Set(ctx context.Context, actionID string, result []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[actionID] = result
	return nil
}

func (c *fakeResultCache) Get(ctx context.Context, actionID string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.results[actionID], nil
}

func TestSyncExecutor_RunsInline(t *testing.T) {
	registry := NewHandlerRegistry()
	ran := false
	registry.Register(domain.HookWebhook, func(ctx context.Context, action domain.QueuedAction) (map[string]interface{}, error) {
		ran = true
		return nil, nil
	})

	e := NewSyncExecutor(registry, newTestLogger())
	err := e.Enqueue(context.Background(), domain.QueuedAction{
		ActionID:    "a1",
		Hook:        domain.HookWebhook,
		Args:        domain.WebhookArgs{Event: "enrollment.completed"},
		ScheduledAt: time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestSyncExecutor_PropagatesHandlerError(t *testing.T) {
	registry := NewHandlerRegistry()
	registry.Register(domain.HookWebhook, func(ctx context.Context, action domain.QueuedAction) (map[string]interface{}, error) {
		return nil, errors.New("downstream unavailable")
	})

	e := NewSyncExecutor(registry, newTestLogger())
	err := e.Enqueue(context.Background(), domain.QueuedAction{
		ActionID:    "a1",
		Hook:        domain.HookWebhook,
		Args:        domain.WebhookArgs{},
		ScheduledAt: time.Now(),
	})
	assert.EqualError(t, err, "downstream unavailable")
}

func TestSyncExecutor_RejectsDelayedActions(t *testing.T) {
	registry := NewHandlerRegistry()
	registry.Register(domain.HookWebhook, noopHandler)

	e := NewSyncExecutor(registry, newTestLogger())
	err := e.Enqueue(context.Background(), domain.QueuedAction{
		ActionID:    "a1",
		Hook:        domain.HookWebhook,
		ScheduledAt: time.Now().Add(time.Minute),
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SCH_005", appErr.Code)
}

func TestSyncExecutor_CancelUnsupported(t *testing.T) {
	e := NewSyncExecutor(NewHandlerRegistry(), newTestLogger())
	err := e.CancelGroup(context.Background(), "inst-1")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SCH_003", appErr.Code)
}

func TestTimerExecutor_FiresAfterDelay(t *testing.T) {
	registry := NewHandlerRegistry()
	fired := make(chan string, 1)
	registry.Register(domain.HookWebhook, func(ctx context.Context, action domain.QueuedAction) (map[string]interface{}, error) {
		fired <- action.ActionID
		return nil, nil
	})

	e := NewTimerExecutor(registry, newTestLogger())
	err := e.Enqueue(context.Background(), domain.QueuedAction{
		ActionID:    "a1",
		Hook:        domain.HookWebhook,
		ScheduledAt: time.Now().Add(20 * time.Millisecond),
	})
	require.NoError(t, err)

	select {
	case id := <-fired:
		assert.Equal(t, "a1", id)
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired")
	}
}

func TestTimerExecutor_FiredTimerIsPruned(t *testing.T) {
	registry := NewHandlerRegistry()
	fired := make(chan string, 1)
	registry.Register(domain.HookWebhook, func(ctx context.Context, action domain.QueuedAction) (map[string]interface{}, error) {
		fired <- action.ActionID
		return nil, nil
	})

	e := NewTimerExecutor(registry, newTestLogger())
	require.NoError(t, e.Enqueue(context.Background(), domain.QueuedAction{
		ActionID:    "a1",
		Hook:        domain.HookWebhook,
		Group:       "inst-1",
		ScheduledAt: time.Now(),
	}))

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	assert.Empty(t, e.timers, "fired timers must not linger in the group index")
}

func TestTimerExecutor_CancelGroupStopsPending(t *testing.T) {
	registry := NewHandlerRegistry()
	fired := make(chan string, 2)
	registry.Register(domain.HookWebhook, func(ctx context.Context, action domain.QueuedAction) (map[string]interface{}, error) {
		fired <- action.ActionID
		return nil, nil
	})

	e := NewTimerExecutor(registry, newTestLogger())
	require.NoError(t, e.Enqueue(context.Background(), domain.QueuedAction{
		ActionID:    "a1",
		Hook:        domain.HookWebhook,
		Group:       "inst-1",
		ScheduledAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, e.CancelGroup(context.Background(), "inst-1"))

	select {
	case id := <-fired:
		t.Fatalf("cancelled timer fired: %s", id)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDurableExecutor_EnqueueAndRun(t *testing.T) {
	registry := NewHandlerRegistry()
	registry.Register(domain.HookWebhook, func(ctx context.Context, action domain.QueuedAction) (map[string]interface{}, error) {
		args, ok := action.Args.(domain.WebhookArgs)
		require.True(t, ok, "args must arrive decoded")
		return map[string]interface{}{"event": args.Event}, nil
	})

	store := &fakeQueueStore{}
	results := newFakeResultCache()
	e := NewDurableExecutor(store, registry, results, time.Hour, 10*time.Millisecond, 10, newTestLogger())

	require.True(t, e.Available(context.Background()))
	require.NoError(t, e.Enqueue(context.Background(), domain.QueuedAction{
		ActionID:    "a1",
		Hook:        domain.HookWebhook,
		Args:        domain.WebhookArgs{Event: "enrollment.completed", InstanceID: "inst-1"},
		ScheduledAt: time.Now(),
		Group:       "inst-1",
	}))

	// Drive the consumer path directly instead of waiting on the ticker.
	e.runDue(context.Background())

	raw, err := results.Get(context.Background(), "a1")
	require.NoError(t, err)
	require.NotNil(t, raw)
	assert.Contains(t, string(raw), `"success":true`)
	assert.Contains(t, string(raw), "enrollment.completed")
}

func TestDurableExecutor_HandlerFailureCached(t *testing.T) {
	registry := NewHandlerRegistry()
	registry.Register(domain.HookWebhook, func(ctx context.Context, action domain.QueuedAction) (map[string]interface{}, error) {
		return nil, errors.New("endpoint gone")
	})

	store := &fakeQueueStore{}
	results := newFakeResultCache()
	e := NewDurableExecutor(store, registry, results, time.Hour, 10*time.Millisecond, 10, newTestLogger())

	require.NoError(t, e.Enqueue(context.Background(), domain.QueuedAction{
		ActionID:    "a1",
		Hook:        domain.HookWebhook,
		Args:        domain.WebhookArgs{},
		ScheduledAt: time.Now(),
	}))
	e.runDue(context.Background())

	raw, err := results.Get(context.Background(), "a1")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"success":false`)
	assert.Contains(t, string(raw), "endpoint gone")
}

func TestDurableExecutor_NotDueStaysQueued(t *testing.T) {
	registry := NewHandlerRegistry()
	registry.Register(domain.HookWebhook, noopHandler)

	store := &fakeQueueStore{}
	results := newFakeResultCache()
	e := NewDurableExecutor(store, registry, results, time.Hour, 10*time.Millisecond, 10, newTestLogger())

	require.NoError(t, e.Enqueue(context.Background(), domain.QueuedAction{
		ActionID:    "later",
		Hook:        domain.HookWebhook,
		Args:        domain.WebhookArgs{},
		ScheduledAt: time.Now().Add(time.Hour),
	}))
	e.runDue(context.Background())

	raw, err := results.Get(context.Background(), "later")
	require.NoError(t, err)
	assert.Nil(t, raw)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Len(t, store.envs, 1)
}

func TestDurableExecutor_CancelGroup(t *testing.T) {
	registry := NewHandlerRegistry()
	registry.Register(domain.HookWebhook, noopHandler)

	store := &fakeQueueStore{}
	e := NewDurableExecutor(store, registry, newFakeResultCache(), time.Hour, 10*time.Millisecond, 10, newTestLogger())

	require.NoError(t, e.Enqueue(context.Background(), domain.QueuedAction{
		ActionID:    "a1",
		Hook:        domain.HookWebhook,
		Args:        domain.WebhookArgs{InstanceID: "inst-1"},
		Group:       "inst-1",
		ScheduledAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, e.CancelGroup(context.Background(), "inst-1"))

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Empty(t, store.envs)
}

func TestDurableExecutor_UnavailableWhenPingFails(t *testing.T) {
	store := &fakeQueueStore{pingErr: errors.New("connection refused")}
	e := NewDurableExecutor(store, NewHandlerRegistry(), newFakeResultCache(), time.Hour, time.Second, 10, newTestLogger())
	assert.False(t, e.Available(context.Background()))
}
