package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"enrollment-dispatch/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *QueueStore {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	return NewQueueStore(client)
}

func envelope(id, group string, at time.Time) domain.ActionEnvelope {
	args, _ := json.Marshal(domain.WebhookArgs{Event: "enrollment.completed", InstanceID: group})
	return domain.ActionEnvelope{
		ActionID:    id,
		Hook:        domain.HookWebhook,
		Args:        args,
		Group:       group,
		ScheduledAt: at.Unix(),
		EnqueuedAt:  time.Now().Unix(),
	}
}

func TestQueueStore_PushAndPopDue(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Push(ctx, envelope("due-1", "inst-1", now.Add(-time.Minute))))
	require.NoError(t, store.Push(ctx, envelope("due-2", "inst-1", now.Add(-time.Second))))
	require.NoError(t, store.Push(ctx, envelope("later", "inst-1", now.Add(time.Hour))))

	envs, err := store.PopDue(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, envs, 2)
	assert.Equal(t, "due-1", envs[0].ActionID)
	assert.Equal(t, "due-2", envs[1].ActionID)
	assert.Equal(t, domain.HookWebhook, envs[0].Hook)

	// Not-due work stays queued.
	envs, err = store.PopDue(ctx, now, 10)
	require.NoError(t, err)
	assert.Empty(t, envs)

	envs, err = store.PopDue(ctx, now.Add(2*time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, envs, 1)
	assert.Equal(t, "later", envs[0].ActionID)
}

func TestQueueStore_PopDue_RespectsLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Push(ctx, envelope(id, "", now.Add(-time.Minute))))
	}

	envs, err := store.PopDue(ctx, now, 2)
	require.NoError(t, err)
	assert.Len(t, envs, 2)

	envs, err = store.PopDue(ctx, now, 2)
	require.NoError(t, err)
	assert.Len(t, envs, 1)
}

func TestQueueStore_PopIsDestructive(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Push(ctx, envelope("once", "inst-1", now.Add(-time.Minute))))

	envs, err := store.PopDue(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, envs, 1)

	envs, err = store.PopDue(ctx, now, 10)
	require.NoError(t, err)
	assert.Empty(t, envs)
}

func TestQueueStore_CancelGroup(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Push(ctx, envelope("a1", "inst-1", now.Add(time.Hour))))
	require.NoError(t, store.Push(ctx, envelope("a2", "inst-1", now.Add(time.Hour))))
	require.NoError(t, store.Push(ctx, envelope("b1", "inst-2", now.Add(time.Hour))))

	removed, err := store.CancelGroup(ctx, "inst-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	// Other groups are untouched.
	envs, err := store.PopDue(ctx, now.Add(2*time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, envs, 1)
	assert.Equal(t, "b1", envs[0].ActionID)
}

func TestQueueStore_CancelGroup_Empty(t *testing.T) {
	store := newTestStore(t)

	removed, err := store.CancelGroup(context.Background(), "no-such-group")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestQueueStore_Ping(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewQueueStore(client)

	require.NoError(t, store.Ping(context.Background()))

	s.Close()
	assert.Error(t, store.Ping(context.Background()))
}
