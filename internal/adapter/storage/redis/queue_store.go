package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"enrollment-dispatch/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// QueueStore implements ports.QueueStore on a Redis sorted set scored by
// run-at time. Each group additionally indexes its members in a plain set
// so bulk cancellation never scans the whole queue.
type QueueStore struct {
	client *goredis.Client
	queue  string
	groups string // prefix for per-group index sets
}

// NewQueueStore creates a Redis-backed delayed action queue.
func NewQueueStore(client *goredis.Client) *QueueStore {
	return &QueueStore{
		client: client,
		queue:  "dispatch:queue",
		groups: "dispatch:group:",
	}
}

// Push persists an envelope scored by its scheduled run time.
func (s *QueueStore) Push(ctx context.Context, env domain.ActionEnvelope) error {
	member, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode action envelope: %w", err)
	}

	if err := s.client.ZAdd(ctx, s.queue, goredis.Z{
		Score:  float64(env.ScheduledAt),
		Member: member,
	}).Err(); err != nil {
		return fmt.Errorf("redis queue push: %w", err)
	}

	if env.Group != "" {
		if err := s.client.SAdd(ctx, s.groups+env.Group, member).Err(); err != nil {
			return fmt.Errorf("redis group index add: %w", err)
		}
	}
	return nil
}

// PopDue removes and returns up to limit envelopes due at now. A member is
// owned only if its ZREM succeeds, so concurrent consumers never both run
// the same action.
func (s *QueueStore) PopDue(ctx context.Context, now time.Time, limit int) ([]domain.ActionEnvelope, error) {
	members, err := s.client.ZRangeByScore(ctx, s.queue, &goredis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(now.Unix(), 10),
		Count: int64(limit),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("redis queue range: %w", err)
	}

	var envs []domain.ActionEnvelope
	for _, member := range members {
		removed, err := s.client.ZRem(ctx, s.queue, member).Result()
		if err != nil {
			return envs, fmt.Errorf("redis queue pop: %w", err)
		}
		if removed == 0 {
			continue // another consumer claimed it
		}

		var env domain.ActionEnvelope
		if err := json.Unmarshal([]byte(member), &env); err != nil {
			// Undecodable members are dropped: leaving them queued
			// would wedge the consumer forever.
			continue
		}
		if env.Group != "" {
			s.client.SRem(ctx, s.groups+env.Group, member)
		}
		envs = append(envs, env)
	}
	return envs, nil
}

// CancelGroup drops every not-yet-popped envelope of the group.
func (s *QueueStore) CancelGroup(ctx context.Context, group string) (int64, error) {
	key := s.groups + group
	members, err := s.client.SMembers(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis group members: %w", err)
	}
	if len(members) == 0 {
		return 0, nil
	}

	args := make([]interface{}, len(members))
	for i, m := range members {
		args[i] = m
	}
	removed, err := s.client.ZRem(ctx, s.queue, args...).Result()
	if err != nil {
		return 0, fmt.Errorf("redis group cancel: %w", err)
	}
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return removed, fmt.Errorf("redis group index delete: %w", err)
	}
	return removed, nil
}

// Ping checks Redis connectivity.
func (s *QueueStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
