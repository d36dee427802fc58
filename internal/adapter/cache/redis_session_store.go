package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/UmmeHabiba1312/Kharedo-api/internal/session"
	"github.com/redis/go-redis/v9"
)

// RedisSessionStore keeps conversation transcripts in a Redis list per
// session, trimmed to a retention cap and expired after ttl of
// inactivity.
type RedisSessionStore struct {
	rdb     *redis.Client
	ttl     time.Duration
	maxKeep int64
}

func NewRedisSessionStore(rdb *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, ttl: ttl, maxKeep: 4 * session.DefaultWindow}
}

func sessionKey(id string) string { return "chat:session:" + id }

func (s *RedisSessionStore) Append(ctx context.Context, sessionID string, turns ...session.Turn) error {
	if len(turns) == 0 {
		return nil
	}
	vals := make([]interface{}, 0, len(turns))
	for _, t := range turns {
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("marshal turn: %w", err)
		}
		vals = append(vals, b)
	}

	key := sessionKey(sessionID)
	pipe := s.rdb.TxPipeline()
	pipe.RPush(ctx, key, vals...)
	pipe.LTrim(ctx, key, -s.maxKeep, -1)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisSessionStore) History(ctx context.Context, sessionID string, window int) ([]session.Turn, error) {
	if window <= 0 {
		window = session.DefaultWindow
	}
	raw, err := s.rdb.LRange(ctx, sessionKey(sessionID), int64(-window), -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]session.Turn, 0, len(raw))
	for _, r := range raw {
		var t session.Turn
		if err := json.Unmarshal([]byte(r), &t); err != nil {
			return nil, fmt.Errorf("decode turn: %w", err)
		}
		out = append(out, t)
	}
	return out, nil
}

var _ session.Store = (*RedisSessionStore)(nil)
