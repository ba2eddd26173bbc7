package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "zarya:journal:"
	// DefaultRetention is how long a session's journal list is kept after its last line.
	DefaultRetention = 30 * 24 * time.Hour
)

// RedisJournal keeps one redis list per session and RPUSHes each input line to it as JSON.
type RedisJournal struct {
	client    *redis.Client
	logger    *slog.Logger
	retention time.Duration
	now       func() time.Time
}

// NewRedisJournal connects to redisURL (redis://host:port/db).
func NewRedisJournal(redisURL string, logger *slog.Logger) (*RedisJournal, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	return &RedisJournal{
		client:    redis.NewClient(opt),
		logger:    logger,
		retention: DefaultRetention,
		now:       time.Now,
	}, nil
}

func sessionKey(sessionID uuid.UUID) string {
	return keyPrefix + sessionID.String()
}

func (r *RedisJournal) Ping(ctx context.Context) error {
	cmd := r.client.Ping(ctx)
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	r.logger.Debug("Redis ping successful", "result", cmd.Val())
	return nil
}

// Record appends a line to the session's list and refreshes its expiry.
func (r *RedisJournal) Record(ctx context.Context, sessionID uuid.UUID, line string) error {
	data, err := json.Marshal(Entry{SessionID: sessionID, Time: r.now().UTC(), Line: line})
	if err != nil {
		return fmt.Errorf("failed to marshal journal entry: %w", err)
	}

	key := sessionKey(sessionID)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	if r.retention > 0 {
		pipe.Expire(ctx, key, r.retention)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Redis journal write failed", "key", key, "error", err)
		return fmt.Errorf("redis rpush failed: %w", err)
	}
	return nil
}

// Lines returns every entry recorded for a session, oldest first.
func (r *RedisJournal) Lines(ctx context.Context, sessionID uuid.UUID) ([]Entry, error) {
	key := sessionKey(sessionID)
	vals, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange failed: %w", err)
	}
	entries := make([]Entry, 0, len(vals))
	for _, v := range vals {
		var e Entry
		if err := json.Unmarshal([]byte(v), &e); err != nil {
			r.logger.Warn("Skipping malformed journal entry", "key", key, "error", err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *RedisJournal) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for redis to become available (used during startup).
func (r *RedisJournal) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}
