package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	unlockScript = "if redis.call('get', KEYS[1]) == ARGV[1] then return redis.call('del', KEYS[1]) else return 0 end"

	defaultKeyPrefix = "ledger:account-lock:"
)

var errLockHeld = errors.New("lock is already held")

// RedisLocker holds account locks in Redis so that every instance of the
// service sees the same lock state.
type RedisLocker struct {
	client redis.UniversalClient
	logger *slog.Logger
	token  func() string
	prefix string
	ttl    time.Duration
	wait   time.Duration
}

// NewRedisLocker creates a RedisLocker. ttl bounds how long a crashed holder
// can block a key; wait bounds how long Acquire retries.
func NewRedisLocker(client redis.UniversalClient, ttl, wait time.Duration, logger *slog.Logger) *RedisLocker {
	return &RedisLocker{
		client: client,
		logger: logger,
		token:  uuid.NewString,
		prefix: defaultKeyPrefix,
		ttl:    ttl,
		wait:   wait,
	}
}

// Acquire locks every key in sorted order, retrying each with exponential backoff
func (l *RedisLocker) Acquire(ctx context.Context, keys ...string) (Release, error) {
	ordered := orderedKeys(keys)
	held := make([]*redisMutex, 0, len(ordered))

	releaseHeld := func() {
		// Release must work even when the operation's context has expired
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()

		for i := len(held) - 1; i >= 0; i-- {
			if err := held[i].unlock(releaseCtx); err != nil {
				l.logger.Warn("failed to release account lock", "key", held[i].key, "error", err)
			}
		}
	}

	for _, key := range ordered {
		m := &redisMutex{client: l.client, key: l.prefix + key, value: l.token()}
		if err := l.waitFor(ctx, m); err != nil {
			releaseHeld()
			return nil, err
		}
		held = append(held, m)
	}

	return onceRelease(releaseHeld), nil
}

func (l *RedisLocker) waitFor(ctx context.Context, m *redisMutex) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 5 * time.Millisecond
	policy.MaxInterval = 100 * time.Millisecond
	policy.MaxElapsedTime = l.wait

	err := backoff.Retry(func() error {
		err := m.lock(ctx, l.ttl)
		if err == nil || errors.Is(err, errLockHeld) {
			return err
		}
		return backoff.Permanent(err)
	}, backoff.WithContext(policy, ctx))

	switch {
	case err == nil:
		return nil
	case errors.Is(err, errLockHeld), errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %s", ErrLockTimeout, m.key)
	default:
		return fmt.Errorf("failed to acquire lock %s: %w", m.key, err)
	}
}

type redisMutex struct {
	client redis.UniversalClient
	key    string
	value  string // only the holder knows the value, so only the holder can release or extend
}

func (m *redisMutex) lock(ctx context.Context, ttl time.Duration) error {
	ok, err := m.client.SetNX(ctx, m.key, m.value, ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return errLockHeld
	}
	return nil
}

func (m *redisMutex) unlock(ctx context.Context) error {
	result, err := m.client.Eval(ctx, unlockScript, []string{m.key}, m.value).Result()
	if err != nil {
		return err
	}
	if result == int64(0) {
		return fmt.Errorf("unlock failed, lock %s expired or is held by someone else", m.key)
	}
	return nil
}
