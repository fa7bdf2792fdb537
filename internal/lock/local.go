package lock

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// LocalLocker is an in-process keyed mutex. It only serializes operations
// within a single instance; multi-instance deployments use RedisLocker.
type LocalLocker struct {
	entries map[string]*localEntry
	wait    time.Duration
	mu      sync.Mutex
}

type localEntry struct {
	token chan struct{}
	refs  int
}

// NewLocalLocker creates a LocalLocker that gives up after wait
func NewLocalLocker(wait time.Duration) *LocalLocker {
	return &LocalLocker{
		entries: make(map[string]*localEntry),
		wait:    wait,
	}
}

// Acquire locks every key in sorted order
func (l *LocalLocker) Acquire(ctx context.Context, keys ...string) (Release, error) {
	if l.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.wait)
		defer cancel()
	}

	ordered := orderedKeys(keys)
	held := make([]string, 0, len(ordered))

	releaseHeld := func() {
		for i := len(held) - 1; i >= 0; i-- {
			l.unlock(held[i])
		}
	}

	for _, key := range ordered {
		if err := l.lock(ctx, key); err != nil {
			releaseHeld()
			return nil, err
		}
		held = append(held, key)
	}

	return onceRelease(releaseHeld), nil
}

func (l *LocalLocker) lock(ctx context.Context, key string) error {
	l.mu.Lock()
	entry, ok := l.entries[key]
	if !ok {
		entry = &localEntry{token: make(chan struct{}, 1)}
		l.entries[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	select {
	case entry.token <- struct{}{}:
		return nil
	case <-ctx.Done():
		l.mu.Lock()
		l.dropRef(key, entry)
		l.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrLockTimeout, key)
	}
}

func (l *LocalLocker) unlock(key string) {
	l.mu.Lock()
	entry := l.entries[key]
	l.dropRef(key, entry)
	l.mu.Unlock()

	<-entry.token
}

// dropRef must be called with l.mu held
func (l *LocalLocker) dropRef(key string, entry *localEntry) {
	entry.refs--
	if entry.refs == 0 {
		delete(l.entries, key)
	}
}
