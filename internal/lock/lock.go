// Package lock serializes ledger operations per account.
//
// Keys are always acquired in sorted order so that two operations touching
// the same pair of accounts cannot deadlock, whatever order the request named
// them in.
package lock

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrLockTimeout is returned when a lock could not be acquired within the wait budget
var ErrLockTimeout = errors.New("timed out waiting for account lock")

// Release frees every lock taken by one Acquire call. It is safe to call more than once.
type Release func()

// Locker acquires exclusive locks on a set of keys
type Locker interface {
	Acquire(ctx context.Context, keys ...string) (Release, error)
}

// orderedKeys de-duplicates and sorts keys into acquisition order
func orderedKeys(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	ordered := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		ordered = append(ordered, k)
	}
	sort.Strings(ordered)
	return ordered
}

func onceRelease(fn func()) Release {
	var once sync.Once
	return func() {
		once.Do(fn)
	}
}
