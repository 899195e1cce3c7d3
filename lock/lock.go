package lock

import (
	"context"
	"fmt"
)

// Locker provides mutual exclusion with context support.
type Locker interface {
	Lock(ctx context.Context) error
	Unlock(ctx context.Context) error
}

// WithLock acquires the lock, calls fn, and releases the lock.
// If fn returns an error, the lock is still released.
func WithLock(ctx context.Context, l Locker, fn func() error) error {
	if err := l.Lock(ctx); err != nil {
		return err
	}
	defer l.Unlock(ctx) //nolint:errcheck
	return fn()
}

// compile-time interface check.
var _ Locker = (*Local)(nil)

// Local is an in-process lock. A size-1 buffered channel holds the token so
// that Lock can give up when ctx is cancelled.
type Local struct {
	ch chan struct{}
}

// NewLocal creates an unlocked Local.
func NewLocal() *Local {
	return &Local{ch: make(chan struct{}, 1)}
}

// Lock blocks until the token is available or ctx is done.
func (l *Local) Lock(ctx context.Context) error {
	select {
	case l.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("acquire lock: %w", ctx.Err())
	}
}

// Unlock releases the token. Unlocking an unlocked Local is a no-op.
func (l *Local) Unlock(_ context.Context) error {
	select {
	case <-l.ch:
	default:
	}
	return nil
}
