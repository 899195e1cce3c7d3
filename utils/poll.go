package utils

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTimeout is returned by Poll when the deadline passes before check is done.
var ErrTimeout = errors.New("poll timed out")

// Poll runs check every interval until it reports done or fails, or until
// timeout or ctx expires. The value from the most recent check is returned
// in every case, so a caller that timed out still sees what it last observed.
// check receives a ctx that carries the deadline.
func Poll[T any](ctx context.Context, timeout, interval time.Duration, check func(context.Context) (T, bool, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last T
	for {
		v, done, err := check(ctx)
		last = v
		if err != nil {
			return last, err
		}
		if done {
			return last, nil
		}
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return last, fmt.Errorf("%w after %s", ErrTimeout, timeout)
			}
			return last, ctx.Err()
		case <-ticker.C:
		}
	}
}
