package application

import (
	"context"
	"time"
)

const defaultPollInterval = 250 * time.Millisecond

// waitUntil polls cond until it reports true or timeout elapses. Reaching the
// timeout is not an error; only cancellation of ctx is.
func waitUntil(ctx context.Context, interval, timeout time.Duration, cond func(context.Context) (bool, error)) (bool, error) {
	if interval <= 0 {
		interval = defaultPollInterval
	}

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if ok, err := cond(waitCtx); err == nil && ok {
			return true, nil
		}

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-waitCtx.Done():
			if err := ctx.Err(); err != nil {
				return false, err
			}
			return false, nil
		case <-ticker.C:
		}
	}
}
