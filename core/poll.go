package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Condition reports whether the awaited page state was reached.
// A returned error counts as "not yet" and is kept for the timeout message.
type Condition func(ctx context.Context) (bool, error)

// Poll evaluates cond every interval until it holds, timeout elapses or ctx is done.
func Poll(ctx context.Context, timeout, interval time.Duration, cond Condition) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	pollCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	limiter := rate.NewLimiter(rate.Every(interval), 1)

	attempts := 0
	var lastErr error
	for {
		// Wait refuses early when the next token lands past the deadline,
		// so sit out the rest of the window before reporting a timeout.
		if err := limiter.Wait(pollCtx); err != nil {
			<-pollCtx.Done()
			break
		}

		attempts++
		ok, err := cond(pollCtx)
		if err == nil && ok {
			logrus.Tracef("Condition met after %d attempts", attempts)
			return nil
		}
		lastErr = err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	logrus.Tracef("Condition not met after %d attempts", attempts)
	if lastErr != nil && !errors.Is(lastErr, context.DeadlineExceeded) && !errors.Is(lastErr, context.Canceled) {
		return fmt.Errorf("%w after %s: %v", ErrTimeout, timeout, lastErr)
	}
	return fmt.Errorf("%w after %s", ErrTimeout, timeout)
}
