package retry

import (
	"context"
	"log/slog"
	"time"

	random "github.com/mazen160/go-random"
)

// Policy describes an exponential backoff schedule with jitter. The zero
// value is not usable; construct with the fields you need or DefaultPolicy.
type Policy struct {
	Attempts  int
	BaseDelay time.Duration
	Factor    float64
	MaxJitter time.Duration
	// Retryable decides whether a failed attempt justifies another round.
	// A nil predicate retries everything.
	Retryable func(error) bool
}

func DefaultPolicy() Policy {
	return Policy{
		Attempts:  4,
		BaseDelay: time.Second,
		Factor:    2,
		MaxJitter: time.Second,
	}
}

// Delay returns the backoff before the given 1-indexed attempt, without
// jitter. Delay(1) is zero: the first attempt runs immediately.
func (p Policy) Delay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}
	d := float64(p.BaseDelay)
	for i := 1; i < attempt-1; i++ {
		d *= p.Factor
	}
	return time.Duration(d)
}

func (p Policy) jitter() time.Duration {
	if p.MaxJitter <= 0 {
		return 0
	}
	ms, err := random.IntRange(0, int(p.MaxJitter.Milliseconds())+1)
	if err != nil {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

// Do runs fn up to p.Attempts times, sleeping the jittered backoff between
// rounds. It stops early when fn succeeds, when the error is not retryable,
// or when ctx is done; ctx is the only bound on total elapsed time.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 1; attempt <= p.Attempts; attempt++ {
		if attempt > 1 {
			wait := p.Delay(attempt) + p.jitter()
			slog.DebugContext(ctx, "backing off", "attempt", attempt, "wait", wait)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return lastErr
		}
		if p.Retryable != nil && !p.Retryable(lastErr) {
			return lastErr
		}
	}
	return lastErr
}
