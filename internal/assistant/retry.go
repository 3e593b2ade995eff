package assistant

import (
	"context"
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"
)

// overloadPattern is the transient-failure signature eligible for retry. Any
// other error aborts the retry loop immediately.
var overloadPattern = regexp.MustCompile(`(?i)(503|overloaded|try again later)`)

// IsOverloaded reports whether err looks like a transient service overload.
func IsOverloaded(err error) bool {
	if err == nil {
		return false
	}
	return overloadPattern.MatchString(err.Error())
}

// Policy bounds a retry loop around one remote call: attempts, exponential
// backoff, and jitter. The zero value performs a single attempt with no
// delays.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Factor      int
	JitterMax   time.Duration

	// sleep and jitter are injectable for tests.
	sleep  func(ctx context.Context, d time.Duration) error
	jitter func(max time.Duration) time.Duration
}

// ReplyPolicy is the retry policy for conversational reply calls.
func ReplyPolicy() Policy {
	return Policy{MaxAttempts: 3, BaseDelay: 800 * time.Millisecond, Factor: 2, JitterMax: 300 * time.Millisecond}
}

// AnalyzePolicy is the retry policy for structured analysis calls.
func AnalyzePolicy() Policy {
	return Policy{MaxAttempts: 3, BaseDelay: 600 * time.Millisecond, Factor: 2, JitterMax: 300 * time.Millisecond}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func randomJitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rand.Int64N(int64(max)))
}

// Delay returns the backoff before retrying after the given zero-based
// attempt.
func (p Policy) Delay(attempt int) time.Duration {
	factor := p.Factor
	if factor < 1 {
		factor = 1
	}
	d := p.BaseDelay
	for i := 0; i < attempt; i++ {
		d *= time.Duration(factor)
	}
	jitter := p.jitter
	if jitter == nil {
		jitter = randomJitter
	}
	return d + jitter(p.JitterMax)
}

// Do runs fn up to MaxAttempts times, backing off between attempts while the
// error stays overload-shaped. A non-retryable error is returned as is; on
// exhaustion the last overload error is wrapped.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := p.sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if !IsOverloaded(err) {
			return err
		}
		lastErr = err
		if attempt < attempts-1 {
			if err := sleep(ctx, p.Delay(attempt)); err != nil {
				return fmt.Errorf("retry aborted: %w", lastErr)
			}
		}
	}
	return fmt.Errorf("retries exhausted: %w", lastErr)
}
