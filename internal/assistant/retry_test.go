package assistant

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestIsOverloaded(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"http 503", errors.New("request failed with status 503: unavailable"), true},
		{"overloaded message", errors.New("the model is overloaded"), true},
		{"try again later", errors.New("please try again later"), true},
		{"case insensitive", errors.New("Model Overloaded"), true},
		{"bad request", errors.New("request failed with status 400: bad request"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOverloaded(tt.err); got != tt.want {
				t.Errorf("IsOverloaded(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestPolicyDoRetriesOverload(t *testing.T) {
	p := ReplyPolicy()
	var delays []time.Duration
	p.sleep = func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}
	p.jitter = func(time.Duration) time.Duration { return 0 }

	calls := 0
	err := p.Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("503 service overloaded")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	want := []time.Duration{800 * time.Millisecond, 1600 * time.Millisecond}
	if len(delays) != len(want) {
		t.Fatalf("delays = %v, want %v", delays, want)
	}
	for i := range want {
		if delays[i] != want[i] {
			t.Errorf("delay[%d] = %v, want %v", i, delays[i], want[i])
		}
	}
}

func TestPolicyDoStopsOnHardError(t *testing.T) {
	p := ReplyPolicy()
	p.sleep = func(context.Context, time.Duration) error {
		t.Fatal("should not back off on a non-retryable error")
		return nil
	}

	calls := 0
	hard := errors.New("request failed with status 400: bad request")
	err := p.Do(context.Background(), func(context.Context) error {
		calls++
		return hard
	})
	if !errors.Is(err, hard) {
		t.Errorf("err = %v, want the original error", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestPolicyDoExhaustion(t *testing.T) {
	p := AnalyzePolicy()
	slept := 0
	p.sleep = func(context.Context, time.Duration) error { slept++; return nil }
	p.jitter = func(time.Duration) time.Duration { return 0 }

	calls := 0
	err := p.Do(context.Background(), func(context.Context) error {
		calls++
		return errors.New("model overloaded")
	})
	if err == nil {
		t.Fatal("expected an error after exhaustion")
	}
	if calls != 3 || slept != 2 {
		t.Errorf("calls = %d sleeps = %d, want 3 and 2", calls, slept)
	}
	if !IsOverloaded(err) {
		t.Errorf("exhaustion error should keep the overload signature: %v", err)
	}
}

func TestPolicyDelayJitter(t *testing.T) {
	p := Policy{BaseDelay: 600 * time.Millisecond, Factor: 2, JitterMax: 300 * time.Millisecond}
	p.jitter = func(max time.Duration) time.Duration { return max }

	if got := p.Delay(0); got != 900*time.Millisecond {
		t.Errorf("Delay(0) = %v, want 900ms", got)
	}
	if got := p.Delay(2); got != 2700*time.Millisecond {
		t.Errorf("Delay(2) = %v, want 2.7s", got)
	}
}
