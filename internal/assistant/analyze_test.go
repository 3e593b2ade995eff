package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/attune/internal/models"
	"github.com/julianstephens/attune/internal/notify"
)

// fakeClient scripts Generate responses for tests.
type fakeClient struct {
	fn    func(req Request) (string, error)
	calls []Request
}

func (f *fakeClient) Generate(_ context.Context, req Request) (string, error) {
	f.calls = append(f.calls, req)
	return f.fn(req)
}

func fastPolicies(a *Assistant) {
	a.replyPolicy.sleep = func(context.Context, time.Duration) error { return nil }
	a.replyPolicy.jitter = func(time.Duration) time.Duration { return 0 }
	a.analyzePolicy.sleep = func(context.Context, time.Duration) error { return nil }
	a.analyzePolicy.jitter = func(time.Duration) time.Duration { return 0 }
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"prose around", "Sure! Here it is:\n```json\n{\"a\":1}\n```\nHope that helps.", `{"a":1}`, true},
		{"nested braces", `x {"a":{"b":2}} y`, `{"a":{"b":2}}`, true},
		{"brace inside string", `{"a":"{not a} brace"}`, `{"a":"{not a} brace"}`, true},
		{"unterminated", `{"a":1`, "", false},
		{"no object", "no json here", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractJSONObject(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("extractJSONObject(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseAnalysis(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := parseAnalysis(`Here you go: {"stressLevel":"high","todos":[{"title":"Plan tomorrow's task list","category":"reflection"}]}`)
		if err != nil {
			t.Fatalf("parseAnalysis failed: %v", err)
		}
		if got.StressLevel != models.StressHigh || len(got.Todos) != 1 {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		if _, err := parseAnalysis(`{"stressLevel":"extreme","todos":[]}`); err == nil {
			t.Error("expected an error for an unknown level")
		}
	})

	t.Run("missing todos", func(t *testing.T) {
		if _, err := parseAnalysis(`{"stressLevel":"low"}`); err == nil {
			t.Error("expected an error when todos is absent")
		}
	})
}

func TestAnalyzeMessage(t *testing.T) {
	t.Run("remote result sanitized", func(t *testing.T) {
		fc := &fakeClient{fn: func(Request) (string, error) {
			return `{"stressLevel":"high","todos":[
				{"title":"  5-minute box breathing  ","category":"mindfulness"},
				{"title":"","category":"health"},
				{"title":"Desk shoulder squeezes","category":"bogus"},
				{"title":"Write down the top worry","category":"reflection"},
				{"title":"Wall push-ups for 2 minutes","category":"exercise"},
				{"title":"Drink water mindfully","category":"health"},
				{"title":"One extra beyond the cap","category":"health"}]}`, nil
		}}
		a := New(fc, notify.NewCenter())

		got := a.AnalyzeMessage(context.Background(), "stressed about work")
		if got.StressLevel != models.StressHigh {
			t.Errorf("level = %v", got.StressLevel)
		}
		if len(got.Todos) != 5 {
			t.Fatalf("todos = %d, want cap of 5", len(got.Todos))
		}
		if got.Todos[0].Title != "5-minute box breathing" {
			t.Errorf("title not trimmed: %q", got.Todos[0].Title)
		}
		if got.Todos[1].Category != models.CategoryHealth {
			t.Errorf("unknown category should default to health, got %v", got.Todos[1].Category)
		}
	})

	t.Run("malformed output falls back", func(t *testing.T) {
		fc := &fakeClient{fn: func(Request) (string, error) { return "I cannot answer in JSON, sorry!", nil }}
		a := New(fc, notify.NewCenter())

		got := a.AnalyzeMessage(context.Background(), "I'm so anxious about my exam tomorrow")
		if got.StressLevel != models.StressHigh {
			t.Errorf("fallback level = %v, want high (negative affect plus cause)", got.StressLevel)
		}
		if len(got.Todos) != 2 {
			t.Errorf("fallback todos = %d, want the 2 safety-net tasks", len(got.Todos))
		}
		if len(fc.calls) != 1 {
			t.Errorf("calls = %d, parse failures must not retry", len(fc.calls))
		}
	})

	t.Run("overload retries then falls back with one banner", func(t *testing.T) {
		fc := &fakeClient{fn: func(Request) (string, error) {
			return "", errors.New("request failed with status 503: overloaded")
		}}
		center := notify.NewCenter()
		a := New(fc, center)
		fastPolicies(a)

		got := a.AnalyzeMessage(context.Background(), "I'm worried about money")
		if got.StressLevel != models.StressHigh {
			t.Errorf("fallback level = %v, want high", got.StressLevel)
		}
		if len(fc.calls) != 3 {
			t.Errorf("calls = %d, want 3 attempts", len(fc.calls))
		}
		banners := center.Active()
		if len(banners) != 1 {
			t.Fatalf("banners = %d, want exactly 1", len(banners))
		}
		if banners[0].Kind != notify.KindInfo {
			t.Errorf("banner kind = %v, want info", banners[0].Kind)
		}
	})

	t.Run("empty remote todos use fallback todos", func(t *testing.T) {
		fc := &fakeClient{fn: func(Request) (string, error) {
			return `{"stressLevel":"very-high","todos":[]}`, nil
		}}
		a := New(fc, notify.NewCenter())

		got := a.AnalyzeMessage(context.Background(), "everything is awful with my job")
		if got.StressLevel != models.StressVeryHigh {
			t.Errorf("level = %v", got.StressLevel)
		}
		if len(got.Todos) != 2 {
			t.Errorf("todos = %d, want the fallback pair", len(got.Todos))
		}
	})

	t.Run("offline", func(t *testing.T) {
		a := New(nil, notify.NewCenter())
		got := a.AnalyzeMessage(context.Background(), "feeling calm today")
		if got.StressLevel != models.StressVeryLow {
			t.Errorf("level = %v, want very-low", got.StressLevel)
		}
		if len(got.Todos) != 0 {
			t.Errorf("todos = %v, want none below elevated stress", got.Todos)
		}
	})
}
