package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/julianstephens/attune/internal/models"
	"github.com/julianstephens/attune/internal/notify"
)

func TestGenerateReplyOffTopic(t *testing.T) {
	fc := &fakeClient{fn: func(Request) (string, error) {
		t.Fatal("off-topic text must not reach the model")
		return "", nil
	}}
	a := New(fc, notify.NewCenter())

	got := a.GenerateReply(context.Background(), nil, "what do you think about the election?")
	if got != offTopicRedirect {
		t.Errorf("reply = %q, want the fixed redirect", got)
	}
	if len(fc.calls) != 0 {
		t.Errorf("calls = %d, want 0", len(fc.calls))
	}
}

func TestGenerateReplyPassthrough(t *testing.T) {
	fc := &fakeClient{fn: func(Request) (string, error) {
		return "• One slow breath at a time.", nil
	}}
	a := New(fc, notify.NewCenter())

	history := []models.ChatMessage{
		{Sender: models.SenderBot, Text: "Hi! How are you feeling today?"},
		{Sender: models.SenderUser, Text: "not great"},
		{Sender: models.SenderBot, Text: "• I'm listening."},
	}
	got := a.GenerateReply(context.Background(), history, "still feeling tense about my job")
	if got != "• One slow breath at a time." {
		t.Errorf("reply = %q", got)
	}

	req := fc.calls[0]
	if req.System != systemPrompt {
		t.Error("system prompt not forwarded")
	}
	// The greeting precedes the first user message and is dropped.
	if len(req.History) != 2 {
		t.Fatalf("history window = %d turns, want 2", len(req.History))
	}
	if req.History[0].Role != RoleUser || req.History[0].Text != "not great" {
		t.Errorf("window starts at %+v, want the first user turn", req.History[0])
	}
	if req.Prompt != "still feeling tense about my job" {
		t.Errorf("prompt = %q", req.Prompt)
	}
}

func TestGenerateReplyCrisisPreamble(t *testing.T) {
	fc := &fakeClient{fn: func(Request) (string, error) {
		return "• Please stay with me.", nil
	}}
	a := New(fc, notify.NewCenter())

	got := a.GenerateReply(context.Background(), nil, "some days I just want to hurt myself")
	if !strings.HasPrefix(got, "• I'm really sorry you're feeling this way.") {
		t.Errorf("reply missing crisis preamble: %q", got)
	}
	if !strings.HasSuffix(got, "• Please stay with me.") {
		t.Errorf("model text not appended: %q", got)
	}
}

func TestGenerateReplyOverloadFallback(t *testing.T) {
	fc := &fakeClient{fn: func(Request) (string, error) {
		return "", errors.New("503 the model is overloaded")
	}}
	center := notify.NewCenter()
	a := New(fc, center)
	fastPolicies(a)
	a.pick = func(int) int { return 0 }

	got := a.GenerateReply(context.Background(), nil, "feeling low about my health")
	if got != cannedReplies[0] {
		t.Errorf("reply = %q, want the canned fallback", got)
	}
	if len(fc.calls) != 3 {
		t.Errorf("calls = %d, want 3 attempts", len(fc.calls))
	}
	banners := center.Active()
	if len(banners) != 1 || !strings.Contains(banners[0].Message, "overloaded") {
		t.Errorf("banners = %+v, want one overload notice", banners)
	}
}

func TestGenerateReplyHardErrorFallback(t *testing.T) {
	fc := &fakeClient{fn: func(Request) (string, error) {
		return "", errors.New("network unreachable")
	}}
	center := notify.NewCenter()
	a := New(fc, center)
	a.pick = func(int) int { return 2 }

	got := a.GenerateReply(context.Background(), nil, "rough day with the family")
	if got != cannedReplies[2] {
		t.Errorf("reply = %q, want the canned fallback", got)
	}
	if len(fc.calls) != 1 {
		t.Errorf("calls = %d, hard errors must not retry", len(fc.calls))
	}
	if len(center.Active()) != 0 {
		t.Error("non-overload failures should not raise a banner")
	}
}

func TestGenerateReplyOffline(t *testing.T) {
	a := New(nil, notify.NewCenter())
	a.pick = func(int) int { return 4 }

	if got := a.GenerateReply(context.Background(), nil, "feeling a bit tense"); got != cannedReplies[4] {
		t.Errorf("reply = %q, want a canned reply when offline", got)
	}
}
