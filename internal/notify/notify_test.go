package notify

import (
	"testing"
	"time"
)

func TestCenterExpiry(t *testing.T) {
	c := NewCenter()
	current := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	c.Success("stress entry recorded")
	c.Info("assistant is overloaded")

	if got := c.Active(); len(got) != 2 {
		t.Fatalf("got %d active, want 2", len(got))
	}

	current = current.Add(3 * time.Second)
	if got := c.Active(); len(got) != 2 {
		t.Errorf("got %d active after 3s, want 2", len(got))
	}

	current = current.Add(3 * time.Second)
	if got := c.Active(); len(got) != 0 {
		t.Errorf("got %d active after 6s, want 0", len(got))
	}
}

func TestCenterDismiss(t *testing.T) {
	c := NewCenter()

	n := c.Success("added 2 tasks")
	c.Info("keep it up")

	c.Dismiss(n.ID)
	active := c.Active()
	if len(active) != 1 {
		t.Fatalf("got %d active, want 1", len(active))
	}
	if active[0].Kind != KindInfo {
		t.Errorf("remaining kind = %v, want info", active[0].Kind)
	}
}
