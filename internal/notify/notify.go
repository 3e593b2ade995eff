// Package notify implements the auto-expiring notification banners shown in
// the chat and tracker views. Notifications are best-effort: pushing never
// fails and expired entries are pruned lazily on read.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/attune/internal/constants"
)

// Kind distinguishes the banner styling.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
)

// Notification is one banner entry.
type Notification struct {
	ID        string
	Message   string
	Kind      Kind
	Timestamp time.Time
}

// Center holds active notifications and drops them after a fixed TTL.
type Center struct {
	mu    sync.Mutex
	items []Notification
	ttl   time.Duration
	now   func() time.Time
}

// NewCenter returns a center with the default TTL.
func NewCenter() *Center {
	return &Center{
		ttl: constants.NotificationTTL,
		now: time.Now,
	}
}

// Push adds a banner and returns it.
func (c *Center) Push(message string, kind Kind) Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Kind:      kind,
		Timestamp: c.now(),
	}
	c.items = append(c.items, n)
	return n
}

// Success pushes a success banner.
func (c *Center) Success(message string) Notification {
	return c.Push(message, KindSuccess)
}

// Info pushes an informational banner.
func (c *Center) Info(message string) Notification {
	return c.Push(message, KindInfo)
}

// Active returns the banners that have not yet expired, oldest first, pruning
// the rest.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := c.now().Add(-c.ttl)
	live := c.items[:0]
	for _, n := range c.items {
		if n.Timestamp.After(cutoff) {
			live = append(live, n)
		}
	}
	c.items = live

	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

// Dismiss removes a banner before its TTL elapses.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}
