package reply

import (
	"slices"
	"time"
)

// DefaultToastTTL is how long a toast stays visible.
const DefaultToastTTL = 2400 * time.Millisecond

// Tone selects how a toast is styled.
type Tone int

const (
	ToneOK Tone = iota
	ToneWarn
)

func (t Tone) String() string {
	if t == ToneWarn {
		return "warn"
	}
	return "ok"
}

// Toast is one transient notification.
type Toast struct {
	ID       int
	Text     string
	Tone     Tone
	Deadline time.Time
}

// Notifier keeps the visible toasts. It never reads the clock itself: callers
// pass the current time in and schedule their own expiry callbacks.
type Notifier struct {
	ttl    time.Duration
	nextID int
	toasts []Toast
}

// NewNotifier creates a Notifier whose toasts live for ttl
// (DefaultToastTTL when ttl <= 0).
func NewNotifier(ttl time.Duration) Notifier {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	return Notifier{ttl: ttl}
}

// TTL returns the lifetime given to new toasts.
func (n Notifier) TTL() time.Duration {
	if n.ttl <= 0 {
		return DefaultToastTTL
	}
	return n.ttl
}

// Push adds a toast that expires ttl after now.
func (n *Notifier) Push(text string, tone Tone, now time.Time) Toast {
	n.nextID++
	t := Toast{
		ID:       n.nextID,
		Text:     text,
		Tone:     tone,
		Deadline: now.Add(n.TTL()),
	}
	n.toasts = append(n.toasts, t)
	return t
}

// Expire removes every toast whose deadline is not after now and returns how
// many were removed.
func (n *Notifier) Expire(now time.Time) int {
	before := len(n.toasts)
	n.toasts = slices.DeleteFunc(n.toasts, func(t Toast) bool {
		return !t.Deadline.After(now)
	})
	return before - len(n.toasts)
}

// Dismiss removes one toast early.
func (n *Notifier) Dismiss(id int) bool {
	i := slices.IndexFunc(n.toasts, func(t Toast) bool { return t.ID == id })
	if i < 0 {
		return false
	}
	n.toasts = slices.Delete(n.toasts, i, i+1)
	return true
}

// Active returns the visible toasts, oldest first.
func (n Notifier) Active() []Toast {
	return slices.Clone(n.toasts)
}
