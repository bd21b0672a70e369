package reply

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_PushAssignsIncreasingIDsAndDeadlines(t *testing.T) {
	n := NewNotifier(time.Second)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	a := n.Push("one", ToneOK, now)
	b := n.Push("two", ToneWarn, now.Add(100*time.Millisecond))

	assert.Less(t, a.ID, b.ID)
	assert.Equal(t, now.Add(time.Second), a.Deadline)
	require.Len(t, n.Active(), 2)
	assert.Equal(t, "one", n.Active()[0].Text)
}

func TestNotifier_ExpireIsIndependentPerToast(t *testing.T) {
	n := NewNotifier(time.Second)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	n.Push("first", ToneOK, now)
	n.Push("second", ToneOK, now.Add(500*time.Millisecond))

	assert.Zero(t, n.Expire(now.Add(999*time.Millisecond)))
	assert.Equal(t, 1, n.Expire(now.Add(time.Second)))
	require.Len(t, n.Active(), 1)
	assert.Equal(t, "second", n.Active()[0].Text)
	assert.Equal(t, 1, n.Expire(now.Add(2*time.Second)))
	assert.Empty(t, n.Active())
}

func TestNotifier_Dismiss(t *testing.T) {
	n := NewNotifier(0)
	assert.Equal(t, DefaultToastTTL, n.TTL())

	t1 := n.Push("x", ToneOK, time.Now())
	assert.True(t, n.Dismiss(t1.ID))
	assert.False(t, n.Dismiss(t1.ID))
	assert.Empty(t, n.Active())
}
