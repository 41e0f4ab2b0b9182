package marketplace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock lets tests move time forward without sleeping.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func newTestRegistry(ttl time.Duration) (*ImageRequestRegistry, *fixedClock) {
	clock := &fixedClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	reg := NewImageRequestRegistry(ttl)
	reg.now = clock.Now
	return reg, clock
}

func TestRegistryLookup(t *testing.T) {
	reg, _ := newTestRegistry(RequestTTL)

	_, ok := reg.Lookup("user1")
	assert.False(t, ok)

	entry := reg.Add("user1", "msg1", "Gaming PC")
	assert.Equal(t, "user1", entry.SubmitterID)

	got, ok := reg.Lookup("user1")
	require.True(t, ok)
	assert.Equal(t, "msg1", got.SubmissionMessageID)
	assert.Equal(t, "Gaming PC", got.ListingTitle)
}

func TestRegistryExpiry(t *testing.T) {
	reg, clock := newTestRegistry(RequestTTL)
	reg.Add("user1", "msg1", "Gaming PC")

	// Just inside the window.
	clock.now = clock.now.Add(RequestTTL)
	_, ok := reg.Lookup("user1")
	assert.True(t, ok)

	// Past the window the entry is unreachable, and the lookup removes it.
	clock.now = clock.now.Add(time.Second)
	_, ok = reg.Lookup("user1")
	assert.False(t, ok)

	clock.now = clock.now.Add(-2 * time.Second)
	_, ok = reg.Lookup("user1")
	assert.False(t, ok, "expired entry must stay gone even if the clock rewinds")
}

func TestRegistryExpiredPredicate(t *testing.T) {
	reg, clock := newTestRegistry(RequestTTL)
	entry := reg.Add("user1", "msg1", "Gaming PC")

	assert.False(t, entry.Expired(clock.now))
	assert.False(t, entry.Expired(clock.now.Add(RequestTTL)))
	assert.True(t, entry.Expired(clock.now.Add(RequestTTL+time.Nanosecond)))
}

func TestRegistryReplace(t *testing.T) {
	reg, _ := newTestRegistry(RequestTTL)
	reg.Add("user1", "msg1", "Old Listing")
	reg.Add("user1", "msg2", "New Listing")

	got, ok := reg.Lookup("user1")
	require.True(t, ok)
	assert.Equal(t, "msg2", got.SubmissionMessageID)
}

func TestRegistryRemove(t *testing.T) {
	reg, _ := newTestRegistry(RequestTTL)
	reg.Add("user1", "msg1", "Gaming PC")
	reg.Remove("user1")

	_, ok := reg.Lookup("user1")
	assert.False(t, ok)

	// Removing an absent entry is fine.
	reg.Remove("user1")
}

func TestRegistrySweep(t *testing.T) {
	reg, clock := newTestRegistry(time.Hour)
	reg.Add("expired1", "msg1", "A")
	reg.Add("expired2", "msg2", "B")

	clock.now = clock.now.Add(2 * time.Hour)
	reg.Add("fresh", "msg3", "C")

	assert.Equal(t, 2, reg.Sweep())
	assert.Equal(t, 0, reg.Sweep())

	_, ok := reg.Lookup("fresh")
	assert.True(t, ok)
}
