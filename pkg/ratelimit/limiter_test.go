package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBucketBurstThenExhaust(t *testing.T) {
	b := newBucket(3, 0.001)

	assert.True(t, b.allow())
	assert.True(t, b.allow())
	assert.True(t, b.allow())
	assert.False(t, b.allow())
}

func TestBucketRefills(t *testing.T) {
	b := newBucket(1, 100)

	assert.True(t, b.allow())
	assert.False(t, b.allow())

	time.Sleep(50 * time.Millisecond)
	assert.True(t, b.allow())
}

func TestLimiterTracksKeysIndependently(t *testing.T) {
	l := NewLimiter(1, 0.001, time.Hour)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))

	assert.True(t, l.Allow("10.0.0.2"))
	assert.Equal(t, 2, l.Size())
}

func TestLimiterSweepEvictsIdleKeys(t *testing.T) {
	l := NewLimiter(1, 1, 10*time.Millisecond)

	l.Allow("10.0.0.1")
	assert.Equal(t, 1, l.Size())

	time.Sleep(20 * time.Millisecond)
	l.Sweep()
	assert.Equal(t, 0, l.Size())
}
