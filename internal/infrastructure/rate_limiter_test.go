package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_AllowUpToLimitPerKey(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("ada@example.com"), "request %d should pass", i+1)
	}
	assert.False(t, rl.Allow("ada@example.com"), "fourth request in the window must be rejected")

	// A different key has its own window.
	assert.True(t, rl.Allow("other@example.com"))
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	rl := NewRateLimiter(50*time.Millisecond, 1)

	assert.True(t, rl.Allow("k"))
	assert.False(t, rl.Allow("k"))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, rl.Allow("k"), "old requests fall out of the window")
}
