package api

import (
	"testing"
	"time"
)

func TestAttemptLimiterSlidingWindow(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter()
	key := "192.0.2.1"
	window := 15 * time.Minute
	now := time.Now().UTC()

	// A failure older than the window never counts.
	limiter.addFailure(key, now.Add(-window-time.Minute), window)
	if limiter.tooManyRecent(key, now, 1, window) {
		t.Fatal("stale failure must be pruned")
	}

	limiter.addFailure(key, now.Add(-time.Minute), window)
	if !limiter.tooManyRecent(key, now, 1, window) {
		t.Fatal("one recent failure must hit limit 1")
	}
	if limiter.tooManyRecent(key, now, 2, window) {
		t.Fatal("one recent failure must stay under limit 2")
	}
}

func TestAttemptLimiterResetClearsKey(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter()
	key := "192.0.2.2"
	window := 15 * time.Minute
	now := time.Now().UTC()

	for attempt := 0; attempt < 3; attempt++ {
		limiter.addFailure(key, now, window)
	}
	if !limiter.tooManyRecent(key, now, 3, window) {
		t.Fatal("three failures must hit limit 3")
	}

	limiter.reset(key)
	if limiter.tooManyRecent(key, now, 1, window) {
		t.Fatal("reset must clear all failures for the key")
	}
}

func TestAttemptLimiterKeysAreIndependent(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter()
	window := 15 * time.Minute
	now := time.Now().UTC()

	limiter.addFailure("192.0.2.3", now, window)
	if limiter.tooManyRecent("192.0.2.4", now, 1, window) {
		t.Fatal("failures must not leak across keys")
	}
}
