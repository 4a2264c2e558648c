package ratelimiter

import (
	"testing"
	"time"

	"github.com/sokha-dev/showfolio/internal/config"
)

func TestAllowEnforcesLimitPerWindow(t *testing.T) {
	rl := NewRateLimiter(config.RateLimiterConfig{
		Enabled:              true,
		RequestsPerTimeFrame: 2,
		TimeFrame:            time.Minute,
	}, nil)

	if ok, _ := rl.Allow("client-a"); !ok {
		t.Fatal("first request should be allowed")
	}
	if ok, _ := rl.Allow("client-a"); !ok {
		t.Fatal("second request should be allowed")
	}

	ok, retryAfter := rl.Allow("client-a")
	if ok {
		t.Fatal("third request should be rejected")
	}
	if retryAfter <= 0 {
		t.Errorf("expected a positive retry-after duration, got %v", retryAfter)
	}

	if ok, _ := rl.Allow("client-b"); !ok {
		t.Error("another client should have its own window")
	}
}

func TestAllowPassesEverythingWhenDisabled(t *testing.T) {
	rl := NewRateLimiter(config.RateLimiterConfig{Enabled: false, RequestsPerTimeFrame: 1}, nil)

	for i := 0; i < 5; i++ {
		if ok, _ := rl.Allow("client-a"); !ok {
			t.Fatal("disabled limiter must never reject")
		}
	}
}

// Windows of clients that stopped sending requests must be dropped once
// their frame ends, otherwise the map grows with every distinct client
// ever seen.
func TestAllowEvictsExpiredWindows(t *testing.T) {
	rl := NewRateLimiter(config.RateLimiterConfig{
		Enabled:              true,
		RequestsPerTimeFrame: 5,
		TimeFrame:            10 * time.Millisecond,
	}, nil)

	if ok, _ := rl.Allow("client-a"); !ok {
		t.Fatal("first request should be allowed")
	}

	time.Sleep(25 * time.Millisecond)

	if ok, _ := rl.Allow("client-b"); !ok {
		t.Fatal("request after the frame ended should be allowed")
	}

	rl.mu.Lock()
	_, stale := rl.windows["client-a"]
	total := len(rl.windows)
	rl.mu.Unlock()

	if stale {
		t.Error("expired window for client-a should have been evicted")
	}
	if total != 1 {
		t.Errorf("expected only the live window to remain, got %d entries", total)
	}
}
