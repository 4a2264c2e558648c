package ratelimiter

import (
	"sync"
	"time"

	"github.com/sokha-dev/showfolio/internal/config"
	"go.uber.org/zap"
)

type window struct {
	count   int
	resetAt time.Time
}

// FixedWindowRateLimiter counts requests per client inside a fixed time
// frame. Counters reset when the frame rolls over.
type FixedWindowRateLimiter struct {
	mu        sync.Mutex
	windows   map[string]*window
	lastSweep time.Time
	cfg       config.RateLimiterConfig
	logger    *zap.SugaredLogger
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		windows:   make(map[string]*window),
		lastSweep: time.Now(),
		cfg:       cfg,
		logger:    logger,
	}
}

// Allow reports whether the client may proceed and, when it may not, how
// long until the window resets.
func (rl *FixedWindowRateLimiter) Allow(clientKey string) (bool, time.Duration) {
	if !rl.cfg.Enabled {
		return true, 0
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.sweepLocked(now)

	w, ok := rl.windows[clientKey]
	if !ok || now.After(w.resetAt) {
		rl.windows[clientKey] = &window{count: 1, resetAt: now.Add(rl.cfg.TimeFrame)}
		return true, 0
	}

	if w.count >= rl.cfg.RequestsPerTimeFrame {
		rl.logger.Debugf("Rate limit exceeded for client: %s", clientKey)
		return false, time.Until(w.resetAt)
	}

	w.count++
	return true, 0
}

// sweepLocked drops windows whose frame has ended so one-off clients do
// not pile up in the map. Runs at most once per time frame. Caller must
// hold mu.
func (rl *FixedWindowRateLimiter) sweepLocked(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.cfg.TimeFrame {
		return
	}

	for key, w := range rl.windows {
		if now.After(w.resetAt) {
			delete(rl.windows, key)
		}
	}
	rl.lastSweep = now
}
