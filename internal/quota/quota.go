// Package quota enforces per-user monthly generation limits, mirroring the
// upstream proxy's in-memory accounting.
package quota

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"brandforge/internal/logging"
)

// ErrQuotaExceeded is returned when a user is over the monthly limit.
var ErrQuotaExceeded = fmt.Errorf("monthly quota exceeded")

type entry struct {
	count int
	month string
}

// Limiter tracks per-user monthly usage. Counters roll over on the first
// access in a new month.
type Limiter struct {
	mu    sync.Mutex
	limit int
	users map[string]*entry
	now   func() time.Time
}

// NewLimiter creates a limiter with the given monthly limit.
func NewLimiter(limit int) *Limiter {
	return &Limiter{
		limit: limit,
		users: make(map[string]*entry),
		now:   time.Now,
	}
}

// WithClock injects a deterministic clock for tests.
func (l *Limiter) WithClock(now func() time.Time) *Limiter {
	l.now = now
	return l
}

func (l *Limiter) currentLocked(userID string) *entry {
	month := l.now().Format("2006-01")
	e, ok := l.users[userID]
	if !ok || e.month != month {
		e = &entry{month: month}
		l.users[userID] = e
	}
	return e
}

// Allow reports whether the user has remaining quota, returning
// ErrQuotaExceeded otherwise.
func (l *Limiter) Allow(userID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	e := l.currentLocked(userID)
	if e.count >= l.limit {
		logging.Get(logging.CategoryQuota).Warn("quota exceeded",
			zap.String("user", userID),
			zap.Int("used", e.count),
			zap.Int("limit", l.limit))
		return fmt.Errorf("%w: %d/%d", ErrQuotaExceeded, e.count, l.limit)
	}
	return nil
}

// Consume records one successful generation for the user.
func (l *Limiter) Consume(userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e := l.currentLocked(userID)
	e.count++
	logging.Get(logging.CategoryQuota).Debug("quota consumed",
		zap.String("user", userID),
		zap.Int("used", e.count),
		zap.Int("limit", l.limit))
}

// Usage returns the user's used count, limit and accounting month.
func (l *Limiter) Usage(userID string) (used, limit int, month string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e := l.currentLocked(userID)
	return e.count, l.limit, e.month
}
