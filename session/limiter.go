package session

import (
	"sync"
	"time"
)

// attemptLimiter tracks failed login timestamps per identifier inside a
// rolling window.
type attemptLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
}

func newAttemptLimiter() *attemptLimiter {
	return &attemptLimiter{
		attempts: make(map[string][]time.Time),
	}
}

func (l *attemptLimiter) tooManyRecent(key string, now time.Time, limit int, window time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.pruneLocked(key, now, window)) >= limit
}

func (l *attemptLimiter) addFailure(key string, now time.Time, window time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	pruned := l.pruneLocked(key, now, window)
	l.attempts[key] = append(pruned, now)
}

func (l *attemptLimiter) reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, key)
}

// pruneLocked drops attempts older than the window. Caller holds l.mu.
func (l *attemptLimiter) pruneLocked(key string, now time.Time, window time.Duration) []time.Time {
	values := l.attempts[key]
	if len(values) == 0 {
		return nil
	}

	threshold := now.Add(-window)
	pruned := values[:0]
	for _, value := range values {
		if value.After(threshold) {
			pruned = append(pruned, value)
		}
	}
	if len(pruned) == 0 {
		delete(l.attempts, key)
		return nil
	}
	l.attempts[key] = pruned
	return pruned
}
