// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

// Package ratelimit implements fixed-window request throttling keyed by a
// best-effort client identity. Each endpoint category (login, submission
// intake) owns its own Limiter, so a client throttled on one endpoint is
// unaffected on the other.
package ratelimit

import (
	"sync"
	"time"
)

// Entry is one client's counter within its current window.
type Entry struct {
	// Count is the number of requests observed since the window opened.
	// Always >= 1 for a stored entry.
	Count int

	// ResetAt is when the current window closes. At or past this instant
	// the entry is replaced, not incremented.
	ResetAt time.Time
}

// Store abstracts the keyed counter state so that single-instance
// deployments use the in-process map while multi-instance deployments can
// plug in a shared cache. Implementations must be safe for concurrent use.
type Store interface {
	Get(key string) (Entry, bool)
	Set(key string, entry Entry)
	Delete(key string)

	// Range calls fn for every stored entry until fn returns false.
	Range(fn func(key string, entry Entry) bool)
}

// Limiter counts requests per key in non-overlapping fixed windows.
// The limiter permits exactly max requests per window: the max+1-th request
// inside one window is the first one reported as limited.
type Limiter struct {
	// mu serializes the read-modify-write on a key so concurrent requests
	// from the same client cannot lose an increment.
	mu     sync.Mutex
	store  Store
	max    int
	window time.Duration
}

// NewLimiter constructs a Limiter over the given store.
func NewLimiter(store Store, max int, window time.Duration) *Limiter {
	return &Limiter{
		store:  store,
		max:    max,
		window: window,
	}
}

// Limited records one request from key at now and reports whether the key
// has exceeded its window budget. A missing or expired entry is replaced
// with a fresh window of count 1 and reported as not limited. The counter is
// never rolled back for rejected requests.
func (l *Limiter) Limited(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.store.Get(key)
	if !ok || !now.Before(entry.ResetAt) {
		l.store.Set(key, Entry{Count: 1, ResetAt: now.Add(l.window)})
		return false
	}

	entry.Count++
	l.store.Set(key, entry)

	return entry.Count > l.max
}

// Sweep deletes every entry whose window closed at or before now and
// returns the number of removed entries. Without sweeping the key space
// grows for the process lifetime.
func (l *Limiter) Sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	var expired []string
	l.store.Range(func(key string, entry Entry) bool {
		if !now.Before(entry.ResetAt) {
			expired = append(expired, key)
		}
		return true
	})

	for _, key := range expired {
		l.store.Delete(key)
	}

	return len(expired)
}

// Window returns the configured window length. Used by the background
// sweeper to pick its tick interval.
func (l *Limiter) Window() time.Duration {
	return l.window
}
