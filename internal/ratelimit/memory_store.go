// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package ratelimit

import "sync"

// MemoryStore is the in-process Store used by single-instance deployments.
// Counters held here are only correct per process; a horizontally scaled
// deployment needs a shared backing store instead.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
	}
}

// Get returns the entry stored under key, if any.
func (s *MemoryStore) Get(key string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	return entry, ok
}

// Set stores entry under key, replacing any previous value.
func (s *MemoryStore) Set(key string, entry Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry
}

// Delete removes the entry stored under key.
func (s *MemoryStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
}

// Range calls fn for every stored entry until fn returns false.
// The iteration works on a snapshot so fn may call back into the store.
func (s *MemoryStore) Range(fn func(key string, entry Entry) bool) {
	s.mu.RLock()
	snapshot := make(map[string]Entry, len(s.entries))
	for key, entry := range s.entries {
		snapshot[key] = entry
	}
	s.mu.RUnlock()

	for key, entry := range snapshot {
		if !fn(key, entry) {
			return
		}
	}
}

// Len reports the number of stored entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}
