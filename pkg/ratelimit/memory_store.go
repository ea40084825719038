package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps per-key request timestamps in process memory. Expired
// timestamps are pruned on every access and keys with empty windows are
// deleted, so idle keys do not accumulate.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string][]time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		windows: make(map[string][]time.Time),
	}
}

// RecordIfAllowed implements Store.
func (s *MemoryStore) RecordIfAllowed(ctx context.Context, key string, now time.Time, window time.Duration, limit int) (bool, int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	timestamps := s.prune(key, now, window)
	if len(timestamps) >= limit {
		return false, len(timestamps), timestamps[0], nil
	}

	timestamps = append(timestamps, now)
	s.windows[key] = timestamps
	return true, len(timestamps), timestamps[0], nil
}

// CountInWindow implements Store.
func (s *MemoryStore) CountInWindow(ctx context.Context, key string, now time.Time, window time.Duration) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	timestamps := s.prune(key, now, window)
	if len(timestamps) == 0 {
		return 0, time.Time{}, nil
	}
	return len(timestamps), timestamps[0], nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.windows, key)
	return nil
}

// Len returns the number of keys with a non-empty window.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows)
}

// prune drops timestamps at or before now-window. Timestamps are appended in
// order, so the window stays sorted and pruning cuts a prefix.
// Must be called with lock held.
func (s *MemoryStore) prune(key string, now time.Time, window time.Duration) []time.Time {
	timestamps, exists := s.windows[key]
	if !exists {
		return nil
	}

	cutoff := now.Add(-window)
	start := 0
	for start < len(timestamps) && !timestamps[start].After(cutoff) {
		start++
	}
	timestamps = timestamps[start:]

	if len(timestamps) == 0 {
		delete(s.windows, key)
		return nil
	}
	s.windows[key] = timestamps
	return timestamps
}
