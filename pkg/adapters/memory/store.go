package memory

import (
	"context"
	"sync"
)

// Store implements ports.SubtaskStore over a plain map.
// Safe for concurrent use, although a solver run never shares it.
type Store[G comparable, S any] struct {
	data map[G]S
	mu   sync.RWMutex
}

// New creates a new in-memory store.
func New[G comparable, S any]() *Store[G, S] {
	return &Store[G, S]{
		data: make(map[G]S),
	}
}

// Add records a solution, returning the previous one if present.
func (s *Store[G, S]) Add(ctx context.Context, goal G, solution S) (S, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, replaced := s.data[goal]
	s.data[goal] = solution
	return previous, replaced, nil
}

// Get fetches a known solution.
func (s *Store[G, S]) Get(ctx context.Context, goal G) (S, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	solution, ok := s.data[goal]
	return solution, ok, nil
}

// Contains reports whether a goal has a known solution.
func (s *Store[G, S]) Contains(ctx context.Context, goal G) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.data[goal]
	return ok, nil
}

// Len returns the number of memoized solutions.
func (s *Store[G, S]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
