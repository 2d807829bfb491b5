package ordered

import (
	"cmp"
	"context"

	"github.com/google/btree"
)

// Store implements ports.SubtaskStore over a B-tree. It is meant for
// goal types that carry a total order rather than (or in addition to)
// equality: floating-point keys, composite keys with a natural sort, or
// cases where deterministic iteration over the memoized goals matters.
type Store[G comparable, S any] struct {
	tree *btree.BTreeG[entry[G, S]]
}

type entry[G comparable, S any] struct {
	goal     G
	solution S
}

// New creates an ordered store using the provided less function on goals.
func New[G comparable, S any](less func(a, b G) bool) *Store[G, S] {
	return &Store[G, S]{
		tree: btree.NewG(2, func(a, b entry[G, S]) bool {
			return less(a.goal, b.goal)
		}),
	}
}

// NewOrdered creates an ordered store for naturally ordered goal types.
func NewOrdered[G cmp.Ordered, S any]() *Store[G, S] {
	return New[G, S](func(a, b G) bool { return a < b })
}

// Add records a solution, returning the previous one if present.
func (s *Store[G, S]) Add(ctx context.Context, goal G, solution S) (S, bool, error) {
	previous, replaced := s.tree.ReplaceOrInsert(entry[G, S]{goal: goal, solution: solution})
	return previous.solution, replaced, nil
}

// Get fetches a known solution.
func (s *Store[G, S]) Get(ctx context.Context, goal G) (S, bool, error) {
	item, ok := s.tree.Get(entry[G, S]{goal: goal})
	return item.solution, ok, nil
}

// Contains reports whether a goal has a known solution.
func (s *Store[G, S]) Contains(ctx context.Context, goal G) (bool, error) {
	return s.tree.Has(entry[G, S]{goal: goal}), nil
}

// Len returns the number of memoized solutions.
func (s *Store[G, S]) Len() int {
	return s.tree.Len()
}

// Ascend walks the memoized goals in order, stopping when fn returns false.
func (s *Store[G, S]) Ascend(fn func(goal G, solution S) bool) {
	s.tree.Ascend(func(item entry[G, S]) bool {
		return fn(item.goal, item.solution)
	})
}
