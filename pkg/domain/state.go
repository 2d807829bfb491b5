package domain

// State is the resumable-state cell attached to a goal while it is in
// flight. It starts empty on the first visit of a goal; the task may
// populate it with partial progress (e.g. a decomposition computed once)
// so that resumption after a subgoal resolves does not redo that work.
//
// The cell is owned exclusively by the single in-flight frame for its
// goal and is discarded once the goal's solution is committed. Stateless
// tasks can ignore it entirely.
type State[T any] struct {
	value   T
	present bool
}

// Get returns the stored value and whether one has been set.
func (s *State[T]) Get() (T, bool) {
	return s.value, s.present
}

// Set stores a value, overwriting any previous one.
func (s *State[T]) Set(value T) {
	s.value = value
	s.present = true
}

// Clear resets the cell to empty.
func (s *State[T]) Clear() {
	var zero T
	s.value = zero
	s.present = false
}
