package selection

// Stack records the most recently clicked item per controller group, used
// to anchor shift-click ranges. Groups are fully independent so several
// selection-aware lists on one screen never share anchors.
type Stack[T any] struct {
	stacks map[string][]T
}

// NewStack creates an empty anchor stack
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{
		stacks: make(map[string][]T),
	}
}

// Push records item as the most recent explicit anchor for groupID
func (s *Stack[T]) Push(groupID string, item T) {
	s.stacks[groupID] = append(s.stacks[groupID], item)
}

// Peek returns the most recently pushed item for groupID. The bool is false
// if nothing was ever pushed for that group.
func (s *Stack[T]) Peek(groupID string) (T, bool) {
	stack := s.stacks[groupID]
	if len(stack) == 0 {
		var zero T
		return zero, false
	}
	return stack[len(stack)-1], true
}
