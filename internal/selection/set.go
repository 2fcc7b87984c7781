package selection

// Set is the ordered sequence of currently selected items, unique by
// track-by key. The sequence preserves insertion order of Select calls,
// nothing more; callers must not expect it to mirror list order.
type Set[T any] struct {
	key   KeyFunc[T]
	items []T
}

// NewSet creates an empty selection set using the given identity key
func NewSet[T any](key KeyFunc[T]) *Set[T] {
	return &Set[T]{key: key}
}

// Items returns the live selection sequence. Read-only by convention; it is
// shared with the host and any observers.
func (s *Set[T]) Items() []T {
	return s.items
}

// Len returns the number of selected items
func (s *Set[T]) Len() int {
	return len(s.items)
}

// IsSelected reports whether item is in the selection sequence
func (s *Set[T]) IsSelected(item T) bool {
	return IndexOf(s.items, item, s.key) != NotFound
}

// Select appends item to the selection unless already present
func (s *Set[T]) Select(item T) {
	if s.IsSelected(item) {
		return
	}
	s.items = append(s.items, item)
}

// Deselect removes item from the selection if present
func (s *Set[T]) Deselect(item T) {
	i := IndexOf(s.items, item, s.key)
	if i == NotFound {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
}

// DeselectAllExcept clears the selection, then re-selects according to the
// exception items:
//   - none: full clear
//   - one: only that item survives
//   - two: treated as inclusive span boundaries over the full collection;
//     every item from the first boundary occurrence through the other is
//     re-selected. If only one boundary is present in full, just that one
//     is re-selected.
func (s *Set[T]) DeselectAllExcept(full []T, except ...T) {
	s.items = s.items[:0]
	switch len(except) {
	case 0:
	case 1:
		s.Select(except[0])
	default:
		s.selectSpan(full, except[0], except[1])
	}
}

// selectSpan selects the inclusive run of full between the two boundary
// items, falling back to a lone boundary when the other is absent
func (s *Set[T]) selectSpan(full []T, a, b T) {
	ia := IndexOf(full, a, s.key)
	ib := IndexOf(full, b, s.key)
	switch {
	case ia == NotFound && ib == NotFound:
		return
	case ia == NotFound:
		s.Select(full[ib])
	case ib == NotFound:
		s.Select(full[ia])
	default:
		if ia > ib {
			ia, ib = ib, ia
		}
		for _, item := range full[ia : ib+1] {
			s.Select(item)
		}
	}
}
