package selection

// Interpreter maps one normalized click, under the current selection mode,
// to the selection operations on its Set. It is a pure decision function
// over the click plus the visible/full collections; the only state it
// carries is which set, anchor stack and group it drives.
type Interpreter[T any] struct {
	key     KeyFunc[T]
	set     *Set[T]
	stack   *Stack[T]
	groupID string
	mode    Mode
}

// NewInterpreter creates an interpreter driving the given set and stack
func NewInterpreter[T any](key KeyFunc[T], set *Set[T], stack *Stack[T], groupID string, mode Mode) *Interpreter[T] {
	return &Interpreter[T]{
		key:     key,
		set:     set,
		stack:   stack,
		groupID: groupID,
		mode:    mode,
	}
}

// Mode returns the current selection mode
func (in *Interpreter[T]) Mode() Mode { return in.mode }

// SetMode switches the selection mode for subsequent clicks
func (in *Interpreter[T]) SetMode(m Mode) { in.mode = m }

// HandleClick applies one click to the selection. Clicks flagged ignore,
// already handled once, or targeting a forwarding label are dropped without
// any state change. Returns whether the clicked item's membership changed.
func (in *Interpreter[T]) HandleClick(c *Click[T], visible, full []T) bool {
	if c == nil || c.Ignore || c.handled {
		return false
	}
	if c.Target == TargetLabel {
		// The associated input fires its own click; processing both would
		// toggle twice
		return false
	}
	c.handled = true

	// Additive mode behaves as if ctrl were always held
	ctrl := c.Ctrl || in.mode == ModeAdditive
	checkbox := c.Target == TargetCheckbox
	wasSelected := in.set.IsSelected(c.Item)

	switch {
	case c.Shift && in.mode == ModeMulti && !checkbox:
		anchor, ok := in.stack.Peek(in.groupID)
		if !ok {
			anchor = c.Item
		}
		if !ctrl {
			// Fresh range replaces the selection; ctrl keeps it additive
			in.set.DeselectAllExcept(full, c.Item, anchor)
		}
		SelectBetween(in.set, visible, anchor, c.Item)

	case c.Shift || ctrl || checkbox:
		if wasSelected {
			in.set.Deselect(c.Item)
		} else {
			if in.mode == ModeSingle {
				in.set.DeselectAllExcept(full, c.Item)
			}
			in.stack.Push(in.groupID, c.Item)
			in.set.Select(c.Item)
		}

	default:
		in.set.DeselectAllExcept(full, c.Item)
		in.stack.Push(in.groupID, c.Item)
		in.set.Select(c.Item)
	}

	return in.set.IsSelected(c.Item) != wasSelected
}
