package controller

import (
	"fmt"

	"multipick/internal/eventbus"
	"multipick/internal/selection"
)

// Binding supplies the host collections through explicit accessors. Full is
// the unfiltered source collection and is required; Visible is the filtered
// view as currently displayed and defaults to Full.
type Binding[T any] struct {
	Full    func() []T
	Visible func() []T
}

// Options configures a controller at construction
type Options[T any] struct {
	Key      selection.KeyFunc[T] // track-by identity, required
	Binding  Binding[T]
	Mode     selection.Mode
	GroupID  string
	Stack    *selection.Stack[T]         // shared across sibling controllers; created if nil
	Project  func(item T, selected bool) // per-item selected-boolean projection
	OnChange func(item T, selected bool) // change-notification hook
	Bus      eventbus.EventBus
}

// Controller keeps a selection set synchronized with clicks and
// programmatic changes for one rendered list
type Controller[T any] struct {
	key      selection.KeyFunc[T]
	binding  Binding[T]
	set      *selection.Set[T]
	stack    *selection.Stack[T]
	interp   *selection.Interpreter[T]
	groupID  string
	project  func(item T, selected bool)
	onChange func(item T, selected bool)
	bus      eventbus.EventBus
}

// New creates a controller. A missing Full collection accessor is fatal:
// the controller cannot operate without a host collection binding.
func New[T any](opts Options[T]) (*Controller[T], error) {
	if opts.Key == nil {
		return nil, fmt.Errorf("controller: track-by key function is required")
	}
	if opts.Binding.Full == nil {
		return nil, fmt.Errorf("controller: host collection binding is required")
	}
	if opts.Binding.Visible == nil {
		opts.Binding.Visible = opts.Binding.Full
	}
	if opts.Stack == nil {
		opts.Stack = selection.NewStack[T]()
	}
	if opts.Mode == "" {
		opts.Mode = selection.ModeMulti
	}

	set := selection.NewSet(opts.Key)
	return &Controller[T]{
		key:      opts.Key,
		binding:  opts.Binding,
		set:      set,
		stack:    opts.Stack,
		interp:   selection.NewInterpreter(opts.Key, set, opts.Stack, opts.GroupID, opts.Mode),
		groupID:  opts.GroupID,
		project:  opts.Project,
		onChange: opts.OnChange,
		bus:      opts.Bus,
	}, nil
}

// HandleClick runs one click through the interpreter, then refreshes the
// projection and fires notifications if the clicked item's membership
// changed
func (c *Controller[T]) HandleClick(click *selection.Click[T]) {
	changed := c.interp.HandleClick(click, c.binding.Visible(), c.binding.Full())
	c.reproject()
	if changed {
		c.notify(click.Item, c.set.IsSelected(click.Item))
	}
}

// Reconcile absorbs a selection-boolean change made outside of any click.
// A value that turned true while the mode is not multi clears every other
// selection first, keeping direct mutation consistent with click rules.
func (c *Controller[T]) Reconcile(item T, selected bool) {
	if selected == c.set.IsSelected(item) {
		return
	}
	if selected && c.interp.Mode() != selection.ModeMulti {
		c.set.DeselectAllExcept(c.binding.Full(), item)
	}
	if selected {
		c.set.Select(item)
	} else {
		c.set.Deselect(item)
	}
	c.reproject()
	c.notify(item, selected)
}

// Clear drops the entire selection
func (c *Controller[T]) Clear() {
	if c.set.Len() == 0 {
		return
	}
	c.set.DeselectAllExcept(c.binding.Full())
	c.reproject()
	if c.bus != nil {
		c.bus.Publish(eventbus.SelectionClearedEvent{GroupID: c.groupID})
	}
}

// Selected returns the selected-items sequence, read-only by convention
func (c *Controller[T]) Selected() []T {
	return c.set.Items()
}

// IsSelected reports membership of item
func (c *Controller[T]) IsSelected(item T) bool {
	return c.set.IsSelected(item)
}

// Anchor returns the current shift-range anchor for this controller's group
func (c *Controller[T]) Anchor() (T, bool) {
	return c.stack.Peek(c.groupID)
}

// Mode returns the current selection mode
func (c *Controller[T]) Mode() selection.Mode {
	return c.interp.Mode()
}

// SetMode switches the selection mode for subsequent clicks
func (c *Controller[T]) SetMode(m selection.Mode) {
	if m == c.interp.Mode() {
		return
	}
	c.interp.SetMode(m)
	if c.bus != nil {
		c.bus.Publish(eventbus.ModeChangedEvent{GroupID: c.groupID, Mode: string(m)})
	}
}

// reproject recomputes every visible item's selected-boolean field
func (c *Controller[T]) reproject() {
	if c.project == nil {
		return
	}
	for _, item := range c.binding.Visible() {
		c.project(item, c.set.IsSelected(item))
	}
}

func (c *Controller[T]) notify(item T, selected bool) {
	if c.onChange != nil {
		c.onChange(item, selected)
	}
	if c.bus != nil {
		c.bus.Publish(eventbus.SelectionChangedEvent{
			GroupID:  c.groupID,
			Key:      c.key(item),
			Selected: selected,
			Total:    c.set.Len(),
		})
	}
}
