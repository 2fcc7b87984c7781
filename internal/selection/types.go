package selection

// KeyFunc extracts the track-by key used as item identity. Two items with
// equal keys are the same item, even across distinct instances.
type KeyFunc[T any] func(T) string

// Mode determines how unmodified clicks treat the existing selection
type Mode string

const (
	ModeSingle   Mode = "single"
	ModeMulti    Mode = "multi"
	ModeAdditive Mode = "additive" // every plain click behaves as a toggle
)

// ParseMode maps a configuration string to a Mode, defaulting to multi
func ParseMode(s string) Mode {
	switch s {
	case string(ModeSingle):
		return ModeSingle
	case string(ModeAdditive):
		return ModeAdditive
	default:
		return ModeMulti
	}
}

// Target identifies what part of a rendered item was clicked
type Target int

const (
	TargetItem     Target = iota // the item body
	TargetCheckbox               // an explicit selection affordance
	TargetLabel                  // a label forwarding to an input elsewhere
)

// Click is one normalized physical click. It is consumed exactly once: the
// interpreter flips the handled flag, so dispatching the same Click to a
// second listener is a no-op.
type Click[T any] struct {
	Item    T
	Ctrl    bool // ctrl or meta
	Shift   bool
	Target  Target
	Ignore  bool // drop without processing
	handled bool
}

// Handled reports whether this click has already been processed
func (c *Click[T]) Handled() bool { return c.handled }
