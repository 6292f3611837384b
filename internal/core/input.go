package core

// Action represents a semantic game action, abstracted from physical input.
// Front-ends translate keys, mouse buttons, and window events into actions.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A - held
	ActionRight        // Right arrow, D - held
	ActionFire         // Space - edge-triggered
	ActionClick        // Mouse press (Enter in terminals) - leaves the welcome screen
	ActionQuit         // Q, Ctrl+C, window close
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionClick:
		return "Click"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// bit returns the bitmask bit for an action, or 0 for ActionNone/unknown.
func (a Action) bit() uint8 {
	if a <= ActionNone || a > ActionQuit {
		return 0
	}
	return 1 << uint(a-1)
}

// InputFrame is the set of actions active during one simulation tick.
// The zero value is an empty frame.
type InputFrame struct {
	mask uint8
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// FrameFromMask rebuilds a frame from its Mask encoding.
func FrameFromMask(mask uint8) InputFrame {
	return InputFrame{mask: mask & (ActionQuit.bit()<<1 - 1)}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	f.mask |= a.bit()
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	b := a.bit()
	return b != 0 && f.mask&b != 0
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	return f.mask == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.mask = 0
}

// Mask returns a one-byte encoding of the frame, used by recordings.
func (f InputFrame) Mask() uint8 {
	return f.mask
}
