package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// DefaultHoldFrames is how many frames a movement key counts as held after
// its last key event. Terminals report no key releases, only repeats, so
// a held arrow key is a stream of presses roughly 30 times a second.
const DefaultHoldFrames = 8

// KeyMapper translates Bubble Tea key and mouse messages to input frames.
// Movement keys are level-triggered through a hold window; fire, click,
// and quit are edge-triggered and consumed by the next frame.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	holdFrames int
	left       int // frames of hold remaining
	right      int
	pending    core.InputFrame
}

// NewKeyMapper creates a key mapper with the given hold window.
// A non-positive window uses DefaultHoldFrames.
func NewKeyMapper(holdFrames int) *KeyMapper {
	if holdFrames <= 0 {
		holdFrames = DefaultHoldFrames
	}
	return &KeyMapper{holdFrames: holdFrames}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case " ", "space", "f":
		return core.ActionFire, false
	case "enter":
		return core.ActionClick, false
	}
	return core.ActionNone, false
}

// HandleKey records a key event for the next frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) HandleKey(msg tea.KeyMsg) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionLeft:
		km.left = km.holdFrames
		km.right = 0
	case core.ActionRight:
		km.right = km.holdFrames
		km.left = 0
	case core.ActionNone:
	default:
		km.pending.Set(action)
	}
	return isQuit
}

// HandleMouse records a left-button press as a click.
func (km *KeyMapper) HandleMouse(msg tea.MouseMsg) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		km.pending.Set(core.ActionClick)
	}
}

// Frame returns the input for the next simulation step and ages the hold
// window by one frame.
func (km *KeyMapper) Frame() core.InputFrame {
	frame := km.pending
	km.pending.Clear()

	if km.left > 0 {
		frame.Set(core.ActionLeft)
		km.left--
	}
	if km.right > 0 {
		frame.Set(core.ActionRight)
		km.right--
	}
	return frame
}

// Release drops every held key and pending action.
func (km *KeyMapper) Release() {
	km.left = 0
	km.right = 0
	km.pending.Clear()
}
