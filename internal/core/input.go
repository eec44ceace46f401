package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // A, Left arrow - held direction
	ActionRight         // D, Right arrow - held direction
	ActionLaunch        // Space - start game / launch stuck ball
	ActionPause         // P - pause/unpause game
	ActionReset         // R - reset to a fresh game
	ActionQuit          // Q, Ctrl+C - exit game/session
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
	case ActionLaunch:
		return "Launch"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for one simulation step.
// Directions are held state; launch, pause and reset are one-shot intents.
// The pointer override carries a drag x-coordinate in world units.
type InputFrame struct {
	Actions    map[Action]bool `msgpack:"actions"`
	PointerX   float64         `msgpack:"pointer_x"`
	HasPointer bool            `msgpack:"has_pointer"`
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetPointer activates the pointer override at world x.
func (f *InputFrame) SetPointer(x float64) {
	f.PointerX = x
	f.HasPointer = true
}

// ClearPointer drops the pointer override.
func (f *InputFrame) ClearPointer() {
	f.PointerX = 0
	f.HasPointer = false
}

// Pointer returns the pointer x and whether a drag is active.
func (f InputFrame) Pointer() (float64, bool) {
	return f.PointerX, f.HasPointer
}

// Direction returns -1 for left, 1 for right, and 0 when both or neither
// direction is held.
func (f InputFrame) Direction() float64 {
	left, right := f.Has(ActionLeft), f.Has(ActionRight)
	switch {
	case left && !right:
		return -1
	case right && !left:
		return 1
	default:
		return 0
	}
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.ClearPointer()
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.PointerX = f.PointerX
	clone.HasPointer = f.HasPointer
	return clone
}
