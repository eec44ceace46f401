package tui

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// heldInput turns terminal events into one input frame per tick.
// Terminals report key presses and auto-repeats but never releases, so a
// direction counts as held until the hold window passes without a repeat.
// Launch, pause and reset are one-shot and fire on the next frame only.
type heldInput struct {
	hold      time.Duration
	lastPress map[core.Action]time.Time
	pending   map[core.Action]bool

	pointerX      float64
	pointerActive bool
}

func newHeldInput(hold time.Duration) *heldInput {
	return &heldInput{
		hold:      hold,
		lastPress: make(map[core.Action]time.Time),
		pending:   make(map[core.Action]bool),
	}
}

// Press records a key action at the given time.
func (h *heldInput) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		h.lastPress[core.ActionLeft] = now
		delete(h.lastPress, core.ActionRight)
	case core.ActionRight:
		h.lastPress[core.ActionRight] = now
		delete(h.lastPress, core.ActionLeft)
	case core.ActionNone, core.ActionQuit:
	default:
		h.pending[a] = true
	}
}

// Pointer activates the drag override at world x.
func (h *heldInput) Pointer(x float64) {
	h.pointerX = x
	h.pointerActive = true
}

// ReleasePointer ends a drag.
func (h *heldInput) ReleasePointer() {
	h.pointerActive = false
}

// Frame fills frame with the input for the tick at now and consumes the
// one-shot intents.
func (h *heldInput) Frame(now time.Time, frame *core.InputFrame) {
	frame.Clear()

	for a, at := range h.lastPress {
		if now.Sub(at) > h.hold {
			delete(h.lastPress, a)
			continue
		}
		frame.Set(a)
	}

	for a := range h.pending {
		frame.Set(a)
		delete(h.pending, a)
	}

	if h.pointerActive {
		frame.SetPointer(h.pointerX)
	}
}
