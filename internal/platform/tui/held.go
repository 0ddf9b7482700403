package tui

import (
	"time"

	"github.com/1GJones/asteroid-game/internal/core"
)

// DefaultHoldWindow is how long an action counts as held after its last key event.
const DefaultHoldWindow = 180 * time.Millisecond

// HeldKeys approximates held keys from a terminal's press and auto-repeat events.
// Terminals report no key releases, so an action stays held until no event
// for it has arrived within the hold window.
type HeldKeys struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
}

// NewHeldKeys creates a tracker. A non-positive window selects DefaultHoldWindow.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{
		window:   window,
		lastSeen: make(map[core.Action]time.Time),
	}
}

// Press records a key event for an action.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	h.lastSeen[a] = now
}

// Frame returns the actions held at now and forgets expired ones.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, t := range h.lastSeen {
		if now.Sub(t) > h.window {
			delete(h.lastSeen, a)
			continue
		}
		frame.Set(a)
	}
	return frame
}

// Release forgets every held action.
func (h *HeldKeys) Release() {
	for a := range h.lastSeen {
		delete(h.lastSeen, a)
	}
}
