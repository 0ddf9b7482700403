package tui

import (
	"testing"
	"time"

	"github.com/1GJones/asteroid-game/internal/core"
)

func TestHeldKeysWindow(t *testing.T) {
	h := NewHeldKeys(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionThrust, t0)
	h.Press(core.ActionFire, t0.Add(50*time.Millisecond))

	f := h.Frame(t0.Add(80 * time.Millisecond))
	if !f.Has(core.ActionThrust) || !f.Has(core.ActionFire) {
		t.Errorf("expected thrust and fire held, got %v", f.Actions)
	}

	f = h.Frame(t0.Add(120 * time.Millisecond))
	if f.Has(core.ActionThrust) {
		t.Error("thrust should expire after the window")
	}
	if !f.Has(core.ActionFire) {
		t.Error("fire should still be held")
	}

	// A repeat event extends the hold.
	h.Press(core.ActionFire, t0.Add(140*time.Millisecond))
	if !h.Frame(t0.Add(230 * time.Millisecond)).Has(core.ActionFire) {
		t.Error("repeat should keep fire held")
	}
}

func TestHeldKeysIgnoresNone(t *testing.T) {
	h := NewHeldKeys(0)
	now := time.Unix(0, 0)
	h.Press(core.ActionNone, now)
	if len(h.Frame(now).Actions) != 0 {
		t.Error("ActionNone should not be tracked")
	}
}

func TestHeldKeysRelease(t *testing.T) {
	h := NewHeldKeys(time.Second)
	now := time.Unix(0, 0)
	h.Press(core.ActionRotateLeft, now)
	h.Release()
	if h.Frame(now).Has(core.ActionRotateLeft) {
		t.Error("Release should clear held actions")
	}
}
