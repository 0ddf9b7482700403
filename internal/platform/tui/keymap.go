package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/1GJones/asteroid-game/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	RotateLeft  key.Binding
	RotateRight key.Binding
	Thrust      key.Binding
	Reverse     key.Binding
	Fire        key.Binding
	Pause       key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
// Quit comes first so narrow terminals still show it.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Thrust, k.RotateLeft, k.RotateRight, k.Fire, k.Pause}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Thrust, k.Reverse, k.RotateLeft, k.RotateRight},
		{k.Fire, k.Pause, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		RotateLeft: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "turn left"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "turn right"),
		),
		Thrust: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "thrust"),
		),
		Reverse: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "reverse"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.RotateLeft):
		return core.ActionRotateLeft, false
	case key.Matches(msg, km.keys.RotateRight):
		return core.ActionRotateRight, false
	case key.Matches(msg, km.keys.Thrust):
		return core.ActionThrust, false
	case key.Matches(msg, km.keys.Reverse):
		return core.ActionReverse, false
	case key.Matches(msg, km.keys.Fire):
		return core.ActionFire, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	}
	return core.ActionNone, false
}
