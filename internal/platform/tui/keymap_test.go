package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/1GJones/asteroid-game/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a", runeKey('a'), core.ActionRotateLeft, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionRotateLeft, false},
		{"d", runeKey('d'), core.ActionRotateRight, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRotateRight, false},
		{"w", runeKey('w'), core.ActionThrust, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionThrust, false},
		{"s", runeKey('s'), core.ActionReverse, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionReverse, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action {
				t.Errorf("MapKey() action = %v, expected %v", action, tc.action)
			}
			if quit != tc.quit {
				t.Errorf("MapKey() quit = %v, expected %v", quit, tc.quit)
			}
		})
	}
}

func TestHelpCoversBindings(t *testing.T) {
	keys := DefaultKeyMap()
	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 7 {
		t.Errorf("FullHelp() lists %d bindings, expected 7", n)
	}
}
