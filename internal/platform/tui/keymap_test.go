package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snek/internal/core"
)

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"w", runeKey("w"), core.ActionUp},
		{"a", runeKey("a"), core.ActionLeft},
		{"s", runeKey("s"), core.ActionDown},
		{"d", runeKey("d"), core.ActionRight},
		{"vim k", runeKey("k"), core.ActionUp},
		{"vim h", runeKey("h"), core.ActionLeft},
		{"pause", runeKey("p"), core.ActionPause},
		{"q", runeKey("q"), core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHelpCoversBindings(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) != 6 {
		t.Errorf("ShortHelp has %d bindings, want 6", len(km.ShortHelp()))
	}
	n := 0
	for _, group := range km.FullHelp() {
		n += len(group)
	}
	if n != 6 {
		t.Errorf("FullHelp has %d bindings, want 6", n)
	}
}
