package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultKeyMap(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
	}{
		// Navigation
		{"Up", keys.Up},
		{"Down", keys.Down},
		{"Left", keys.Left},
		{"Right", keys.Right},

		// Tab navigation
		{"NextTab", keys.NextTab},
		{"PrevTab", keys.PrevTab},
		{"Tab1", keys.Tab1},
		{"Tab2", keys.Tab2},

		// Actions
		{"Select", keys.Select},
		{"Back", keys.Back},
		{"Quit", keys.Quit},
		{"Help", keys.Help},

		// Timer
		{"Toggle", keys.Toggle},
		{"Reset", keys.Reset},

		// Config
		{"Theme", keys.Theme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.binding.Keys()) == 0 {
				t.Errorf("expected keys for binding %s", tt.name)
			}
			help := tt.binding.Help()
			if help.Key == "" {
				t.Errorf("expected help key for binding %s", tt.name)
			}
			if help.Desc == "" {
				t.Errorf("expected help description for binding %s", tt.name)
			}
		})
	}
}

func TestKeyBindingsMatch(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		msg     tea.KeyMsg
	}{
		{"Toggle space", keys.Toggle, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}},
		{"Toggle p", keys.Toggle, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}},
		{"Reset r", keys.Reset, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}},
		{"Left arrow", keys.Left, tea.KeyMsg{Type: tea.KeyLeft}},
		{"Left h", keys.Left, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}}},
		{"Right arrow", keys.Right, tea.KeyMsg{Type: tea.KeyRight}},
		{"Right l", keys.Right, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}},
		{"Select enter", keys.Select, tea.KeyMsg{Type: tea.KeyEnter}},
		{"Back esc", keys.Back, tea.KeyMsg{Type: tea.KeyEsc}},
		{"Quit q", keys.Quit, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}},
		{"Quit ctrl+c", keys.Quit, tea.KeyMsg{Type: tea.KeyCtrlC}},
		{"Help ?", keys.Help, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}},
		{"Tab1 1", keys.Tab1, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}}},
		{"Tab2 2", keys.Tab2, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}}},
		{"NextTab tab", keys.NextTab, tea.KeyMsg{Type: tea.KeyTab}},
		{"PrevTab shift+tab", keys.PrevTab, tea.KeyMsg{Type: tea.KeyShiftTab}},
		{"Theme t", keys.Theme, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("expected %q to match binding %s (keys %v)", tt.msg.String(), tt.name, tt.binding.Keys())
			}
		})
	}
}

func TestTimerKeysDoNotOverlap(t *testing.T) {
	keys := DefaultKeyMap()

	seen := make(map[string]string)
	bindings := map[string]key.Binding{
		"Toggle": keys.Toggle,
		"Reset":  keys.Reset,
		"Left":   keys.Left,
		"Right":  keys.Right,
		"Select": keys.Select,
		"Quit":   keys.Quit,
		"Help":   keys.Help,
		"Tab1":   keys.Tab1,
		"Tab2":   keys.Tab2,
	}
	for name, b := range bindings {
		for _, k := range b.Keys() {
			if other, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %s and %s", k, other, name)
			}
			seen[k] = name
		}
	}
}

func TestHelpBindings(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("expected short help bindings")
	}
	if len(keys.ConfigHelp()) == 0 {
		t.Error("expected config help bindings")
	}

	groups := keys.FullHelp()
	if len(groups) == 0 {
		t.Fatal("expected full help groups")
	}

	found := false
	for _, group := range groups {
		for _, b := range group {
			if b.Help().Desc == keys.Toggle.Help().Desc {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected toggle binding in full help")
	}
}
