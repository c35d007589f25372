package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the review key bindings
type KeyMap struct {
	Next           key.Binding
	Previous       key.Binding
	ToggleLearned  key.Binding
	Favorite       key.Binding
	Mastered       key.Binding
	LearnFavorites key.Binding
	Edit           key.Binding
	Jump           key.Binding
	Open           key.Binding
	Save           key.Binding
	Help           key.Binding
	Quit           key.Binding

	// Prompt keys
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:           key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
		Previous:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "back")),
		ToggleLearned:  key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "learned")),
		Favorite:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		Mastered:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mastered")),
		LearnFavorites: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "learn favorites")),
		Edit:           key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "edit field")),
		Jump:           key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "jump")),
		Open:           key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
		Save:           key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Help:           key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h", "help")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Confirm:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.ToggleLearned, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.ToggleLearned},
		{k.Favorite, k.Mastered, k.LearnFavorites},
		{k.Edit, k.Jump},
		{k.Open, k.Save, k.Help, k.Quit},
	}
}
