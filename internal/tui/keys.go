package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the chamber key bindings. It implements help.KeyMap.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Generate key.Binding
	VoteFor  key.Binding
	Against  key.Binding
	Abstain  key.Binding
	New      key.Binding
	Roster   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open debate"),
		),
		Generate: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "next speaker"),
		),
		VoteFor: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "vote for"),
		),
		Against: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "vote against"),
		),
		Abstain: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "abstain"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new proposal"),
		),
		Roster: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "roster"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Generate, k.VoteFor, k.Against, k.Abstain, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Generate, k.VoteFor, k.Against, k.Abstain},
		{k.New, k.Roster, k.Help, k.Quit},
	}
}
