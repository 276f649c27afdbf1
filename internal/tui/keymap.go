package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the viewer's bindings. It implements help.KeyMap.
type keyMap struct {
	Pause   key.Binding
	Step    key.Binding
	Undo    key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Step: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→", "step/redo"),
		),
		Undo: key.NewBinding(
			key.WithKeys("left", "h", "u"),
			key.WithHelp("←", "undo"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new game"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Step, k.Undo, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Step, k.Undo},
		{k.Faster, k.Slower, k.Restart},
		{k.Help, k.Quit},
	}
}
