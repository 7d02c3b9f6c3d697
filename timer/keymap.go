package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	reset      key.Binding
	sound      key.Binding
	presets    key.Binding
	longer     key.Binding
	shorter    key.Binding
	enter      key.Binding
	esc        key.Binding
	up         key.Binding
	down       key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "start/pause"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	sound: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sound"),
	),
	presets: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6"),
		key.WithHelp("1-6", "preset"),
	),
	longer: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+/-", "duration"),
	),
	shorter: key.NewBinding(
		key.WithKeys("-", "_"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "retry save"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
