package terminal

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	StartPause key.Binding
	Reset      key.Binding
	WorkDown   key.Binding
	WorkUp     key.Binding
	RestDown   key.Binding
	RestUp     key.Binding
	SeriesDown key.Binding
	SeriesUp   key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		StartPause: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "start/pause")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		WorkDown:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w/W", "work -/+")),
		WorkUp:     key.NewBinding(key.WithKeys("W")),
		RestDown:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e/E", "rest -/+")),
		RestUp:     key.NewBinding(key.WithKeys("E")),
		SeriesDown: key.NewBinding(key.WithKeys("s"), key.WithHelp("s/S", "series -/+")),
		SeriesUp:   key.NewBinding(key.WithKeys("S")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (keys keyMap) help() []key.Binding {
	return []key.Binding{keys.StartPause, keys.Reset, keys.WorkDown, keys.RestDown, keys.SeriesDown, keys.Quit}
}
