package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit     key.Binding
	Login    key.Binding
	Register key.Binding
}

var Keys = KeyMap{
	Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Login:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "login")),
	Register: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "register")),
}
