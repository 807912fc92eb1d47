package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	prevPage  key.Binding
	nextPage  key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	newItem   key.Binding
	search    key.Binding
	genre     key.Binding
	sortField key.Binding
	sortOrder key.Binding
	pageSize  key.Binding
	sync      key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	about     key.Binding
	scroll    key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	prevPage:  key.NewBinding(key.WithKeys("left", "h")),
	nextPage:  key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:      key.NewBinding(key.WithKeys("q")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	search:    key.NewBinding(key.WithKeys("/")),
	genre:     key.NewBinding(key.WithKeys("g")),
	sortField: key.NewBinding(key.WithKeys("o")),
	sortOrder: key.NewBinding(key.WithKeys("r")),
	pageSize:  key.NewBinding(key.WithKeys("p")),
	sync:      key.NewBinding(key.WithKeys("s")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	about:     key.NewBinding(key.WithKeys("v")),
	scroll:    key.NewBinding(key.WithKeys("i")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
