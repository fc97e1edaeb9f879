package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	lock      key.Binding
	copy      key.Binding
	addURI    key.Binding
	addManual key.Binding
	edit      key.Binding
	delete    key.Binding
	importF   key.Binding
	exportQR  key.Binding
	search    key.Binding
	password  key.Binding
	buildInfo key.Binding
	about     key.Binding
	reset     key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	lock:      key.NewBinding(key.WithKeys("l")),
	copy:      key.NewBinding(key.WithKeys("c")),
	addURI:    key.NewBinding(key.WithKeys("a")),
	addManual: key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	importF:   key.NewBinding(key.WithKeys("i")),
	exportQR:  key.NewBinding(key.WithKeys("x")),
	search:    key.NewBinding(key.WithKeys("/")),
	password:  key.NewBinding(key.WithKeys("p")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	about:     key.NewBinding(key.WithKeys("f1")),
	reset:     key.NewBinding(key.WithKeys("ctrl+r")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
