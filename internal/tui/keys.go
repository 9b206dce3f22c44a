// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	logout   key.Binding
	refresh  key.Binding
	accounts key.Binding
	rules    key.Binding
	explain  key.Binding
	grades   key.Binding
	newItem  key.Binding
	edit     key.Binding
	delete   key.Binding
	toggle   key.Binding
	global   key.Binding
	copy     key.Binding
	paste    key.Binding
	fill     key.Binding
	kind     key.Binding
	caseFlag key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left", "h")),
	right:    key.NewBinding(key.WithKeys("right", "l")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	logout:   key.NewBinding(key.WithKeys("ctrl+l")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	accounts: key.NewBinding(key.WithKeys("a", "ctrl+a")),
	rules:    key.NewBinding(key.WithKeys("t")),
	explain:  key.NewBinding(key.WithKeys("i")),
	grades:   key.NewBinding(key.WithKeys("g")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("ctrl+d")),
	toggle:   key.NewBinding(key.WithKeys(" ", "space")),
	global:   key.NewBinding(key.WithKeys("g")),
	copy:     key.NewBinding(key.WithKeys("c")),
	paste:    key.NewBinding(key.WithKeys("p")),
	fill:     key.NewBinding(key.WithKeys("f")),
	kind:     key.NewBinding(key.WithKeys("ctrl+t")),
	caseFlag: key.NewBinding(key.WithKeys("ctrl+o")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
