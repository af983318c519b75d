package dashboard

import "github.com/charmbracelet/bubbles/key"

type sidebarKeyMap struct {
	up       key.Binding
	down     key.Binding
	activate key.Binding
	add      key.Binding
	rename   key.Binding
	remove   key.Binding
	collapse key.Binding
	back     key.Binding
}

func newSidebarKeyMap() sidebarKeyMap {
	return sidebarKeyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open folder"),
		),
		add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add folder"),
		),
		rename: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename"),
		),
		remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete"),
		),
		collapse: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "collapse"),
		),
		back: key.NewBinding(
			key.WithKeys("tab", "esc"),
			key.WithHelp("tab", "back to notes"),
		),
	}
}

func (k sidebarKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.activate, k.add, k.rename, k.remove, k.collapse, k.back}
}

func (k sidebarKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.up, k.down, k.activate, k.back}, {k.add, k.rename, k.remove, k.collapse}}
}

type editorKeyMap struct {
	save      key.Binding
	cancel    key.Binding
	nextField key.Binding
}

func newEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		nextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch field"),
		),
	}
}

func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.save, k.cancel, k.nextField}
}

func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type dialogKeyMap struct {
	up       key.Binding
	down     key.Binding
	submit   key.Binding
	cancel   key.Binding
	next     key.Binding
	register key.Binding
}

func newDialogKeyMap() dialogKeyMap {
	return dialogKeyMap{
		up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "submit"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		next: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "next field"),
		),
		register: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "login / register"),
		),
	}
}
