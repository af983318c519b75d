package hotkeys

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/Paintersrp/stark/internal/notes"
	"github.com/Paintersrp/stark/internal/selection"
)

// Commands are the dashboard actions reachable from the keyboard. A nil
// field leaves its keys unbound.
type Commands struct {
	NewNote        func()
	ShowHelp       func()
	ToggleTheme    func()
	DeleteSelected func()
	Reorder        func(notes.Direction)
	Navigate       func(selection.Direction)

	Edit         func()
	Grab         func()
	DropAtEnd    func()
	Cancel       func()
	MoveToFolder func()
	Copy         func()
	PrevDay      func()
	NextDay      func()
	Today        func()
	GoToDate     func()
	FocusSidebar func()
	ToggleLogin  func()
	Quit         func()
}

func help(keys, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, desc))
}

func run(fn func()) func(Event) {
	return func(Event) { fn() }
}

// Bindings returns the global bindings for c in dispatch order.
func (c Commands) Bindings() []Binding {
	var out []Binding
	add := func(b Binding, enabled bool) {
		if enabled {
			out = append(out, b)
		}
	}

	add(Binding{Keys: []string{"n"}, Ctrl: NotHeld, Alt: NotHeld,
		Help: help("n", "new note"), Run: run(orNop(c.NewNote))}, c.NewNote != nil)
	add(Binding{Keys: []string{"?"},
		Help: help("?", "keyboard shortcuts"), Run: run(orNop(c.ShowHelp))}, c.ShowHelp != nil)
	add(Binding{Keys: []string{"d"}, Ctrl: NotHeld, Alt: NotHeld,
		Help: help("d", "toggle theme"), Run: run(orNop(c.ToggleTheme))}, c.ToggleTheme != nil)
	add(Binding{Keys: []string{"delete"},
		Help: help("delete", "delete selected note"), Run: run(orNop(c.DeleteSelected))}, c.DeleteSelected != nil)

	if c.Reorder != nil {
		out = append(out,
			Binding{Keys: []string{"up"}, Ctrl: Held,
				Help: help("ctrl+up", "move note up"),
				Run:  func(Event) { c.Reorder(notes.Up) }},
			Binding{Keys: []string{"down"}, Ctrl: Held,
				Help: help("ctrl+down", "move note down"),
				Run:  func(Event) { c.Reorder(notes.Down) }},
		)
	}

	if c.Navigate != nil {
		// ctrl only changes the meaning of up and down.
		nav := func(keys []string, label string, ctrl Modifier, dir selection.Direction) Binding {
			return Binding{Keys: keys, Ctrl: ctrl,
				Help: help(label, "select "+dir.String()),
				Run:  func(Event) { c.Navigate(dir) }}
		}
		out = append(out,
			nav([]string{"up", "k"}, "↑", NotHeld, selection.Up),
			nav([]string{"down", "j"}, "↓", NotHeld, selection.Down),
			nav([]string{"left", "h"}, "←", Any, selection.Left),
			nav([]string{"right", "l"}, "→", Any, selection.Right),
		)
	}

	add(Binding{Keys: []string{"enter"},
		Help: help("enter", "edit selected note"), Run: run(orNop(c.Edit))}, c.Edit != nil)
	add(Binding{Keys: []string{"m"}, Ctrl: NotHeld,
		Help: help("m", "grab / drop note"), Run: run(orNop(c.Grab))}, c.Grab != nil)
	add(Binding{Keys: []string{"M"},
		Help: help("M", "drop at end"), Run: run(orNop(c.DropAtEnd))}, c.DropAtEnd != nil)
	add(Binding{Keys: []string{"esc"},
		Help: help("esc", "cancel"), Run: run(orNop(c.Cancel))}, c.Cancel != nil)
	add(Binding{Keys: []string{"v"}, Ctrl: NotHeld,
		Help: help("v", "move to folder"), Run: run(orNop(c.MoveToFolder))}, c.MoveToFolder != nil)
	add(Binding{Keys: []string{"y"}, Ctrl: NotHeld,
		Help: help("y", "copy content"), Run: run(orNop(c.Copy))}, c.Copy != nil)
	add(Binding{Keys: []string{"["},
		Help: help("[", "previous day"), Run: run(orNop(c.PrevDay))}, c.PrevDay != nil)
	add(Binding{Keys: []string{"]"},
		Help: help("]", "next day"), Run: run(orNop(c.NextDay))}, c.NextDay != nil)
	add(Binding{Keys: []string{"t"}, Ctrl: NotHeld,
		Help: help("t", "today"), Run: run(orNop(c.Today))}, c.Today != nil)
	add(Binding{Keys: []string{"g"}, Ctrl: NotHeld,
		Help: help("g", "go to date"), Run: run(orNop(c.GoToDate))}, c.GoToDate != nil)
	add(Binding{Keys: []string{"tab"},
		Help: help("tab", "focus folders"), Run: run(orNop(c.FocusSidebar))}, c.FocusSidebar != nil)
	add(Binding{Keys: []string{"L"},
		Help: help("L", "login / logout"), Run: run(orNop(c.ToggleLogin))}, c.ToggleLogin != nil)

	if c.Quit != nil {
		out = append(out,
			Binding{Keys: []string{"q"}, Ctrl: NotHeld, Help: help("q", "quit"), Run: run(c.Quit)},
			Binding{Keys: []string{"c"}, Ctrl: Held, Run: run(c.Quit)},
		)
	}

	return out
}

func orNop(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return fn
}
