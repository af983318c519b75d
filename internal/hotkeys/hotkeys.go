// Package hotkeys routes key presses to registered commands unless the
// focused surface is taking text input.
package hotkeys

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Target is the surface that had focus when a key was pressed.
type Target int

const (
	Grid Target = iota
	Sidebar
	Input
	TextArea
	Select
	Dialog
)

// TextEntry reports whether keys on this surface are typed text.
func (t Target) TextEntry() bool {
	return t == Input || t == TextArea || t == Select
}

func (t Target) String() string {
	switch t {
	case Grid:
		return "grid"
	case Sidebar:
		return "sidebar"
	case Input:
		return "input"
	case TextArea:
		return "textarea"
	case Select:
		return "select"
	case Dialog:
		return "dialog"
	default:
		return "unknown"
	}
}

// Modifier is a binding's requirement on one modifier key.
type Modifier int

const (
	Any Modifier = iota
	Held
	NotHeld
)

func (m Modifier) allows(down bool) bool {
	switch m {
	case Held:
		return down
	case NotHeld:
		return !down
	default:
		return true
	}
}

type Event struct {
	Key    string
	Ctrl   bool
	Alt    bool
	Shift  bool
	Target Target
}

// Binding fires Run for any of Keys when every modifier requirement holds.
type Binding struct {
	Keys  []string
	Ctrl  Modifier
	Alt   Modifier
	Shift Modifier
	Help  key.Binding
	Run   func(Event)
}

func (b Binding) matches(ev Event) bool {
	if !b.Ctrl.allows(ev.Ctrl) || !b.Alt.allows(ev.Alt) || !b.Shift.allows(ev.Shift) {
		return false
	}
	for _, k := range b.Keys {
		if k == ev.Key {
			return true
		}
	}
	return false
}

type Dispatcher struct {
	bindings []Binding
}

func NewDispatcher(bindings ...Binding) *Dispatcher {
	d := &Dispatcher{}
	d.Register(bindings...)
	return d
}

func (d *Dispatcher) Register(bindings ...Binding) {
	d.bindings = append(d.bindings, bindings...)
}

// Dispatch runs every matching binding in registration order and returns how
// many fired. Nothing fires while a text-entry surface has focus.
func (d *Dispatcher) Dispatch(ev Event) int {
	if ev.Target.TextEntry() {
		return 0
	}

	fired := 0
	for _, b := range d.bindings {
		if !b.matches(ev) {
			continue
		}
		if b.Run != nil {
			b.Run(ev)
		}
		fired++
	}
	return fired
}

// Help lists the help entries of bindings that carry one, without
// duplicates.
func (d *Dispatcher) Help() []key.Binding {
	var out []key.Binding
	seen := make(map[string]bool)
	for _, b := range d.bindings {
		h := b.Help.Help()
		if h.Key == "" || seen[h.Key+h.Desc] {
			continue
		}
		seen[h.Key+h.Desc] = true
		out = append(out, b.Help)
	}
	return out
}

// FromKeyMsg splits a bubbletea key into its base key and modifiers.
func FromKeyMsg(msg tea.KeyMsg, target Target) Event {
	ev := Event{Target: target, Alt: msg.Alt}
	s := msg.String()

	if msg.Alt {
		s = strings.TrimPrefix(s, "alt+")
	}

	for {
		if rest, ok := cutModifier(s, "ctrl+"); ok {
			ev.Ctrl = true
			s = rest
			continue
		}
		if rest, ok := cutModifier(s, "shift+"); ok {
			ev.Shift = true
			s = rest
			continue
		}
		break
	}

	if r, size := utf8.DecodeRuneInString(s); size == len(s) && unicode.IsUpper(r) {
		ev.Shift = true
	}

	ev.Key = s
	return ev
}

func cutModifier(s, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok || rest == "" {
		return s, false
	}
	return rest, true
}
