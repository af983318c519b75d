package hotkeys

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/stark/internal/notes"
	"github.com/Paintersrp/stark/internal/selection"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFromKeyMsg(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Event
	}{
		{"rune", runes("n"), Event{Key: "n"}},
		{"upper rune", runes("M"), Event{Key: "M", Shift: true}},
		{"ctrl arrow", tea.KeyMsg{Type: tea.KeyCtrlUp}, Event{Key: "up", Ctrl: true}},
		{"ctrl shift arrow", tea.KeyMsg{Type: tea.KeyCtrlShiftDown}, Event{Key: "down", Ctrl: true, Shift: true}},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, Event{Key: "tab", Shift: true}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, Event{Key: "x", Alt: true}},
		{"ctrl c", tea.KeyMsg{Type: tea.KeyCtrlC}, Event{Key: "c", Ctrl: true}},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, Event{Key: "delete"}},
		{"plain arrow", tea.KeyMsg{Type: tea.KeyLeft}, Event{Key: "left"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromKeyMsg(tt.msg, Grid)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %#v, got %#v", tt.want, got)
			}
		})
	}
}

func TestDispatchSuppressedOnTextEntry(t *testing.T) {
	fired := 0
	d := NewDispatcher(Binding{Keys: []string{"n"}, Run: func(Event) { fired++ }})

	for _, target := range []Target{Input, TextArea, Select} {
		if n := d.Dispatch(Event{Key: "n", Target: target}); n != 0 {
			t.Fatalf("expected no dispatch on %s, got %d", target, n)
		}
	}
	if fired != 0 {
		t.Fatalf("expected no callbacks, got %d", fired)
	}

	if n := d.Dispatch(Event{Key: "n", Target: Grid}); n != 1 || fired != 1 {
		t.Fatalf("expected one callback on the grid, got %d", n)
	}
}

func TestDispatchFiresEveryMatch(t *testing.T) {
	var order []string
	d := NewDispatcher(
		Binding{Keys: []string{"x", "y"}, Run: func(Event) { order = append(order, "first") }},
		Binding{Keys: []string{"y"}, Run: func(Event) { order = append(order, "second") }},
		Binding{Keys: []string{"z"}, Run: func(Event) { order = append(order, "third") }},
	)

	if n := d.Dispatch(Event{Key: "y"}); n != 2 {
		t.Fatalf("expected two callbacks, got %d", n)
	}
	if want := []string{"first", "second"}; !reflect.DeepEqual(order, want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
}

func TestModifierRequirements(t *testing.T) {
	tests := []struct {
		name string
		mod  Modifier
		down bool
		want int
	}{
		{"any up", Any, false, 1},
		{"any down", Any, true, 1},
		{"held up", Held, false, 0},
		{"held down", Held, true, 1},
		{"not held up", NotHeld, false, 1},
		{"not held down", NotHeld, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDispatcher(Binding{Keys: []string{"k"}, Alt: tt.mod})
			if got := d.Dispatch(Event{Key: "k", Alt: tt.down}); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestCtrlArrowReordersInsteadOfNavigating(t *testing.T) {
	var reordered []notes.Direction
	var navigated []selection.Direction

	d := NewDispatcher(Commands{
		Reorder:  func(dir notes.Direction) { reordered = append(reordered, dir) },
		Navigate: func(dir selection.Direction) { navigated = append(navigated, dir) },
	}.Bindings()...)

	d.Dispatch(FromKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlUp}, Grid))
	d.Dispatch(FromKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlDown}, Grid))
	if !reflect.DeepEqual(reordered, []notes.Direction{notes.Up, notes.Down}) || len(navigated) != 0 {
		t.Fatalf("expected only reorders, got reorder=%v navigate=%v", reordered, navigated)
	}

	d.Dispatch(FromKeyMsg(tea.KeyMsg{Type: tea.KeyUp}, Grid))
	d.Dispatch(FromKeyMsg(tea.KeyMsg{Type: tea.KeyRight}, Grid))
	if want := []selection.Direction{selection.Up, selection.Right}; !reflect.DeepEqual(navigated, want) {
		t.Fatalf("expected %v, got %v", want, navigated)
	}
	if len(reordered) != 2 {
		t.Fatal("plain arrows must not reorder")
	}
}

func TestCommandsSkipNilCallbacks(t *testing.T) {
	created := 0
	d := NewDispatcher(Commands{NewNote: func() { created++ }}.Bindings()...)

	if n := d.Dispatch(Event{Key: "d"}); n != 0 {
		t.Fatalf("expected unbound theme key, got %d", n)
	}
	if n := d.Dispatch(Event{Key: "n", Ctrl: true}); n != 0 {
		t.Fatalf("expected ctrl+n to be ignored, got %d", n)
	}
	d.Dispatch(Event{Key: "n"})
	if created != 1 {
		t.Fatalf("expected one note, got %d", created)
	}
}

func TestQuitKeys(t *testing.T) {
	quits := 0
	d := NewDispatcher(Commands{Quit: func() { quits++ }}.Bindings()...)

	d.Dispatch(FromKeyMsg(runes("q"), Grid))
	d.Dispatch(FromKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlC}, Grid))
	d.Dispatch(FromKeyMsg(runes("c"), Grid))

	if quits != 2 {
		t.Fatalf("expected q and ctrl+c to quit, got %d", quits)
	}
}

func TestHelpListsDocumentedBindings(t *testing.T) {
	d := NewDispatcher(Commands{
		NewNote:  func() {},
		ShowHelp: func() {},
		Quit:     func() {},
	}.Bindings()...)

	var keys []string
	for _, b := range d.Help() {
		keys = append(keys, b.Help().Key)
	}

	if want := []string{"n", "?", "q"}; !reflect.DeepEqual(keys, want) {
		t.Fatalf("expected %v, got %v", want, keys)
	}
}

func TestCtrlSidewaysArrowsStillNavigate(t *testing.T) {
	var navigated []selection.Direction
	d := NewDispatcher(Commands{
		Reorder:  func(notes.Direction) {},
		Navigate: func(dir selection.Direction) { navigated = append(navigated, dir) },
	}.Bindings()...)

	d.Dispatch(FromKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlLeft}, Grid))
	d.Dispatch(FromKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlRight}, Grid))
	d.Dispatch(FromKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlUp}, Grid))

	if want := []selection.Direction{selection.Left, selection.Right}; !reflect.DeepEqual(navigated, want) {
		t.Fatalf("expected %v, got %v", want, navigated)
	}
}

func TestOnlyDeleteKeyRemovesNote(t *testing.T) {
	deleted := 0
	d := NewDispatcher(Commands{DeleteSelected: func() { deleted++ }}.Bindings()...)

	d.Dispatch(FromKeyMsg(tea.KeyMsg{Type: tea.KeyBackspace}, Grid))
	if deleted != 0 {
		t.Fatal("expected backspace to leave the note alone")
	}

	d.Dispatch(FromKeyMsg(tea.KeyMsg{Type: tea.KeyDelete}, Grid))
	if deleted != 1 {
		t.Fatalf("expected delete to remove the note, got %d", deleted)
	}
}
