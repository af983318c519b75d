package dashboard

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/stark/internal/config"
	"github.com/Paintersrp/stark/internal/notes"
	"github.com/Paintersrp/stark/internal/state"
)

func newTestModel(t *testing.T) (*Model, string) {
	t.Helper()
	home := t.TempDir()
	s, err := state.NewStateAt(home, "")
	if err != nil {
		t.Fatalf("NewStateAt returned error: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	now := time.Date(2024, time.March, 14, 9, 0, 0, 0, time.Local)
	return New(s, WithClock(func() time.Time { return now })), home
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.KeyMsg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func noteIDs(m *Model) []string {
	var ids []string
	for _, n := range m.repo.Notes() {
		ids = append(ids, n.ID)
	}
	return ids
}

func TestNewNoteOpensEditorAndSaves(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runes("n"))

	if m.focus != focusEditor {
		t.Fatalf("expected editor focus, got %v", m.focus)
	}
	list := m.repo.Notes()
	if len(list) != 3 {
		t.Fatalf("expected 3 notes, got %d", len(list))
	}
	if id, _ := m.sel.Selected(); id != list[0].ID {
		t.Fatalf("expected new note %q selected, got %q", list[0].ID, id)
	}

	// typed into the title, not dispatched as a hotkey
	press(m, runes("n"), runes("ote"))
	if got := len(m.repo.Notes()); got != 3 {
		t.Fatalf("expected typing to leave 3 notes, got %d", got)
	}

	press(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if m.focus != focusGrid {
		t.Fatalf("expected grid focus after save, got %v", m.focus)
	}
	saved, _ := m.repo.Lookup(list[0].ID)
	if saved.Title != "note" {
		t.Fatalf("expected title %q, got %q", "note", saved.Title)
	}
}

func TestSavingBlankTitleUsesPlaceholder(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runes("n"), tea.KeyMsg{Type: tea.KeyCtrlS})

	saved := m.repo.Notes()[0]
	if saved.Title != "Untitled Note" {
		t.Fatalf("expected placeholder title, got %q", saved.Title)
	}
}

func TestEscapeDiscardsEdits(t *testing.T) {
	m, _ := newTestModel(t)
	first := m.repo.Notes()[0]

	m.sel.Select(first.ID)
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.focus != focusEditor {
		t.Fatalf("expected enter to open the editor, got %v", m.focus)
	}

	press(m, runes("xyz"), tea.KeyMsg{Type: tea.KeyEsc})

	got, _ := m.repo.Lookup(first.ID)
	if got.Title != first.Title {
		t.Fatalf("expected title unchanged, got %q", got.Title)
	}
	if m.focus != focusGrid {
		t.Fatalf("expected grid focus, got %v", m.focus)
	}
}

func TestCtrlArrowReordersInsteadOfNavigating(t *testing.T) {
	m, _ := newTestModel(t)
	before := noteIDs(m)

	m.sel.Select(before[1])
	press(m, tea.KeyMsg{Type: tea.KeyCtrlUp})

	after := noteIDs(m)
	if after[0] != before[1] || after[1] != before[0] {
		t.Fatalf("expected swapped order, got %v", after)
	}
	if id, _ := m.sel.Selected(); id != before[1] {
		t.Fatalf("expected selection to follow the note, got %q", id)
	}
}

func TestArrowNavigation(t *testing.T) {
	m, _ := newTestModel(t)
	ids := noteIDs(m)

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	if id, _ := m.sel.Selected(); id != ids[0] {
		t.Fatalf("expected first note selected, got %q", id)
	}

	press(m, runes("l"))
	if id, _ := m.sel.Selected(); id != ids[1] {
		t.Fatalf("expected second note selected, got %q", id)
	}

	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	if id, _ := m.sel.Selected(); id != ids[0] {
		t.Fatalf("expected first note selected again, got %q", id)
	}
}

func TestStaleSelectionIsReplacedOnNavigate(t *testing.T) {
	m, _ := newTestModel(t)
	ids := noteIDs(m)

	m.sel.Select("missing")
	press(m, tea.KeyMsg{Type: tea.KeyDown})

	if id, _ := m.sel.Selected(); id != ids[0] {
		t.Fatalf("expected navigation to restart at the first note, got %q", id)
	}
}

func TestDeleteKeyRemovesSelectedNote(t *testing.T) {
	m, _ := newTestModel(t)
	ids := noteIDs(m)

	m.sel.Select(ids[0])
	press(m, tea.KeyMsg{Type: tea.KeyDelete})

	if _, ok := m.repo.Lookup(ids[0]); ok {
		t.Fatal("expected note to be deleted")
	}
	if _, ok := m.sel.Selected(); ok {
		t.Fatal("expected selection to be cleared")
	}
	if !strings.Contains(m.status, "Deleted") {
		t.Fatalf("expected delete status, got %q", m.status)
	}
}

func TestGrabAndDropRelocates(t *testing.T) {
	m, _ := newTestModel(t)
	ids := noteIDs(m)

	m.sel.Select(ids[0])
	press(m, runes("m"))
	if dragged, ok := m.drag.Dragging(); !ok || dragged != ids[0] {
		t.Fatalf("expected %q to be picked up", ids[0])
	}

	m.sel.Select(ids[1])
	press(m, runes("m"))

	got := noteIDs(m)
	if got[0] != ids[1] || got[1] != ids[0] {
		t.Fatalf("expected dragged note after its target, got %v", got)
	}
	if _, ok := m.drag.Dragging(); ok {
		t.Fatal("expected drag to end after drop")
	}
	if id, _ := m.sel.Selected(); id != ids[0] {
		t.Fatalf("expected dropped note selected, got %q", id)
	}
}

func TestEscapeCancelsDrag(t *testing.T) {
	m, _ := newTestModel(t)
	ids := noteIDs(m)

	m.sel.Select(ids[1])
	press(m, runes("m"), tea.KeyMsg{Type: tea.KeyEsc})

	if _, ok := m.drag.Dragging(); ok {
		t.Fatal("expected escape to cancel the drag")
	}
	if got := noteIDs(m); got[0] != ids[0] {
		t.Fatalf("expected order unchanged, got %v", got)
	}
}

func TestSidebarAddFolder(t *testing.T) {
	m, _ := newTestModel(t)
	before := len(m.repo.Folders())

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusSidebar {
		t.Fatalf("expected sidebar focus, got %v", m.focus)
	}

	press(m, runes("a"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.naming.err != notes.ErrEmptyFolderName.Error() {
		t.Fatalf("expected empty name error, got %q", m.naming.err)
	}
	if got := len(m.repo.Folders()); got != before {
		t.Fatalf("expected no folder to be added, got %d", got)
	}

	press(m, runes("Ideas"), tea.KeyMsg{Type: tea.KeyEnter})
	folders := m.repo.Folders()
	if len(folders) != before+1 || folders[len(folders)-1].Name != "Ideas" {
		t.Fatalf("expected Ideas folder appended, got %#v", folders)
	}
	if m.focus != focusSidebar {
		t.Fatalf("expected sidebar focus after adding, got %v", m.focus)
	}
}

func TestSidebarActivateFiltersGrid(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyTab}, runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.repo.ActiveFolder(); got != "personal" {
		t.Fatalf("expected personal folder active, got %q", got)
	}
	if got := len(m.visible()); got != 0 {
		t.Fatalf("expected empty personal folder, got %d notes", got)
	}
	if !strings.Contains(m.View(), "No notes in this view") {
		t.Fatal("expected empty state in the grid")
	}
}

func TestSidebarProtectedFolderCannotBeDeleted(t *testing.T) {
	m, _ := newTestModel(t)
	before := len(m.repo.Folders())

	press(m, tea.KeyMsg{Type: tea.KeyTab}, runes("x"))

	if got := len(m.repo.Folders()); got != before {
		t.Fatalf("expected protected folder to remain, got %d folders", got)
	}
}

func TestMoveDialogChangesFolder(t *testing.T) {
	m, _ := newTestModel(t)
	ids := noteIDs(m)

	m.sel.Select(ids[0])
	press(m, runes("v"))
	if m.focus != focusMove {
		t.Fatalf("expected move dialog, got %v", m.focus)
	}
	for _, f := range m.move.folders {
		if f.ID == notes.FolderCalendar {
			t.Fatal("calendar should not be a move target")
		}
	}

	// All Notes, Personal, Work
	press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	got, _ := m.repo.Lookup(ids[0])
	if got.FolderID != "work" {
		t.Fatalf("expected note in work, got %q", got.FolderID)
	}
	if m.focus != focusGrid {
		t.Fatalf("expected grid focus, got %v", m.focus)
	}
}

func TestThemeTogglePersists(t *testing.T) {
	m, home := newTestModel(t)

	press(m, runes("d"))

	if m.theme != "light" {
		t.Fatalf("expected light theme, got %q", m.theme)
	}
	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := cfg.MustWorkspace().Theme; got != "light" {
		t.Fatalf("expected persisted light theme, got %q", got)
	}
}

func TestHelpDialog(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runes("?"))
	if m.focus != focusHelp {
		t.Fatalf("expected help focus, got %v", m.focus)
	}
	view := m.View()
	for _, want := range []string{"Keyboard Shortcuts", "new note", "quit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected help view to contain %q", want)
		}
	}

	// hotkeys are inert while the dialog is open
	press(m, runes("n"))
	if got := len(m.repo.Notes()); got != 2 {
		t.Fatalf("expected no new note, got %d", got)
	}

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.focus != focusGrid {
		t.Fatalf("expected grid focus, got %v", m.focus)
	}
}

func TestGotoDate(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runes("g"), runes("not a date"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.goTo.err == "" || m.focus != focusGoto {
		t.Fatal("expected an inline error for an unparseable date")
	}

	m.goTo.input.SetValue("2023-12-25")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.focus != focusGrid {
		t.Fatalf("expected grid focus, got %v", m.focus)
	}
	if y, mo, d := m.date.Date(); y != 2023 || mo != time.December || d != 25 {
		t.Fatalf("unexpected date %v", m.date)
	}
}

func TestDayShortcuts(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runes("]"), runes("]"), runes("["))
	if d := m.date.Day(); d != 15 {
		t.Fatalf("expected the 15th, got %d", d)
	}

	press(m, runes("t"))
	if d := m.date.Day(); d != 14 {
		t.Fatalf("expected today, got %d", d)
	}
}

func TestLoginDialog(t *testing.T) {
	m, home := newTestModel(t)

	press(m, runes("L"))
	if m.focus != focusLogin {
		t.Fatalf("expected login dialog, got %v", m.focus)
	}

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.login.err != "Please fill in all fields" {
		t.Fatalf("expected missing fields error, got %q", m.login.err)
	}

	press(m,
		runes("tony"),
		tea.KeyMsg{Type: tea.KeyTab},
		runes("jarvis"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	if user, ok := m.session.User(); !ok || user != "tony" {
		t.Fatalf("expected tony logged in, got %q", user)
	}
	if m.focus != focusGrid {
		t.Fatalf("expected grid focus, got %v", m.focus)
	}
	if !strings.Contains(m.View(), "Logout (tony)") {
		t.Fatal("expected header to show the logout label")
	}

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := cfg.MustWorkspace().Username; got != "tony" {
		t.Fatalf("expected persisted username, got %q", got)
	}

	press(m, runes("L"))
	if _, ok := m.session.User(); ok {
		t.Fatal("expected L to log out")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m, _ := newTestModel(t)

		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("expected a command for %q", msg.String())
		}
		if !containsQuit(cmd) {
			t.Fatalf("expected %q to quit", msg.String())
		}
	}
}

// containsQuit runs cmd and any batched commands looking for tea.QuitMsg.
func containsQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	switch msg := cmd().(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if containsQuit(c) {
				return true
			}
		}
	}
	return false
}

func TestViewRendersNotes(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	for _, want := range []string{"Keyboard Shortcuts", "All Notes", "Folders"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected dashboard to contain %q", want)
		}
	}
}

func TestMonthGrid(t *testing.T) {
	t.Parallel()

	// March 2024 starts on a Friday and has 31 days.
	weeks := monthGrid(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
	if len(weeks) != 6 {
		t.Fatalf("expected 6 weeks, got %d", len(weeks))
	}
	if weeks[0][5] != 1 || weeks[0][4] != 0 {
		t.Fatalf("unexpected first week %v", weeks[0])
	}
	if weeks[5][0] != 31 {
		t.Fatalf("unexpected last week %v", weeks[5])
	}
}
