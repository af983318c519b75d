package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/stark/internal/notes"
)

// editorSession edits the title and content of one note in place of the
// grid.
type editorSession struct {
	original  notes.Note
	title     textinput.Model
	content   textarea.Model
	onContent bool
}

func newEditorSession(n notes.Note, width, height int) *editorSession {
	title := textinput.New()
	title.Placeholder = "Note title"
	title.CharLimit = 200
	title.SetValue(n.Title)

	content := textarea.New()
	content.Placeholder = "Start typing..."
	content.CharLimit = 0
	content.ShowLineNumbers = false
	content.SetValue(n.Content)

	s := &editorSession{original: n, title: title, content: content}
	s.resize(width, height)
	return s
}

func (s *editorSession) resize(width, height int) {
	s.title.Width = width - 6
	s.content.SetWidth(width - 2)
	h := height - 6
	if h < 3 {
		h = 3
	}
	s.content.SetHeight(h)
}

func (s *editorSession) focusTitle() tea.Cmd {
	s.onContent = false
	s.content.Blur()
	return s.title.Focus()
}

func (s *editorSession) focusContent() tea.Cmd {
	s.onContent = true
	s.title.Blur()
	return s.content.Focus()
}

// note returns the edited note as it should be saved.
func (s *editorSession) note() notes.Note {
	n := s.original
	n.Title = s.title.Value()
	n.Content = s.content.Value()
	return n.Normalized()
}

func (s *editorSession) hasChanges() bool {
	return s.title.Value() != s.original.Title || s.content.Value() != s.original.Content
}

func (s *editorSession) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if s.onContent {
		s.content, cmd = s.content.Update(msg)
	} else {
		s.title, cmd = s.title.Update(msg)
	}
	return cmd
}

func (s *editorSession) view(st styles) string {
	heading := st.muted.Render("Editing")
	if s.hasChanges() {
		heading += st.accent.Render(" (modified)")
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(st.cardColor(s.original.Color)).
		Padding(0, 1)

	return border.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		heading,
		s.title.View(),
		"",
		s.content.View(),
	))
}

func (m *Model) openEditor(id string) tea.Cmd {
	n, ok := m.repo.Lookup(id)
	if !ok {
		return nil
	}

	m.sel.Select(id)
	m.editor = newEditorSession(n, m.gridWidth(), m.gridHeight())
	m.focus = focusEditor
	m.status = ""
	return tea.Batch(m.editor.focusTitle(), textinput.Blink)
}

func (m *Model) closeEditor() {
	m.editor = nil
	m.focus = focusGrid
}

func (m *Model) updateEditor(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.editorKeys.save):
		saved := m.editor.note()
		m.repo.UpdateNote(saved)
		m.closeEditor()
		m.setStatus("Saved " + saved.DisplayTitle())
		return nil
	case key.Matches(msg, m.editorKeys.cancel):
		m.closeEditor()
		return nil
	case key.Matches(msg, m.editorKeys.nextField):
		if m.editor.onContent {
			return m.editor.focusTitle()
		}
		return m.editor.focusContent()
	case msg.Type == tea.KeyEnter && !m.editor.onContent:
		return m.editor.focusContent()
	}

	return m.editor.update(msg)
}
