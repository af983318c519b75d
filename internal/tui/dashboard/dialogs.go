package dashboard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/stark/internal/auth"
	"github.com/Paintersrp/stark/internal/notes"
)

func (m *Model) overlay(content string) string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.styles.dialog.Render(content),
	)
}

func (m *Model) updateHelp(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc", "?", "q", "enter":
		m.focus = focusGrid
	}
}

func (m *Model) viewHelp() string {
	bindings := m.dispatcher.Help()

	const perColumn = 8
	var columns [][]key.Binding
	for len(bindings) > perColumn {
		columns = append(columns, bindings[:perColumn])
		bindings = bindings[perColumn:]
	}
	columns = append(columns, bindings)

	h := m.help
	h.ShowAll = true
	h.Styles.FullKey = m.styles.help

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.title.Render("Keyboard Shortcuts"),
		"",
		h.FullHelpView(columns),
		"",
		m.styles.muted.Render("Folders (tab): ")+m.help.ShortHelpView(m.sidebarKeys.ShortHelp()),
		m.styles.muted.Render("Editor: ")+m.help.ShortHelpView(m.editorKeys.ShortHelp()),
		"",
		m.styles.muted.Render("esc to close"),
	)
}

type loginDialog struct {
	username textinput.Model
	password textinput.Model
	register bool
	err      string
}

func (m *Model) openLogin() {
	user := textinput.New()
	user.Placeholder = "Enter your username"
	user.CharLimit = 64
	user.Width = 32

	pass := textinput.New()
	pass.Placeholder = "Enter your password"
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'
	pass.CharLimit = 128
	pass.Width = 32

	m.login = loginDialog{username: user, password: pass}
	m.login.username.Focus()
	m.focus = focusLogin
}

func (m *Model) updateLogin(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.dialogKeys.cancel):
		m.focus = focusGrid
		return nil
	case key.Matches(msg, m.dialogKeys.register):
		m.login.register = !m.login.register
		return nil
	case key.Matches(msg, m.dialogKeys.next):
		if m.login.username.Focused() {
			m.login.username.Blur()
			return m.login.password.Focus()
		}
		m.login.password.Blur()
		return m.login.username.Focus()
	case key.Matches(msg, m.dialogKeys.submit):
		m.submitLogin()
		return nil
	}

	var cmd tea.Cmd
	if m.login.username.Focused() {
		m.login.username, cmd = m.login.username.Update(msg)
	} else {
		m.login.password, cmd = m.login.password.Update(msg)
	}
	return cmd
}

func (m *Model) submitLogin() {
	creds := auth.Credentials{
		Username: m.login.username.Value(),
		Password: m.login.password.Value(),
	}

	if err := m.session.Login(creds); err != nil {
		m.login.err = err.Error()
		if !errors.Is(err, auth.ErrMissingFields) {
			m.log.Error().Err(err).Msg("login failed")
		}
		return
	}

	user, _ := m.session.User()
	m.focus = focusGrid
	m.setStatus("Logged in as " + user)
}

func (m *Model) viewLogin() string {
	submit := "Login"
	toggle := "Don't have an account? ctrl+r to register"
	if m.login.register {
		submit = "Register"
		toggle = "Already have an account? ctrl+r to login"
	}

	lines := []string{
		m.styles.title.Render(auth.Title(m.login.register)),
		m.styles.muted.Render(auth.Description(m.login.register)),
		"",
		"Username",
		m.styles.input.Render(m.login.username.View()),
		"Password",
		m.styles.input.Render(m.login.password.View()),
	}
	if m.login.err != "" {
		lines = append(lines, m.styles.errorText.Render(m.login.err))
	}
	lines = append(lines,
		"",
		m.styles.accent.Render("↵ "+submit),
		m.styles.muted.Render(toggle),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// moveDialog picks the destination folder for the selected note.
type moveDialog struct {
	noteID  string
	folders []notes.Folder
	cursor  int
}

func (m *Model) openMove() {
	n, ok := m.selectedNote()
	if !ok {
		return
	}

	var folders []notes.Folder
	for _, f := range m.repo.Folders() {
		if f.ID == notes.FolderCalendar {
			continue
		}
		folders = append(folders, f)
	}

	cursor := 0
	for i, f := range folders {
		if f.ID == n.FolderID {
			cursor = i
		}
	}

	m.move = moveDialog{noteID: n.ID, folders: folders, cursor: cursor}
	m.focus = focusMove
}

func (m *Model) updateMove(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.dialogKeys.cancel):
		m.focus = focusGrid
	case key.Matches(msg, m.dialogKeys.up):
		if m.move.cursor > 0 {
			m.move.cursor--
		}
	case key.Matches(msg, m.dialogKeys.down):
		if m.move.cursor < len(m.move.folders)-1 {
			m.move.cursor++
		}
	case key.Matches(msg, m.dialogKeys.submit):
		if len(m.move.folders) == 0 {
			m.focus = focusGrid
			return
		}
		target := m.move.folders[m.move.cursor]
		if m.repo.MoveNote(m.move.noteID, target.ID) {
			m.setStatus(fmt.Sprintf("Moved to %s", target.Name))
		}
		m.focus = focusGrid
	}
}

func (m *Model) viewMove() string {
	title := "Move note"
	if n, ok := m.repo.Lookup(m.move.noteID); ok {
		title = fmt.Sprintf("Move %q to", n.DisplayTitle())
	}

	lines := []string{m.styles.title.Render(title), ""}
	for i, f := range m.move.folders {
		line := fmt.Sprintf("  %s %s", f.Glyph(), f.Name)
		if i == m.move.cursor {
			line = m.styles.sidebarFocus.Render(fmt.Sprintf("› %s %s", f.Glyph(), f.Name))
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", m.styles.muted.Render("↵ move · esc cancel"))

	return strings.Join(lines, "\n")
}

type gotoDialog struct {
	input textinput.Model
	err   string
}

func (m *Model) openGoto() {
	ti := textinput.New()
	ti.Placeholder = "2024-01-31, Jan 31 2024, 01/31/2024…"
	ti.CharLimit = 64
	ti.Width = 36
	ti.Focus()

	m.goTo = gotoDialog{input: ti}
	m.focus = focusGoto
}

func (m *Model) updateGoto(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.dialogKeys.cancel):
		m.focus = focusGrid
		return nil
	case key.Matches(msg, m.dialogKeys.submit):
		t, err := parseDate(m.goTo.input.Value())
		if err != nil {
			m.goTo.err = err.Error()
			return nil
		}
		m.setDate(t)
		m.focus = focusGrid
		return nil
	}

	var cmd tea.Cmd
	m.goTo.input, cmd = m.goTo.input.Update(msg)
	m.goTo.err = ""
	return cmd
}

// parseDate accepts any layout dateparse understands, in local time.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("Enter a date")
	}

	t, err := dateparse.ParseLocal(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("Could not understand %q", s)
	}
	return t, nil
}

func (m *Model) viewGoto() string {
	lines := []string{
		m.styles.title.Render("Go to date"),
		"",
		m.styles.input.Render(m.goTo.input.View()),
	}
	if m.goTo.err != "" {
		lines = append(lines, m.styles.errorText.Render(m.goTo.err))
	}
	lines = append(lines, "", m.styles.muted.Render("↵ go · esc cancel"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
