package dashboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/stark/internal/notes"
)

type sidebarState struct {
	cursor int
}

// folderNameDialog is the inline input used to add or rename a folder.
type folderNameDialog struct {
	input    textinput.Model
	renaming string
	err      string
}

func (m *Model) folderIndex(id string) int {
	for i, f := range m.repo.Folders() {
		if f.ID == id {
			return i
		}
	}
	return 0
}

func (m *Model) focusSidebar() {
	m.focus = focusSidebar
	m.sidebar.cursor = m.folderIndex(m.repo.ActiveFolder())
}

func (m *Model) cursorFolder() (notes.Folder, bool) {
	folders := m.repo.Folders()
	if m.sidebar.cursor < 0 || m.sidebar.cursor >= len(folders) {
		return notes.Folder{}, false
	}
	return folders[m.sidebar.cursor], true
}

// updateSidebar handles folder keys. Unhandled keys fall through to the
// global hotkeys.
func (m *Model) updateSidebar(msg tea.KeyMsg) (bool, tea.Cmd) {
	folders := m.repo.Folders()

	switch {
	case key.Matches(msg, m.sidebarKeys.up):
		if m.sidebar.cursor > 0 {
			m.sidebar.cursor--
		}
	case key.Matches(msg, m.sidebarKeys.down):
		if m.sidebar.cursor < len(folders)-1 {
			m.sidebar.cursor++
		}
	case key.Matches(msg, m.sidebarKeys.activate):
		if f, ok := m.cursorFolder(); ok {
			m.repo.SetActiveFolder(f.ID)
			m.scroll = 0
		}
	case key.Matches(msg, m.sidebarKeys.add):
		return true, m.openFolderName("", "")
	case key.Matches(msg, m.sidebarKeys.rename):
		f, ok := m.cursorFolder()
		if !ok || notes.IsProtected(f.ID) {
			return true, nil
		}
		return true, m.openFolderName(f.ID, f.Name)
	case key.Matches(msg, m.sidebarKeys.remove):
		f, ok := m.cursorFolder()
		if !ok {
			return true, nil
		}
		if m.repo.DeleteFolder(f.ID) {
			m.setStatus(fmt.Sprintf("Deleted folder %q", f.Name))
			if m.sidebar.cursor >= len(m.repo.Folders()) {
				m.sidebar.cursor = len(m.repo.Folders()) - 1
			}
		}
	case key.Matches(msg, m.sidebarKeys.collapse):
		m.collapsed = !m.collapsed
	case key.Matches(msg, m.sidebarKeys.back):
		m.focus = focusGrid
	default:
		return false, nil
	}

	return true, nil
}

func (m *Model) openFolderName(id, name string) tea.Cmd {
	ti := textinput.New()
	ti.Placeholder = "Folder name"
	ti.CharLimit = 64
	ti.Width = sidebarWidth - 4
	ti.SetValue(name)

	m.naming = folderNameDialog{input: ti, renaming: id}
	m.focus = focusFolderName
	m.collapsed = false
	return m.naming.input.Focus()
}

func (m *Model) updateFolderName(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.dialogKeys.cancel):
		m.focus = focusSidebar
		return nil
	case key.Matches(msg, m.dialogKeys.submit):
		m.submitFolderName()
		return nil
	}

	var cmd tea.Cmd
	m.naming.input, cmd = m.naming.input.Update(msg)
	m.naming.err = ""
	return cmd
}

func (m *Model) submitFolderName() {
	name := m.naming.input.Value()
	if strings.TrimSpace(name) == "" {
		m.naming.err = notes.ErrEmptyFolderName.Error()
		return
	}

	if m.naming.renaming != "" {
		m.repo.RenameFolder(m.naming.renaming, name)
		m.focus = focusSidebar
		return
	}

	folder, err := m.repo.CreateFolder(name)
	if errors.Is(err, notes.ErrEmptyFolderName) {
		m.naming.err = err.Error()
		return
	}
	m.sidebar.cursor = m.folderIndex(folder.ID)
	m.focus = focusSidebar
}

func (m *Model) viewSidebar() string {
	folders := m.repo.Folders()
	active := m.repo.ActiveFolder()
	focused := m.focus == focusSidebar || m.focus == focusFolderName

	if m.collapsed {
		lines := make([]string, 0, len(folders)+1)
		lines = append(lines, m.styles.muted.Render("»"))
		for i, f := range folders {
			lines = append(lines, m.folderStyle(f.ID == active, focused && i == m.sidebar.cursor).Render(f.Glyph()))
		}
		return m.styles.sidebar.Width(collapsedWidth).Height(m.gridHeight() + 1).Render(strings.Join(lines, "\n"))
	}

	lines := []string{m.styles.title.Render("Folders")}
	for i, f := range folders {
		if m.focus == focusFolderName && m.naming.renaming == f.ID {
			lines = append(lines, m.naming.input.View())
			continue
		}

		marker := "  "
		if f.ID == active {
			marker = "▌ "
		}
		label := truncate(fmt.Sprintf("%s %s", f.Glyph(), f.Name), sidebarWidth-6)
		lines = append(lines, m.folderStyle(f.ID == active, focused && i == m.sidebar.cursor).Render(marker+label))
	}

	if m.focus == focusFolderName && m.naming.renaming == "" {
		lines = append(lines, "", m.naming.input.View())
	}
	if m.focus == focusFolderName && m.naming.err != "" {
		lines = append(lines, m.styles.errorText.Render(m.naming.err))
	}
	if focused {
		lines = append(lines, "", m.styles.muted.Render("a add · r rename · x delete"))
	}

	return m.styles.sidebar.
		Width(sidebarWidth).
		Height(m.gridHeight() + 1).
		Render(strings.Join(lines, "\n"))
}

func (m *Model) folderStyle(active, cursor bool) lipgloss.Style {
	switch {
	case cursor:
		return m.styles.sidebarFocus
	case active:
		return m.styles.sidebarOn
	default:
		return m.styles.sidebarItem
	}
}
