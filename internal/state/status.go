package state

import (
	"fmt"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RootStatus is the short line shown under the dashboard header.
type RootStatus struct {
	mu   sync.Mutex
	Line string
}

func (s *RootStatus) Set(line string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.Line = line
	s.mu.Unlock()
}

func (s *RootStatus) Get() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Line
}

// StatusMsg carries a refreshed status line.
type StatusMsg struct {
	Line string
}

// StatusCmd recomputes the status line from the repository.
func (s *State) StatusCmd(now time.Time) tea.Cmd {
	if s == nil {
		return nil
	}

	return func() tea.Msg {
		line := formatStatus(
			s.WorkspaceName,
			s.Workspace.Storage.Backend,
			len(s.Repo.Notes()),
			len(s.Repo.NotesOn(now)),
		)
		s.RootStatus.Set(line)
		return StatusMsg{Line: line}
	}
}

func formatStatus(workspace, backend string, total, today int) string {
	parts := []string{
		fmt.Sprintf("%s (%s)", workspace, backend),
		plural(total, "note"),
	}
	if today > 0 {
		parts = append(parts, fmt.Sprintf("%d today", today))
	}
	return strings.Join(parts, " · ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
