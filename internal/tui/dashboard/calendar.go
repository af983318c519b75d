package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/stark/internal/notes"
)

// monthGrid lays out the weeks of t's month, Sunday first. Empty cells are
// zero.
func monthGrid(t time.Time) [][]int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	days := first.AddDate(0, 1, -1).Day()

	var weeks [][]int
	week := make([]int, 7)
	col := int(first.Weekday())
	for day := 1; day <= days; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = make([]int, 7)
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

func (m *Model) viewCalendar() string {
	selected := m.date.Local()
	today := m.now().Local()

	marked := make(map[int]bool)
	for _, n := range m.repo.Notes() {
		d := n.Date.Local()
		if d.Year() == selected.Year() && d.Month() == selected.Month() {
			marked[d.Day()] = true
		}
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render("Calendar"))
	b.WriteString("\n")
	b.WriteString(m.styles.accent.Render(fmt.Sprintf("   %s %d", selected.Month(), selected.Year())))
	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render("Su Mo Tu We Th Fr Sa"))
	b.WriteString("\n")

	for _, week := range monthGrid(selected) {
		cells := make([]string, 7)
		for i, day := range week {
			if day == 0 {
				cells[i] = "  "
				continue
			}

			label := fmt.Sprintf("%2d", day)
			style := m.styles.day
			switch {
			case day == selected.Day():
				style = m.styles.selectedDay
			case marked[day]:
				style = m.styles.noteDay
			case day == today.Day() && sameMonth(selected, today):
				style = m.styles.today
			}
			cells[i] = style.Render(label)
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.accent.Render(selected.Format("Monday, January 2")))
	b.WriteString("\n")

	dayNotes := m.repo.NotesOn(m.date)
	if len(dayNotes) == 0 {
		b.WriteString(m.styles.muted.Render("No notes on this day"))
		b.WriteString("\n")
	}
	for _, n := range dayNotes {
		dot := lipgloss.NewStyle().Foreground(m.styles.cardColor(n.Color)).Render("●")
		b.WriteString(fmt.Sprintf("%s %s\n", dot, truncate(n.DisplayTitle(), calendarWidth-6)))
	}

	if n, ok := m.selectedNote(); ok && m.focus != focusEditor {
		b.WriteString("\n")
		b.WriteString(m.styles.title.Render("Preview"))
		b.WriteString("\n")
		b.WriteString(m.renderPreview(n))
	}

	return m.styles.pane.
		Width(calendarWidth).
		MaxHeight(m.gridHeight() + 1).
		Render(b.String())
}

func (m *Model) renderPreview(n notes.Note) string {
	return strings.TrimSpace(m.renderer.Render(n, calendarWidth-2))
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
