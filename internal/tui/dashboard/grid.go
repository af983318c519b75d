package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Paintersrp/stark/internal/notes"
)

const (
	cardBodyLines = 3
	// border + title + body + footer
	cardHeight = 2 + 1 + cardBodyLines + 1
)

var titleCase = cases.Title(language.English)

func (m *Model) sidebarWidth() int {
	if m.collapsed {
		return collapsedWidth
	}
	return sidebarWidth
}

func (m *Model) gridWidth() int {
	w := m.width - m.sidebarWidth() - calendarWidth - 6
	if w < m.cardWidth {
		return m.cardWidth
	}
	return w
}

func (m *Model) gridHeight() int {
	h := m.height - chromeHeight - 2
	if h < cardHeight {
		return cardHeight
	}
	return h
}

// columns is the number of cards that fit on one grid row.
func (m *Model) columns() int {
	if m.cardWidth <= 0 {
		return 1
	}
	cols := m.gridWidth() / m.cardWidth
	if cols < 1 {
		return 1
	}
	return cols
}

func (m *Model) viewDashboard() string {
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.viewSidebar(),
		m.viewMain(),
		m.viewCalendar(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		body,
		m.viewFooter(),
	)
}

func (m *Model) viewHeader() string {
	mode := "☾ Dark Mode"
	if m.theme == "dark" {
		mode = "☀ Light Mode"
	}

	right := strings.Join([]string{
		m.styles.muted.Render("? shortcuts"),
		m.styles.muted.Render("d " + mode),
		m.styles.accent.Render("L " + m.session.Label()),
	}, "  ")

	left := m.styles.title.Render("Stark Notes")
	if m.summary != "" {
		left += m.styles.muted.Render(m.summary)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}

	return m.styles.header.Render(left + strings.Repeat(" ", gap) + right)
}

func (m *Model) viewFooter() string {
	var line string
	switch {
	case m.status != "" && m.statusErr:
		line = m.styles.errorText.Render(m.status)
	case m.status != "":
		line = m.styles.status.Render(m.status)
	case m.focus == focusEditor:
		line = m.help.View(m.editorKeys)
	case m.focus == focusSidebar:
		line = m.help.View(m.sidebarKeys)
	default:
		line = m.styles.muted.Render(fmt.Sprintf(
			"theme: %s · n new · enter edit · m move · v folder · ? help",
			titleCase.String(m.theme),
		))
	}
	return line
}

func (m *Model) viewMain() string {
	heading := m.styles.title.Render(m.activeFolderName())
	if _, ok := m.drag.Dragging(); ok {
		heading += m.styles.accent.Render("  moving…")
	}

	var content string
	if m.focus == focusEditor && m.editor != nil {
		content = m.editor.view(m.styles)
	} else {
		content = m.viewGrid()
	}

	return lipgloss.NewStyle().
		Width(m.gridWidth()).
		Height(m.gridHeight() + 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, heading, content))
}

func (m *Model) activeFolderName() string {
	if f := m.repo.Folder(m.repo.ActiveFolder()); f != nil {
		return f.Name
	}
	return "All Notes"
}

func (m *Model) viewGrid() string {
	list := m.visible()
	if len(list) == 0 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			"",
			m.styles.muted.Render("No notes in this view"),
			m.styles.accent.Render("Press n to create your first note"),
		)
	}

	cols := m.columns()
	rows := chunk(list, cols)

	visibleRows := m.gridHeight() / cardHeight
	if visibleRows < 1 {
		visibleRows = 1
	}
	m.scrollTo(list, cols, visibleRows)

	end := m.scroll + visibleRows
	if end > len(rows) {
		end = len(rows)
	}

	dragged, _ := m.drag.Dragging()
	rendered := make([]string, 0, end-m.scroll)
	for _, row := range rows[m.scroll:end] {
		cards := make([]string, len(row))
		for i, n := range row {
			cards[i] = m.viewCard(n, m.sel.IsSelected(n.ID), n.ID == dragged)
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

// scrollTo keeps the row of the selected note on screen.
func (m *Model) scrollTo(list []notes.Note, cols, visibleRows int) {
	row := -1
	for i, n := range list {
		if m.sel.IsSelected(n.ID) {
			row = i / cols
			break
		}
	}

	maxScroll := (len(list)+cols-1)/cols - visibleRows
	if maxScroll < 0 {
		maxScroll = 0
	}

	if row >= 0 {
		if row < m.scroll {
			m.scroll = row
		}
		if row >= m.scroll+visibleRows {
			m.scroll = row - visibleRows + 1
		}
	}
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func chunk(list []notes.Note, size int) [][]notes.Note {
	var rows [][]notes.Note
	for size < len(list) {
		list, rows = list[size:], append(rows, list[:size])
	}
	return append(rows, list)
}

func (m *Model) viewCard(n notes.Note, selected, dragged bool) string {
	inner := m.cardWidth - 4
	if inner < 8 {
		inner = 8
	}

	title := truncate(n.DisplayTitle(), inner)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(m.styles.cardColor(n.Color))
	if dragged {
		title = truncate("⇅ "+n.DisplayTitle(), inner)
	}

	body := bodyLines(n.Content, inner, cardBodyLines)
	footer := truncate(
		fmt.Sprintf("%s · %s", n.Date.Local().Format("01/02/2006"), m.repo.FolderName(n.FolderID)),
		inner,
	)

	return m.styles.card(n.Color, m.cardWidth-2, selected, dragged).Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			titleStyle.Render(title),
			m.styles.palette.fgStyle().Render(body),
			m.styles.muted.Render(footer),
		),
	)
}

func (p palette) fgStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.fg)
}

// bodyLines returns exactly n lines of content clipped to width.
func bodyLines(content string, width, n int) string {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	out := make([]string, n)
	for i := 0; i < n; i++ {
		if i < len(lines) {
			out[i] = truncate(lines[i], width)
		}
	}
	if len(lines) > n {
		r := []rune(out[n-1])
		if len(r) >= width {
			r = r[:width-1]
		}
		out[n-1] = string(r) + "…"
	}
	return strings.Join(out, "\n")
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
