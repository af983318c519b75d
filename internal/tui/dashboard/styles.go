package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/stark/internal/notes"
)

// palette holds the colors of one theme.
type palette struct {
	fg      lipgloss.Color
	muted   lipgloss.Color
	accent  lipgloss.Color
	border  lipgloss.Color
	danger  lipgloss.Color
	surface lipgloss.Color
	cards   map[notes.Color]lipgloss.Color
}

var themes = map[string]palette{
	"dark": {
		fg:      lipgloss.Color("#E6E6E6"),
		muted:   lipgloss.Color("#7A7F8C"),
		accent:  lipgloss.Color("#0AF"),
		border:  lipgloss.Color("#334455"),
		danger:  lipgloss.Color("#F38BA8"),
		surface: lipgloss.Color("#224"),
		cards: map[notes.Color]lipgloss.Color{
			notes.Blue:   lipgloss.Color("#5B9DF9"),
			notes.Green:  lipgloss.Color("#4ADE80"),
			notes.Amber:  lipgloss.Color("#FBBF24"),
			notes.Red:    lipgloss.Color("#F87171"),
			notes.Purple: lipgloss.Color("#C084FC"),
		},
	},
	"light": {
		fg:      lipgloss.Color("#1F2328"),
		muted:   lipgloss.Color("#6E7781"),
		accent:  lipgloss.Color("#0969DA"),
		border:  lipgloss.Color("#D0D7DE"),
		danger:  lipgloss.Color("#CF222E"),
		surface: lipgloss.Color("#DDF4FF"),
		cards: map[notes.Color]lipgloss.Color{
			notes.Blue:   lipgloss.Color("#1D4ED8"),
			notes.Green:  lipgloss.Color("#15803D"),
			notes.Amber:  lipgloss.Color("#B45309"),
			notes.Red:    lipgloss.Color("#B91C1C"),
			notes.Purple: lipgloss.Color("#7E22CE"),
		},
	},
}

// styles is rebuilt whenever the theme changes.
type styles struct {
	app          lipgloss.Style
	title        lipgloss.Style
	header       lipgloss.Style
	muted        lipgloss.Style
	accent       lipgloss.Style
	status       lipgloss.Style
	errorText    lipgloss.Style
	sidebar      lipgloss.Style
	sidebarItem  lipgloss.Style
	sidebarOn    lipgloss.Style
	sidebarFocus lipgloss.Style
	pane         lipgloss.Style
	dialog       lipgloss.Style
	input        lipgloss.Style
	day          lipgloss.Style
	today        lipgloss.Style
	selectedDay  lipgloss.Style
	noteDay      lipgloss.Style
	help         lipgloss.Style

	palette palette
}

func newStyles(theme string) styles {
	p, ok := themes[theme]
	if !ok {
		p = themes["dark"]
	}

	base := lipgloss.NewStyle().Foreground(p.fg)

	return styles{
		app: lipgloss.NewStyle().Padding(0, 1),

		title: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			Padding(0, 1),

		header: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.border),

		muted:     lipgloss.NewStyle().Foreground(p.muted),
		accent:    lipgloss.NewStyle().Foreground(p.accent),
		status:    lipgloss.NewStyle().Foreground(p.accent).Padding(0, 1),
		errorText: lipgloss.NewStyle().Foreground(p.danger),

		sidebar: lipgloss.NewStyle().
			MarginRight(1).
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(p.border),

		sidebarItem: base.Copy(),
		sidebarOn:   base.Copy().Foreground(p.accent).Bold(true),
		sidebarFocus: lipgloss.NewStyle().
			Foreground(p.accent).
			Background(p.surface),

		pane: lipgloss.NewStyle().
			MarginLeft(1).
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.border),

		dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(1, 2),

		input: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.border).
			Padding(0, 1),

		day:         base.Copy(),
		today:       base.Copy().Underline(true),
		selectedDay: lipgloss.NewStyle().Foreground(p.surface).Background(p.accent).Bold(true),
		noteDay:     lipgloss.NewStyle().Foreground(p.accent).Bold(true),

		help: lipgloss.NewStyle().Foreground(lipgloss.Color("#cba6f7")),

		palette: p,
	}
}

func (s styles) cardColor(c notes.Color) lipgloss.Color {
	if col, ok := s.palette.cards[c]; ok {
		return col
	}
	return s.palette.border
}

// card returns the border style for one note card.
func (s styles) card(c notes.Color, width int, selected, dragged bool) lipgloss.Style {
	border := lipgloss.RoundedBorder()
	if selected {
		border = lipgloss.ThickBorder()
	}
	if dragged {
		border = lipgloss.DoubleBorder()
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Border(border).
		BorderForeground(s.cardColor(c))
}
