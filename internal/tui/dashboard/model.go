// Package dashboard is the terminal front end: folder sidebar, note grid,
// calendar pane and the dialogs that edit them.
package dashboard

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/Paintersrp/stark/internal/auth"
	"github.com/Paintersrp/stark/internal/config"
	"github.com/Paintersrp/stark/internal/drag"
	"github.com/Paintersrp/stark/internal/hotkeys"
	"github.com/Paintersrp/stark/internal/notes"
	"github.com/Paintersrp/stark/internal/preview"
	"github.com/Paintersrp/stark/internal/selection"
	"github.com/Paintersrp/stark/internal/state"
	"github.com/Paintersrp/stark/internal/storage"
)

type focus int

const (
	focusGrid focus = iota
	focusSidebar
	focusEditor
	focusHelp
	focusLogin
	focusMove
	focusFolderName
	focusGoto
)

const (
	sidebarWidth   = 22
	collapsedWidth = 4
	calendarWidth  = 32
	chromeHeight   = 5
)

type Model struct {
	state   *state.State
	repo    *notes.Repository
	sel     *selection.Controller
	session *auth.Session
	cfg     *config.Config
	watcher *storage.Watcher
	log     zerolog.Logger

	dispatcher *hotkeys.Dispatcher
	drag       *drag.Session
	renderer   *preview.Renderer
	styles     styles
	theme      string
	help       help.Model

	sidebarKeys sidebarKeyMap
	editorKeys  editorKeyMap
	dialogKeys  dialogKeyMap

	focus     focus
	date      time.Time
	now       func() time.Time
	width     int
	height    int
	cardWidth int
	collapsed bool
	scroll    int

	editor  *editorSession
	sidebar sidebarState
	login   loginDialog
	move    moveDialog
	naming  folderNameDialog
	goTo    gotoDialog

	summary   string
	status    string
	statusErr bool
	pending   tea.Cmd
}

// Run blocks until the dashboard exits.
func Run(s *state.State) error {
	p := tea.NewProgram(New(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}

type Option func(*Model)

// WithClock fixes "today" for the calendar pane.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

func New(s *state.State, opts ...Option) *Model {
	m := &Model{
		state:       s,
		repo:        s.Repo,
		sel:         s.Repo.Selection(),
		session:     s.Session,
		cfg:         s.Config,
		watcher:     s.Watcher,
		log:         s.Log.With().Str("component", "dashboard").Logger(),
		drag:        drag.NewSession(s.Repo),
		theme:       s.Workspace.Theme,
		help:        help.New(),
		sidebarKeys: newSidebarKeyMap(),
		editorKeys:  newEditorKeyMap(),
		dialogKeys:  newDialogKeyMap(),
		now:         time.Now,
		cardWidth:   s.Workspace.CardWidth,
		width:       120,
		height:      40,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.date = m.now()
	m.styles = newStyles(m.theme)
	m.renderer = preview.New(m.theme)
	m.dispatcher = hotkeys.NewDispatcher(m.commands().Bindings()...)
	m.sidebar.cursor = m.folderIndex(m.repo.ActiveFolder())

	return m
}

func (m *Model) commands() hotkeys.Commands {
	return hotkeys.Commands{
		NewNote:        m.newNote,
		ShowHelp:       func() { m.focus = focusHelp },
		ToggleTheme:    m.toggleTheme,
		DeleteSelected: m.deleteSelected,
		Reorder:        m.reorderSelected,
		Navigate:       m.navigate,
		Edit:           m.editSelected,
		Grab:           m.grab,
		DropAtEnd:      m.dropAtEnd,
		Cancel:         m.cancel,
		MoveToFolder:   m.openMove,
		Copy:           m.copySelected,
		PrevDay:        func() { m.shiftDay(-1) },
		NextDay:        func() { m.shiftDay(1) },
		Today:          func() { m.setDate(m.now()) },
		GoToDate:       m.openGoto,
		FocusSidebar:   m.focusSidebar,
		ToggleLogin:    m.toggleLogin,
		Quit:           func() { m.pending = tea.Quit },
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.watcher.Start(), m.state.StatusCmd(m.now()))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.editor != nil {
			m.editor.resize(m.gridWidth(), m.gridHeight())
		}

	case storage.SlotChangedMsg:
		m.repo.Reload()
		m.setStatus(fmt.Sprintf("Reloaded %s after an external change", msg.Key))
		cmds = append(cmds, m.watcher.Start(), m.state.StatusCmd(m.now()))

	case storage.WatcherErrMsg:
		m.log.Warn().Err(msg.Err).Msg("watcher error")
		cmds = append(cmds, m.watcher.Start())

	case state.StatusMsg:
		m.summary = msg.Line

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))
		cmds = append(cmds, m.state.StatusCmd(m.now()))

	default:
		if m.editor != nil {
			cmds = append(cmds, m.editor.update(msg))
		}
	}

	if id, ok := m.repo.ConsumePendingEdit(); ok {
		cmds = append(cmds, m.openEditor(id))
	}

	return m, tea.Batch(cmds...)
}

// target maps the current focus to the surface hotkeys see.
func (m *Model) target() hotkeys.Target {
	switch m.focus {
	case focusEditor:
		if m.editor != nil && m.editor.onContent {
			return hotkeys.TextArea
		}
		return hotkeys.Input
	case focusSidebar:
		return hotkeys.Sidebar
	case focusLogin, focusFolderName, focusGoto:
		return hotkeys.Input
	case focusMove:
		return hotkeys.Select
	case focusHelp:
		return hotkeys.Dialog
	default:
		return hotkeys.Grid
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.focus == focusSidebar {
		if handled, cmd := m.updateSidebar(msg); handled {
			return cmd
		}
	}

	target := m.target()
	if target != hotkeys.Dialog {
		if m.dispatcher.Dispatch(hotkeys.FromKeyMsg(msg, target)) > 0 {
			return m.takePending()
		}
	}

	switch m.focus {
	case focusEditor:
		return m.updateEditor(msg)
	case focusHelp:
		m.updateHelp(msg)
	case focusLogin:
		return m.updateLogin(msg)
	case focusMove:
		m.updateMove(msg)
	case focusFolderName:
		return m.updateFolderName(msg)
	case focusGoto:
		return m.updateGoto(msg)
	}

	return nil
}

func (m *Model) takePending() tea.Cmd {
	cmd := m.pending
	m.pending = nil
	return cmd
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
	m.log.Debug().Err(err).Msg("shown to user")
}

// visible is the filtered view the grid is showing.
func (m *Model) visible() []notes.Note {
	return m.repo.Filter(m.repo.ActiveFolder(), m.date)
}

func (m *Model) visibleIDs() []string {
	list := m.visible()
	ids := make([]string, len(list))
	for i, n := range list {
		ids[i] = n.ID
	}
	return ids
}

func (m *Model) selectedNote() (notes.Note, bool) {
	id, ok := m.sel.Selected()
	if !ok {
		return notes.Note{}, false
	}
	return m.repo.Lookup(id)
}

func (m *Model) newNote() {
	m.repo.CreateNote(m.repo.ActiveFolder(), m.date)
}

func (m *Model) toggleTheme() {
	next, err := m.cfg.ToggleTheme()
	if err != nil {
		m.setError(fmt.Errorf("failed to save theme: %w", err))
		return
	}
	m.applyTheme(next)
}

func (m *Model) applyTheme(theme string) {
	m.theme = theme
	m.styles = newStyles(theme)
	m.renderer.SetTheme(theme)
}

func (m *Model) deleteSelected() {
	n, ok := m.selectedNote()
	if !ok {
		return
	}
	if m.repo.DeleteNote(n.ID) {
		m.setStatus(fmt.Sprintf("Deleted %q", n.DisplayTitle()))
	}
}

func (m *Model) reorderSelected(dir notes.Direction) {
	if id, ok := m.sel.Selected(); ok {
		m.repo.Reorder(id, dir)
	}
}

func (m *Model) navigate(dir selection.Direction) {
	order := m.visibleIDs()
	if !m.sel.Valid(order) {
		m.sel.Clear()
	}
	m.sel.Navigate(dir, order, m.columns())
}

func (m *Model) editSelected() {
	id, ok := m.sel.Selected()
	if !ok || !m.sel.Valid(m.visibleIDs()) {
		return
	}
	m.pending = m.openEditor(id)
}

func (m *Model) grab() {
	id, ok := m.sel.Selected()
	if !ok {
		return
	}

	dragged, dragging := m.drag.Dragging()
	if !dragging {
		m.drag.PickUp(id)
		m.setStatus("Moving note: select a target and press m, or M to drop at the end")
		return
	}

	if dragged == id {
		m.drag.Cancel()
		m.setStatus("Move cancelled")
		return
	}

	if m.drag.DropOn(id) {
		m.sel.Select(dragged)
		m.setStatus("Note moved")
	}
}

func (m *Model) dropAtEnd() {
	dragged, ok := m.drag.Dragging()
	if !ok {
		return
	}
	if m.drag.DropAtEnd() {
		m.sel.Select(dragged)
		m.setStatus("Note moved to the end")
	}
}

func (m *Model) cancel() {
	if _, ok := m.drag.Dragging(); ok {
		m.drag.Cancel()
		m.setStatus("Move cancelled")
		return
	}
	m.status = ""
}

func (m *Model) copySelected() {
	n, ok := m.selectedNote()
	if !ok {
		return
	}
	if err := clipboard.WriteAll(n.Content); err != nil {
		m.setError(fmt.Errorf("failed to copy note: %w", err))
		return
	}
	m.setStatus(fmt.Sprintf("Copied %q to the clipboard", n.DisplayTitle()))
}

func (m *Model) shiftDay(days int) {
	m.setDate(m.date.AddDate(0, 0, days))
}

func (m *Model) setDate(t time.Time) {
	m.date = t
	m.scroll = 0
}

func (m *Model) toggleLogin() {
	if _, ok := m.session.User(); ok {
		if err := m.session.Logout(); err != nil {
			m.setError(err)
			return
		}
		m.setStatus("Logged out")
		return
	}
	m.openLogin()
}

func (m *Model) View() string {
	switch m.focus {
	case focusHelp:
		return m.overlay(m.viewHelp())
	case focusLogin:
		return m.overlay(m.viewLogin())
	case focusMove:
		return m.overlay(m.viewMove())
	case focusGoto:
		return m.overlay(m.viewGoto())
	}

	return m.styles.app.Render(m.viewDashboard())
}
