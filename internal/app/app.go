package app

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"jumptree/internal/history"
	"jumptree/internal/render"
	"jumptree/internal/storage"
	"jumptree/internal/system"
	"jumptree/internal/theme"
	"jumptree/internal/ui"
)

//go:embed help.md
var helpMD string

// Mode represents the current input mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeJump        // symbol bar focused
	ModeHelp        // help view active
)

// panelTimeoutMsg dismisses the tree panel; seq guards against a stale
// timer hiding a panel that was re-shown in the meantime.
type panelTimeoutMsg struct {
	seq int
}

// Model is the top-level bubbletea model for jumptree.
type Model struct {
	// UI components
	symbolBar ui.SymbolBar
	statusBar ui.StatusBar
	treePanel ui.TreePanel

	// Core
	store    *history.Store
	recorder *history.Recorder
	cache    *render.Cache

	// Storage
	db     *storage.DB
	pins   *storage.PinStore
	config *storage.Config

	keys        KeyMap
	mode        Mode
	width       int
	height      int
	ready       bool
	workspaceID string
	panelSeq    int
	helpView    string
}

// New creates a jumptree Model for the given workspace. An empty
// workspaceID is allowed; navigation then reports the unresolved
// condition instead of recording.
func New(workspaceID string, cfg *storage.Config) Model {
	store := history.NewStore()
	cache, _ := render.NewCache(32)

	m := Model{
		symbolBar:   ui.NewSymbolBar(),
		statusBar:   ui.NewStatusBar(),
		treePanel:   ui.NewTreePanel(),
		store:       store,
		recorder:    history.NewRecorder(store),
		cache:       cache,
		config:      cfg,
		keys:        DefaultKeyMap(),
		mode:        ModeNormal,
		workspaceID: workspaceID,
	}

	// Pin storage is best-effort; the session works without it.
	if dataDir, err := storage.DataDir(); err == nil {
		if db, err := storage.OpenDB(dataDir); err == nil {
			m.db = db
			m.pins = storage.NewPinStore(db)
		} else {
			system.Logger.Warn("pin storage unavailable", "err", err)
		}
	}

	if cfg != nil && cfg.PanelPinned {
		m.treePanel.SetPinned(true)
	}

	m.statusBar.SetWorkspace(workspaceID)
	return m
}

// Close releases resources held by the model.
func (m *Model) Close() {
	if m.db != nil {
		m.db.Close()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case panelTimeoutMsg:
		if msg.seq == m.panelSeq {
			m.treePanel.Hide()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg processes key events based on current mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeJump:
		return m.handleJumpMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// handleNormalMode processes keys in normal mode.
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Jump):
		m.mode = ModeJump
		m.statusBar.SetMode("JUMP")
		m.statusBar.SetMessage("")
		m.symbolBar.Reset()
		m.symbolBar.SetCandidates(m.candidates())
		return m, m.symbolBar.Focus()

	case key.Matches(msg, m.keys.Back):
		return m.goBack()

	case key.Matches(msg, m.keys.TogglePanel):
		pin := !m.treePanel.IsPinned()
		m.treePanel.SetPinned(pin)
		if pin {
			m.refreshPanel()
		} else {
			m.treePanel.Hide()
		}
		return m, nil

	case key.Matches(msg, m.keys.Pin):
		return m.pinCurrent(true)

	case key.Matches(msg, m.keys.Unpin):
		return m.pinCurrent(false)

	case key.Matches(msg, m.keys.Theme):
		return m.cycleTheme()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		m.statusBar.SetMode("HELP")
		m.renderHelp()
		return m, nil
	}

	return m, nil
}

// handleJumpMode processes keys while the symbol bar is focused.
func (m Model) handleJumpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeNormal
		m.symbolBar.Blur()
		m.statusBar.SetMode("NORMAL")
		return m, nil

	case tea.KeyTab:
		m.symbolBar.Complete()
		return m, nil

	case tea.KeyEnter:
		name := strings.TrimSpace(m.symbolBar.Value())
		m.mode = ModeNormal
		m.symbolBar.Blur()
		m.statusBar.SetMode("NORMAL")
		if name != "" {
			return m.goForward(name)
		}
		return m, nil
	}

	bar, cmd := m.symbolBar.Update(msg)
	m.symbolBar = *bar
	return m, cmd
}

// handleHelpMode processes keys while the help view is up.
func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?":
		m.mode = ModeNormal
		m.statusBar.SetMode("NORMAL")
		return m, nil
	}
	return m, nil
}

// goForward records a forward navigation and shows the updated tree.
func (m Model) goForward(symbolName string) (tea.Model, tea.Cmd) {
	if err := m.recorder.OnForward(m.workspaceID, symbolName); err != nil {
		system.Logger.Warn("forward navigation dropped", "err", err)
		m.statusBar.SetMessage(fmt.Sprintf("Cannot record jump: %s", err))
		return m, nil
	}
	m.syncStatus()
	return m, m.showPanel()
}

// goBack records a backward navigation and shows the updated tree.
func (m Model) goBack() (tea.Model, tea.Cmd) {
	if err := m.recorder.OnBackward(m.workspaceID); err != nil {
		system.Logger.Warn("back navigation dropped", "err", err)
		m.statusBar.SetMessage(fmt.Sprintf("Cannot record jump: %s", err))
		return m, nil
	}
	m.syncStatus()
	return m, m.showPanel()
}

// showPanel refreshes the tree panel and arms the dismissal timer.
func (m *Model) showPanel() tea.Cmd {
	m.refreshPanel()
	m.treePanel.Show()
	m.panelSeq++
	if m.treePanel.IsPinned() {
		return nil
	}

	seq := m.panelSeq
	return tea.Tick(m.panelDuration(), func(time.Time) tea.Msg {
		return panelTimeoutMsg{seq: seq}
	})
}

// refreshPanel redraws the diagram for the current workspace.
func (m *Model) refreshPanel() {
	if m.workspaceID == "" {
		return
	}
	rec := m.store.Get(m.workspaceID)
	d := m.cache.Get(m.workspaceID, rec)
	m.treePanel.SetDiagram(filepath.Base(m.workspaceID), d)
}

func (m *Model) panelDuration() time.Duration {
	if m.config != nil && m.config.PanelMillis > 0 {
		return time.Duration(m.config.PanelMillis) * time.Millisecond
	}
	return 2 * time.Second
}

// syncStatus updates the status bar from the workspace record.
func (m *Model) syncStatus() {
	if m.workspaceID == "" {
		return
	}
	rec := m.store.Get(m.workspaceID)
	m.statusBar.SetCurrent(rec.Current.Sym.Name())
	m.statusBar.SetNodeCount(rec.Root.Size() - 1)
}

// candidates lists completion targets: pinned symbols first, then every
// symbol already in the tree, in pre-order.
func (m *Model) candidates() []string {
	var names []string
	seen := make(map[string]bool)

	if m.pins != nil && m.workspaceID != "" {
		for _, s := range m.pins.Symbols(m.workspaceID) {
			if !seen[s] {
				seen[s] = true
				names = append(names, s)
			}
		}
	}
	if m.workspaceID != "" {
		collect(m.store.Get(m.workspaceID).Root, seen, &names)
	}
	return names
}

func collect(n *history.Node, seen map[string]bool, names *[]string) {
	for _, c := range n.Children {
		if name := c.Sym.Name(); !seen[name] {
			seen[name] = true
			*names = append(*names, name)
		}
		collect(c, seen, names)
	}
}

// pinCurrent pins or unpins the symbol at the current position.
func (m Model) pinCurrent(pin bool) (tea.Model, tea.Cmd) {
	if m.pins == nil {
		m.statusBar.SetMessage("Pins not available")
		return m, nil
	}
	if m.workspaceID == "" {
		m.statusBar.SetMessage("No workspace")
		return m, nil
	}
	rec := m.store.Get(m.workspaceID)
	if rec.Current == rec.Root {
		m.statusBar.SetMessage("Nothing to pin at the root")
		return m, nil
	}

	name := rec.Current.Sym.Name()
	if pin {
		if m.pins.Add(m.workspaceID, name) {
			m.statusBar.SetMessage(fmt.Sprintf("Pinned: %s", name))
		} else {
			m.statusBar.SetMessage("Already pinned")
		}
	} else {
		if m.pins.Remove(m.workspaceID, name) {
			m.statusBar.SetMessage(fmt.Sprintf("Unpinned: %s", name))
		} else {
			m.statusBar.SetMessage("Not pinned")
		}
	}
	return m, nil
}

// cycleTheme switches to the next available theme.
func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	themes := theme.List()
	current := theme.Active.Name
	for i, t := range themes {
		if t == current {
			next := themes[(i+1)%len(themes)]
			theme.Set(next)
			m.statusBar.SetMessage(fmt.Sprintf("Theme: %s", next))
			return m, nil
		}
	}
	if len(themes) > 0 {
		theme.Set(themes[0])
		m.statusBar.SetMessage(fmt.Sprintf("Theme: %s", themes[0]))
	}
	return m, nil
}

// renderHelp renders the embedded help markdown at the current width.
func (m *Model) renderHelp() {
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	if width > 80 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.helpView = helpMD
		return
	}
	out, err := r.Render(helpMD)
	if err != nil {
		system.Logger.Warn("help render failed", "err", err)
		m.helpView = helpMD
		return
	}
	m.helpView = out
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "\n  Loading jumptree..."
	}

	var sections []string
	sections = append(sections, m.symbolBar.View())

	content := m.contentView()
	sections = append(sections, content)

	sections = append(sections, m.statusBar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// contentView renders the middle region: help, the tree panel, or the
// welcome screen.
func (m Model) contentView() string {
	h := m.contentHeight()

	if m.mode == ModeHelp {
		return lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Top, m.helpView)
	}

	if m.treePanel.IsVisible() {
		return lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, m.treePanel.View())
	}

	return lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, m.welcomeView())
}

func (m Model) contentHeight() int {
	barHeight := lipgloss.Height(m.symbolBar.View())
	statusHeight := 1
	h := m.height - barHeight - statusHeight
	if h < 1 {
		h = 1
	}
	return h
}

// layout recalculates dimensions for all components.
func (m *Model) layout() {
	m.symbolBar.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)
	m.treePanel.SetSize(m.width, m.contentHeight())
}

func (m Model) welcomeView() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Secondary)

	descStyle := lipgloss.NewStyle().
		Foreground(t.Text)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("jumptree"))
	sb.WriteString("\n")
	sb.WriteString(subtitleStyle.Render("navigation history as a tree"))
	sb.WriteString("\n\n")

	shortcuts := []struct {
		key  string
		desc string
	}{
		{"o", "Jump to a symbol"},
		{"b", "Jump back"},
		{"h", "Pin history panel"},
		{"p / P", "Pin / unpin symbol"},
		{"t", "Cycle theme"},
		{"?", "Help"},
		{"q", "Quit"},
	}
	for _, s := range shortcuts {
		sb.WriteString(keyStyle.Render(fmt.Sprintf("%-8s", s.key)))
		sb.WriteString(descStyle.Render(s.desc))
		sb.WriteString("\n")
	}

	if m.workspaceID == "" {
		sb.WriteString("\n")
		warnStyle := lipgloss.NewStyle().Foreground(t.Warning)
		sb.WriteString(warnStyle.Render("No workspace resolved; jumps will not be recorded."))
	}

	return sb.String()
}
