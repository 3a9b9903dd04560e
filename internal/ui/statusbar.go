package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"jumptree/internal/theme"
)

// StatusBar shows workspace and navigation state at the bottom of the
// screen.
type StatusBar struct {
	workspace string
	current   string // symbol at the current position
	nodeCount int
	mode      string
	message   string // temporary status message
	width     int
}

// NewStatusBar creates a new status bar.
func NewStatusBar() StatusBar {
	return StatusBar{
		mode: "NORMAL",
	}
}

// SetWidth sets the status bar width.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// SetWorkspace updates the displayed workspace identifier.
func (s *StatusBar) SetWorkspace(ws string) {
	s.workspace = ws
}

// SetCurrent updates the current-position symbol name.
func (s *StatusBar) SetCurrent(sym string) {
	s.current = sym
}

// SetNodeCount sets the tree size indicator.
func (s *StatusBar) SetNodeCount(n int) {
	s.nodeCount = n
}

// SetMode sets the current mode indicator (NORMAL, JUMP, HELP).
func (s *StatusBar) SetMode(mode string) {
	s.mode = mode
}

// SetMessage sets a temporary status message.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
}

// View renders the status bar.
func (s *StatusBar) View() string {
	t := theme.Active

	modeStyle := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1)

	switch s.mode {
	case "NORMAL":
		modeStyle = modeStyle.
			Foreground(t.Background).
			Background(t.Primary)
	case "JUMP":
		modeStyle = modeStyle.
			Foreground(t.Background).
			Background(t.Success)
	case "HELP":
		modeStyle = modeStyle.
			Foreground(t.Background).
			Background(t.Accent)
	default:
		modeStyle = modeStyle.
			Foreground(t.Background).
			Background(t.Secondary)
	}

	mode := modeStyle.Render(s.mode)

	barStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface)

	// Left side: message or workspace.
	var left string
	if s.message != "" {
		msgStyle := lipgloss.NewStyle().
			Foreground(t.Info).
			Background(t.Surface).
			Padding(0, 1)
		left = msgStyle.Render(s.message)
	} else if s.workspace != "" {
		wsStyle := lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Padding(0, 1)
		left = wsStyle.Render(s.workspace)
	}

	// Right side: current symbol + tree size.
	var right string
	rightStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface).
		Padding(0, 1)

	if s.current != "" {
		curStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Current).
			Background(t.Surface).
			Padding(0, 1)
		right += curStyle.Render("@ " + s.current)
	}
	if s.nodeCount > 0 {
		right += rightStyle.Render(fmt.Sprintf("%d jumps", s.nodeCount))
	}

	// Calculate spacing.
	modeWidth := lipgloss.Width(mode)
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	spacerWidth := s.width - modeWidth - leftWidth - rightWidth
	if spacerWidth < 0 {
		spacerWidth = 0
	}

	spacerStyle := lipgloss.NewStyle().
		Background(t.Surface)
	spacer := spacerStyle.Render(fmt.Sprintf("%*s", spacerWidth, ""))

	return barStyle.Render(mode + left + spacer + right)
}
