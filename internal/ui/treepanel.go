package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"jumptree/internal/render"
	"jumptree/internal/theme"
)

// TreePanel displays a rendered navigation diagram with the current
// position highlighted. It is transient: the app shows it after each
// navigation and dismisses it on a timer unless pinned open.
type TreePanel struct {
	diagram   *render.Diagram
	workspace string
	visible   bool
	pinned    bool
	width     int
	height    int
}

// NewTreePanel creates a hidden tree panel.
func NewTreePanel() TreePanel {
	return TreePanel{}
}

// SetDiagram replaces the displayed diagram and its workspace label.
func (tp *TreePanel) SetDiagram(workspace string, d *render.Diagram) {
	tp.workspace = workspace
	tp.diagram = d
}

// SetSize updates the panel dimensions.
func (tp *TreePanel) SetSize(w, h int) {
	tp.width = w
	tp.height = h
}

// Show makes the panel visible.
func (tp *TreePanel) Show() {
	tp.visible = true
}

// Hide closes the panel unless it is pinned open.
func (tp *TreePanel) Hide() {
	if !tp.pinned {
		tp.visible = false
	}
}

// IsVisible reports whether the panel is shown.
func (tp *TreePanel) IsVisible() bool {
	return tp.visible
}

// SetPinned pins the panel open (or releases it).
func (tp *TreePanel) SetPinned(pinned bool) {
	tp.pinned = pinned
	if pinned {
		tp.visible = true
	}
}

// IsPinned reports whether the panel is pinned open.
func (tp *TreePanel) IsPinned() bool {
	return tp.pinned
}

// View renders the panel.
func (tp *TreePanel) View() string {
	if !tp.visible || tp.diagram == nil {
		return ""
	}

	t := theme.Active

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Padding(0, 1)

	separatorStyle := lipgloss.NewStyle().
		Foreground(t.Border)

	markerStyle := lipgloss.NewStyle().
		Foreground(t.Marker)

	currentStyle := lipgloss.NewStyle().
		Foreground(t.Current).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Padding(0, 1)

	// Index the highlight cells by line.
	highlighted := make(map[int]map[int]bool)
	for _, s := range tp.diagram.Highlights {
		if highlighted[s.Line] == nil {
			highlighted[s.Line] = make(map[int]bool)
		}
		highlighted[s.Line][s.Col] = true
	}

	var sb strings.Builder

	title := "Jump history"
	if tp.workspace != "" {
		maxWS := tp.width - 16
		if maxWS < 8 {
			maxWS = 8
		}
		title += ": " + runewidth.Truncate(tp.workspace, maxWS, "…")
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n")

	sepWidth := tp.diagram.Width()
	if sepWidth < 1 {
		sepWidth = 1
	}
	sb.WriteString(separatorStyle.Render(strings.Repeat("─", sepWidth)))
	sb.WriteString("\n")

	for i, line := range tp.diagram.Lines {
		sb.WriteString(styleLine(line, highlighted[i], markerStyle, currentStyle))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	hint := "you are here: "
	sb.WriteString(dimStyle.Render(hint) + currentStyle.Render("*"))

	boxStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(0, 2).
		Background(t.Background)

	return boxStyle.Render(sb.String())
}

// styleLine colors a diagram line cell by cell: plain markers get the
// marker style, the current-position cell gets the highlight style.
func styleLine(line string, cols map[int]bool, marker, current lipgloss.Style) string {
	if len(cols) == 0 && !strings.ContainsRune(line, '*') {
		return line
	}
	var sb strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case cols[i]:
			sb.WriteString(current.Render(string(c)))
		case c != ' ':
			sb.WriteString(marker.Render(string(c)))
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
