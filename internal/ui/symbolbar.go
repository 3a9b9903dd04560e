package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"

	"jumptree/internal/theme"
)

// maxSuggestions caps how many fuzzy matches the bar shows.
const maxSuggestions = 5

// SymbolBar is the jump-target input at the top of the screen. While the
// user types it fuzzy-matches against symbols already in the workspace's
// tree (pinned symbols first).
type SymbolBar struct {
	input      textinput.Model
	active     bool
	width      int
	candidates []string
	matches    []string
}

// NewSymbolBar creates a new symbol bar.
func NewSymbolBar() SymbolBar {
	ti := textinput.New()
	ti.Placeholder = "Symbol to jump to..."
	ti.CharLimit = 256
	ti.Width = 40

	return SymbolBar{
		input: ti,
	}
}

// SetWidth updates the bar width.
func (sb *SymbolBar) SetWidth(w int) {
	sb.width = w
	sb.input.Width = w - 8 // account for prompt and padding
}

// SetCandidates replaces the completion candidates. Order matters: the
// caller puts pinned symbols ahead of the rest.
func (sb *SymbolBar) SetCandidates(candidates []string) {
	sb.candidates = candidates
	sb.refresh()
}

// Focus activates the bar for input.
func (sb *SymbolBar) Focus() tea.Cmd {
	sb.active = true
	return sb.input.Focus()
}

// Blur deactivates the bar.
func (sb *SymbolBar) Blur() {
	sb.active = false
	sb.input.Blur()
}

// IsActive reports whether the bar is focused.
func (sb *SymbolBar) IsActive() bool {
	return sb.active
}

// Value returns the current input text.
func (sb *SymbolBar) Value() string {
	return sb.input.Value()
}

// Reset clears the input.
func (sb *SymbolBar) Reset() {
	sb.input.Reset()
	sb.matches = nil
}

// Complete replaces the input with the best fuzzy match, if any.
func (sb *SymbolBar) Complete() {
	if len(sb.matches) > 0 {
		sb.input.SetValue(sb.matches[0])
		sb.input.CursorEnd()
	}
}

// Update handles messages for the bar.
func (sb *SymbolBar) Update(msg tea.Msg) (*SymbolBar, tea.Cmd) {
	if !sb.active {
		return sb, nil
	}
	var cmd tea.Cmd
	sb.input, cmd = sb.input.Update(msg)
	sb.refresh()
	return sb, cmd
}

// refresh recomputes fuzzy matches for the current input.
func (sb *SymbolBar) refresh() {
	sb.matches = sb.matches[:0]
	query := sb.input.Value()
	if query == "" {
		// Nothing typed yet: suggest the head of the candidate list,
		// which the caller sorted pinned-first.
		n := len(sb.candidates)
		if n > maxSuggestions {
			n = maxSuggestions
		}
		sb.matches = append(sb.matches, sb.candidates[:n]...)
		return
	}
	for i, m := range fuzzy.Find(query, sb.candidates) {
		if i == maxSuggestions {
			break
		}
		sb.matches = append(sb.matches, m.Str)
	}
}

// View renders the bar and, while active, its suggestion row.
func (sb *SymbolBar) View() string {
	t := theme.Active

	var barStyle lipgloss.Style
	if sb.active {
		barStyle = lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1).
			Width(sb.width - 2)
	} else {
		barStyle = lipgloss.NewStyle().
			Foreground(t.TextDim).
			Background(t.Surface).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1).
			Width(sb.width - 2)
	}

	promptStyle := lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	content := promptStyle.Render("»") + " " + sb.input.View()
	bar := barStyle.Render(content)

	if !sb.active || len(sb.matches) == 0 {
		return bar
	}

	suggestStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Padding(0, 2)
	row := "↳ " + strings.Join(sb.matches, "  ") + "  (Tab completes)"
	row = runewidth.Truncate(row, sb.width-4, "…")

	return bar + "\n" + suggestStyle.Render(row)
}
