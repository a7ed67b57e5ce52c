package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"chainplan/internal/chain"
	"chainplan/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")). // Green
		Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	activeColor = lipgloss.Color("205")
	borderColor = lipgloss.Color("63")
)

func (m AppModel) View() string {
	if m.Loading {
		return "\n  Reading plans... please wait.\n"
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n\n  Press q to quit.\n", m.Err)
	}

	width := m.WindowSize.Width
	height := m.WindowSize.Height

	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}
	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	boxHeight := height - 4
	if boxHeight < 6 {
		boxHeight = 6
	}
	interiorHeight := boxHeight - 2

	// LEFT PANEL: chain links
	var leftView strings.Builder
	leftView.WriteString(titleStyle.Render(fmt.Sprintf("Chain (%d plans)", len(m.Chain.Links))))
	leftView.WriteString("\n\n")

	visibleItems := interiorHeight - 2
	if visibleItems < 1 {
		visibleItems = 1
	}
	startIdx, endIdx := window(len(m.Chain.Links), m.SelectedIdx, visibleItems)

	seen := make(map[string]bool)
	for _, link := range m.Chain.Links[:startIdx] {
		seen[link.Input] = true
	}
	for i := startIdx; i < endIdx; i++ {
		link := m.Chain.Links[i]
		icon := model.IconLink
		if link.Next.IsTerminal() {
			icon = model.IconTerminal
		}
		if m.Written || (m.WriteErr != nil && i < m.Result.Written) {
			icon = model.IconWritten
		} else if m.WriteErr != nil && i == m.Result.Written {
			icon = model.IconFailed
		}

		line := fmt.Sprintf("%4d. %s %s %s", link.Index, icon, link.Input, link.Output)
		if seen[link.Input] {
			line += " " + model.IconRepeat
		}
		seen[link.Input] = true

		line = truncateLine(line, leftWidth-2)

		style := normalStyle
		if i == m.SelectedIdx {
			style = selectedStyle
		}
		leftView.WriteString(style.Render(line))
		leftView.WriteString("\n")
	}

	left := lipgloss.NewStyle().
		Width(leftWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(activeColor).
		Render(strings.TrimSuffix(leftView.String(), "\n"))

	// RIGHT PANEL: selected output content
	var rightView strings.Builder
	title := "Output"
	if m.SelectedIdx < len(m.Chain.Links) {
		title = m.Chain.Links[m.SelectedIdx].Output
	}
	rightView.WriteString(titleStyle.Render(title))
	rightView.WriteString("\n\n")
	rightView.WriteString(m.DetailsViewport.View())

	right := lipgloss.NewStyle().
		Width(rightWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(rightView.String())

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.footer())
}

func (m AppModel) footer() string {
	switch {
	case m.Writing:
		return dimStyle.Render("  Writing chain... (quit waits for it to finish)")
	case m.Written:
		return okStyle.Render("  "+model.IconWritten+" "+chain.Summary(m.Result)) +
			dimStyle.Render("  (q: quit)")
	case m.WriteErr != nil:
		return errorStyle.Render(fmt.Sprintf("  %s %d written, then: %v", model.IconFailed, m.Result.Written, m.WriteErr)) +
			dimStyle.Render("  (q: quit)")
	default:
		return dimStyle.Render("  ↑/k ↓/j: select  pgup/pgdn: scroll  w: write chain  q: quit")
	}
}

// truncateLine shortens line to width terminal cells, ending it with "...".
func truncateLine(line string, width int) string {
	if width < 1 || ansi.StringWidth(line) <= width {
		return line
	}
	return ansi.Truncate(line, width, "...")
}

// window returns the [start, end) range of a list of n items that keeps
// selected roughly centered in visible rows.
func window(n, selected, visible int) (int, int) {
	if n <= visible {
		return 0, n
	}
	start := 0
	if selected >= visible/2 {
		start = selected - visible/2
	}
	if start+visible > n {
		start = n - visible
	}
	if start < 0 {
		start = 0
	}
	return start, start + visible
}
