package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// View renders the entire TUI interface.
// This is called by Bubble Tea whenever the UI needs to be redrawn.
func (m *model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.edit != nil {
		return m.applyToast(renderOverlay(m.edit.View(m.keys), m.width, m.height))
	}

	baseView := lipgloss.JoinVertical(
		lipgloss.Left,
		m.buildHeader(),
		m.buildList(),
		m.buildInputBox(),
		m.buildBottomBar(),
	)
	return m.applyToast(baseView)
}

// buildHeader renders the title line with the item count
func (m *model) buildHeader() string {
	n := len(m.list.Items())
	noun := "items"
	if n == 1 {
		noun = "item"
	}
	return headerStyle.Render("simpletodo") + countStyle.Render(fmt.Sprintf("%d %s", n, noun)) + "\n"
}

// buildList renders the item list, or a hint when it is empty
func (m *model) buildList() string {
	style := blurredBoxStyle
	if m.focus == focusList {
		style = focusedBoxStyle
	}
	style = style.Width(m.width - 4)

	if len(m.list.Items()) == 0 {
		hint := emptyListStyle.Render("Nothing here yet. Type below and press enter.")
		return style.Height(m.listHeight()).Render(hint)
	}
	return style.Render(m.list.View())
}

// buildInputBox renders the add input
func (m *model) buildInputBox() string {
	style := blurredBoxStyle
	if m.focus == focusInput {
		style = focusedBoxStyle
	}
	return style.Width(m.width - 4).Render(m.input.View())
}

// buildBottomBar renders key hints for the focused component
func (m *model) buildBottomBar() string {
	bindings := m.keys.listHelp()
	if m.focus == focusInput {
		bindings = m.keys.inputHelp()
	}
	return statusBarStyle.Width(m.width).Render(helpLine(bindings))
}

// helpLine joins binding hints into one line
func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// applyToast layers the toast over view if one is showing
func (m *model) applyToast(view string) string {
	if m.toast.active && time.Now().Before(m.toast.showUntil) {
		return renderToastOverlay(view, m.renderToast())
	}
	return view
}

// renderToast renders a toast notification
func (m *model) renderToast() string {
	boxWidth := m.width - 4
	if boxWidth < 40 {
		boxWidth = 40
	}

	var content strings.Builder
	content.WriteString(fmt.Sprintf("%s %s", m.toast.icon, m.toast.message))
	if m.toast.details != "" {
		content.WriteString("\n")
		content.WriteString(m.toast.details)
	}

	borderColor := mintGreen
	if m.toast.isError {
		borderColor = errorRed
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(boxWidth)

	return "\n" + boxStyle.Render(content.String()) + "\n"
}
