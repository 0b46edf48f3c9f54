package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// editOverlay is the modal edit view for one item. It remembers the
// position the item had when the view was opened; saving writes back to
// that position.
type editOverlay struct {
	index int
	input textinput.Model
	width int
}

func newEditOverlay(index int, text string, width int) *editOverlay {
	ti := textinput.New()
	ti.Prompt = ""
	ti.SetValue(text)
	ti.CursorEnd()
	ti.Focus()

	o := &editOverlay{index: index, input: ti}
	o.setWidth(width)
	return o
}

func (o *editOverlay) setWidth(width int) {
	o.width = width
	boxWidth := width - 8
	if boxWidth < 30 {
		boxWidth = 30
	}
	// Border and padding take six columns around the input.
	o.input.Width = boxWidth - 6
}

// View renders the edit box.
func (o *editOverlay) View(keys keyMap) string {
	var content strings.Builder
	content.WriteString(editTitleStyle.Render(fmt.Sprintf("Edit item %d", o.index)))
	content.WriteString("\n\n")
	content.WriteString(o.input.View())
	content.WriteString("\n\n")
	content.WriteString(editHelpStyle.Render(helpLine(keys.editHelp())))

	boxWidth := o.width - 8
	if boxWidth < 30 {
		boxWidth = 30
	}
	return editBoxStyle.Width(boxWidth).Render(content.String())
}

// renderOverlay renders an overlay centered on a clean background
// This creates a modal appearance by not showing the base view underneath
func renderOverlay(overlayView string, width, height int) string {
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		overlayView,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("0")),
	)
}

// renderToastOverlay renders a toast-style overlay at the bottom of the screen
// without affecting the base view's layout
func renderToastOverlay(baseView string, toastContent string) string {
	if toastContent == "" {
		return baseView
	}

	baseLines := strings.Split(baseView, "\n")
	toastLines := strings.Split(strings.TrimRight(toastContent, "\n"), "\n")

	// Sit just above the input box and status bar
	startLine := len(baseLines) - 5 - len(toastLines)
	if startLine < 0 {
		startLine = 0
	}

	var result strings.Builder
	for i, line := range baseLines {
		toastLineIdx := i - startLine
		if toastLineIdx >= 0 && toastLineIdx < len(toastLines) {
			result.WriteString("  ")
			result.WriteString(toastLines[toastLineIdx])
		} else {
			result.WriteString(line)
		}
		if i < len(baseLines)-1 {
			result.WriteString("\n")
		}
	}

	return result.String()
}
